package gtfs

import "github.com/theoremus-urban-solutions/gtfs-validator/notice"

const AgencyFile = "agency.txt"

// Agency is a row of agency.txt.
type Agency struct {
	agencyID       Optional[string]
	agencyName     string
	agencyURL      string
	agencyTimezone string
	agencyLang     Optional[string]
	agencyPhone    Optional[string]
	agencyFareURL  Optional[string]
	agencyEmail    Optional[string]
}

func (a Agency) AgencyID() Optional[string]      { return a.agencyID }
func (a Agency) AgencyName() string              { return a.agencyName }
func (a Agency) AgencyURL() string               { return a.agencyURL }
func (a Agency) AgencyTimezone() string          { return a.agencyTimezone }
func (a Agency) AgencyLang() Optional[string]    { return a.agencyLang }
func (a Agency) AgencyPhone() Optional[string]   { return a.agencyPhone }
func (a Agency) AgencyFareURL() Optional[string] { return a.agencyFareURL }
func (a Agency) AgencyEmail() Optional[string]   { return a.agencyEmail }

// Key is the identity of the agency in a feed. Agencies without agency_id
// share the empty key, so a feed may hold only one of them.
func (a Agency) Key() string { return a.agencyID.OrElse("") }

// AgencyBuilder builds Agency values. Fields may be set in any order.
type AgencyBuilder struct {
	agencyID       Optional[string]
	agencyName     Optional[string]
	agencyURL      Optional[string]
	agencyTimezone Optional[string]
	agencyLang     Optional[string]
	agencyPhone    Optional[string]
	agencyFareURL  Optional[string]
	agencyEmail    Optional[string]
	notices        []notice.Notice
}

func NewAgencyBuilder() *AgencyBuilder { return &AgencyBuilder{} }

func (b *AgencyBuilder) AgencyID(v Optional[string]) *AgencyBuilder {
	b.agencyID = v
	return b
}

func (b *AgencyBuilder) AgencyName(v Optional[string]) *AgencyBuilder {
	b.agencyName = v
	return b
}

func (b *AgencyBuilder) AgencyURL(v Optional[string]) *AgencyBuilder {
	b.agencyURL = v
	return b
}

func (b *AgencyBuilder) AgencyTimezone(v Optional[string]) *AgencyBuilder {
	b.agencyTimezone = v
	return b
}

func (b *AgencyBuilder) AgencyLang(v Optional[string]) *AgencyBuilder {
	b.agencyLang = v
	return b
}

func (b *AgencyBuilder) AgencyPhone(v Optional[string]) *AgencyBuilder {
	b.agencyPhone = v
	return b
}

func (b *AgencyBuilder) AgencyFareURL(v Optional[string]) *AgencyBuilder {
	b.agencyFareURL = v
	return b
}

func (b *AgencyBuilder) AgencyEmail(v Optional[string]) *AgencyBuilder {
	b.agencyEmail = v
	return b
}

// Build validates the recorded values and returns the agency or the list of
// notices, in agency.txt field order.
func (b *AgencyBuilder) Build() BuildResult[Agency] {
	b.notices = b.notices[:0]
	c := collector{filename: AgencyFile, entityID: b.agencyID.OrElse(""), notices: &b.notices}

	c.requireString("agency_name", b.agencyName)
	c.requireString("agency_url", b.agencyURL)
	c.url("agency_url", b.agencyURL)
	c.requireString("agency_timezone", b.agencyTimezone)
	if tz, ok := b.agencyTimezone.Get(); ok && !isValidTimezone(tz) {
		c.add(notice.NewInvalidTimezone(AgencyFile, "agency_timezone", c.entityID, tz))
	}
	if lang, ok := b.agencyLang.Get(); ok && !isValidLang(lang) {
		c.add(notice.NewInvalidLang(AgencyFile, "agency_lang", c.entityID, lang))
	}
	c.url("agency_fare_url", b.agencyFareURL)
	c.email("agency_email", b.agencyEmail)

	if len(b.notices) > 0 {
		return Failed[Agency](b.notices)
	}
	return Built(Agency{
		agencyID:       b.agencyID,
		agencyName:     b.agencyName.OrElse(""),
		agencyURL:      b.agencyURL.OrElse(""),
		agencyTimezone: b.agencyTimezone.OrElse(""),
		agencyLang:     b.agencyLang,
		agencyPhone:    b.agencyPhone,
		agencyFareURL:  b.agencyFareURL,
		agencyEmail:    b.agencyEmail,
	})
}
