package gtfs

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

const AttributionFile = "attributions.txt"

// Attribution is a row of attributions.txt.
type Attribution struct {
	attributionID    Optional[string]
	agencyID         Optional[string]
	routeID          Optional[string]
	tripID           Optional[string]
	organizationName string
	isProducer       Optional[int]
	isOperator       Optional[int]
	isAuthority      Optional[int]
	attributionURL   Optional[string]
	attributionEmail Optional[string]
	attributionPhone Optional[string]
}

func (a Attribution) AttributionID() Optional[string]    { return a.attributionID }
func (a Attribution) AgencyID() Optional[string]         { return a.agencyID }
func (a Attribution) RouteID() Optional[string]          { return a.routeID }
func (a Attribution) TripID() Optional[string]           { return a.tripID }
func (a Attribution) OrganizationName() string           { return a.organizationName }
func (a Attribution) IsProducer() Optional[int]          { return a.isProducer }
func (a Attribution) IsOperator() Optional[int]          { return a.isOperator }
func (a Attribution) IsAuthority() Optional[int]         { return a.isAuthority }
func (a Attribution) AttributionURL() Optional[string]   { return a.attributionURL }
func (a Attribution) AttributionEmail() Optional[string] { return a.attributionEmail }
func (a Attribution) AttributionPhone() Optional[string] { return a.attributionPhone }

// Key combines every field; two attributions are duplicates only when all
// of them match.
func (a Attribution) Key() string {
	var sb strings.Builder
	for _, s := range []Optional[string]{a.attributionID, a.agencyID, a.routeID, a.tripID} {
		writeKeyPart(&sb, s)
	}
	writeKeyPart(&sb, Some(a.organizationName))
	for _, i := range []Optional[int]{a.isProducer, a.isOperator, a.isAuthority} {
		if v, ok := i.Get(); ok {
			writeKeyPart(&sb, Some(strconv.Itoa(v)))
		} else {
			writeKeyPart(&sb, None[string]())
		}
	}
	for _, s := range []Optional[string]{a.attributionURL, a.attributionEmail, a.attributionPhone} {
		writeKeyPart(&sb, s)
	}
	return sb.String()
}

func writeKeyPart(sb *strings.Builder, s Optional[string]) {
	if v, ok := s.Get(); ok {
		sb.WriteByte('+')
		sb.WriteString(strconv.Quote(v))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte('|')
}

// AttributionBuilder builds Attribution values.
type AttributionBuilder struct {
	attributionID    Optional[string]
	agencyID         Optional[string]
	routeID          Optional[string]
	tripID           Optional[string]
	organizationName Optional[string]
	isProducer       Optional[int]
	isOperator       Optional[int]
	isAuthority      Optional[int]
	attributionURL   Optional[string]
	attributionEmail Optional[string]
	attributionPhone Optional[string]
	notices          []notice.Notice
}

func NewAttributionBuilder() *AttributionBuilder { return &AttributionBuilder{} }

func (b *AttributionBuilder) AttributionID(v Optional[string]) *AttributionBuilder {
	b.attributionID = v
	return b
}

func (b *AttributionBuilder) AgencyID(v Optional[string]) *AttributionBuilder {
	b.agencyID = v
	return b
}

func (b *AttributionBuilder) RouteID(v Optional[string]) *AttributionBuilder {
	b.routeID = v
	return b
}

func (b *AttributionBuilder) TripID(v Optional[string]) *AttributionBuilder {
	b.tripID = v
	return b
}

func (b *AttributionBuilder) OrganizationName(v Optional[string]) *AttributionBuilder {
	b.organizationName = v
	return b
}

func (b *AttributionBuilder) IsProducer(v Optional[int]) *AttributionBuilder {
	b.isProducer = v
	return b
}

func (b *AttributionBuilder) IsOperator(v Optional[int]) *AttributionBuilder {
	b.isOperator = v
	return b
}

func (b *AttributionBuilder) IsAuthority(v Optional[int]) *AttributionBuilder {
	b.isAuthority = v
	return b
}

func (b *AttributionBuilder) AttributionURL(v Optional[string]) *AttributionBuilder {
	b.attributionURL = v
	return b
}

func (b *AttributionBuilder) AttributionEmail(v Optional[string]) *AttributionBuilder {
	b.attributionEmail = v
	return b
}

func (b *AttributionBuilder) AttributionPhone(v Optional[string]) *AttributionBuilder {
	b.attributionPhone = v
	return b
}

// RoleFields names the fields of which at least one must be 1.
const RoleFields = "is_producer, is_operator, is_authority"

// Build validates the recorded values. agency_id, route_id and trip_id are
// mutually exclusive; every pair that is set yields one notice.
func (b *AttributionBuilder) Build() BuildResult[Attribution] {
	b.notices = b.notices[:0]
	c := collector{filename: AttributionFile, entityID: b.attributionID.OrElse(""), notices: &b.notices}

	links := []struct {
		field string
		value Optional[string]
	}{
		{"agency_id", b.agencyID},
		{"route_id", b.routeID},
		{"trip_id", b.tripID},
	}
	for i, l := range links {
		if !l.value.IsPresent() {
			continue
		}
		for _, prev := range links[:i] {
			if prev.value.IsPresent() {
				c.add(notice.NewIllegalFieldValueCombination(AttributionFile, prev.field, l.field, c.entityID))
			}
		}
	}
	c.requireString("organization_name", b.organizationName)
	c.intRange("is_producer", b.isProducer, 0, 1)
	c.intRange("is_operator", b.isOperator, 0, 1)
	c.intRange("is_authority", b.isAuthority, 0, 1)
	if b.isProducer.OrElse(0) != 1 && b.isOperator.OrElse(0) != 1 && b.isAuthority.OrElse(0) != 1 {
		c.add(notice.NewMissingRequiredValue(AttributionFile, RoleFields, c.entityID))
	}
	c.url("attribution_url", b.attributionURL)
	c.email("attribution_email", b.attributionEmail)

	if len(b.notices) > 0 {
		return Failed[Attribution](b.notices)
	}
	return Built(Attribution{
		attributionID:    b.attributionID,
		agencyID:         b.agencyID,
		routeID:          b.routeID,
		tripID:           b.tripID,
		organizationName: b.organizationName.OrElse(""),
		isProducer:       b.isProducer,
		isOperator:       b.isOperator,
		isAuthority:      b.isAuthority,
		attributionURL:   b.attributionURL,
		attributionEmail: b.attributionEmail,
		attributionPhone: b.attributionPhone,
	})
}
