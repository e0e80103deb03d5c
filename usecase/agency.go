package usecase

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

type AgencyRepository interface {
	AddAgency(a gtfs.Agency) (gtfs.Agency, bool)
}

// ProcessParsedAgency processes rows of agency.txt.
type ProcessParsedAgency struct {
	sink    notice.Sink
	repo    AgencyRepository
	builder *gtfs.AgencyBuilder
}

// NewProcessParsedAgency panics if any dependency is nil.
func NewProcessParsedAgency(sink notice.Sink, repo AgencyRepository, builder *gtfs.AgencyBuilder) *ProcessParsedAgency {
	mustDeps(sink, repo, builder, "ProcessParsedAgency")
	return &ProcessParsedAgency{sink: sink, repo: repo, builder: builder}
}

func (p *ProcessParsedAgency) Execute(rec ParsedEntity) Outcome {
	res := p.builder.
		AgencyID(str(rec.Get("agency_id"))).
		AgencyName(str(rec.Get("agency_name"))).
		AgencyURL(str(rec.Get("agency_url"))).
		AgencyTimezone(str(rec.Get("agency_timezone"))).
		AgencyLang(str(rec.Get("agency_lang"))).
		AgencyPhone(str(rec.Get("agency_phone"))).
		AgencyFareURL(str(rec.Get("agency_fare_url"))).
		AgencyEmail(str(rec.Get("agency_email"))).
		Build()
	return process(p.sink, res, p.repo.AddAgency, func(gtfs.Agency) notice.Notice {
		return notice.NewDuplicatedEntity(gtfs.AgencyFile, "agency_id", rec.EntityID())
	})
}
