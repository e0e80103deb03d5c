package usecase

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

type AttributionRepository interface {
	AddAttribution(a gtfs.Attribution) (gtfs.Attribution, bool)
}

// ProcessParsedAttribution processes rows of attributions.txt.
type ProcessParsedAttribution struct {
	sink    notice.Sink
	repo    AttributionRepository
	builder *gtfs.AttributionBuilder
}

func NewProcessParsedAttribution(sink notice.Sink, repo AttributionRepository, builder *gtfs.AttributionBuilder) *ProcessParsedAttribution {
	mustDeps(sink, repo, builder, "ProcessParsedAttribution")
	return &ProcessParsedAttribution{sink: sink, repo: repo, builder: builder}
}

func (p *ProcessParsedAttribution) Execute(rec ParsedEntity) Outcome {
	res := p.builder.
		AttributionID(str(rec.Get("attribution_id"))).
		AgencyID(str(rec.Get("agency_id"))).
		RouteID(str(rec.Get("route_id"))).
		TripID(str(rec.Get("trip_id"))).
		OrganizationName(str(rec.Get("organization_name"))).
		IsProducer(integer(rec.Get("is_producer"))).
		IsOperator(integer(rec.Get("is_operator"))).
		IsAuthority(integer(rec.Get("is_authority"))).
		AttributionURL(str(rec.Get("attribution_url"))).
		AttributionEmail(str(rec.Get("attribution_email"))).
		AttributionPhone(str(rec.Get("attribution_phone"))).
		Build()
	return process(p.sink, res, p.repo.AddAttribution, func(gtfs.Attribution) notice.Notice {
		return notice.NewDuplicatedEntity(gtfs.AttributionFile, "organization_name", notice.NoID)
	})
}
