package usecase

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

type RouteRepository interface {
	AddRoute(r gtfs.Route) (gtfs.Route, bool)
}

// ProcessParsedRoute processes rows of routes.txt.
type ProcessParsedRoute struct {
	sink    notice.Sink
	repo    RouteRepository
	builder *gtfs.RouteBuilder
}

func NewProcessParsedRoute(sink notice.Sink, repo RouteRepository, builder *gtfs.RouteBuilder) *ProcessParsedRoute {
	mustDeps(sink, repo, builder, "ProcessParsedRoute")
	return &ProcessParsedRoute{sink: sink, repo: repo, builder: builder}
}

func (p *ProcessParsedRoute) Execute(rec ParsedEntity) Outcome {
	res := p.builder.
		RouteID(str(rec.Get("route_id"))).
		AgencyID(str(rec.Get("agency_id"))).
		RouteShortName(str(rec.Get("route_short_name"))).
		RouteLongName(str(rec.Get("route_long_name"))).
		RouteDesc(str(rec.Get("route_desc"))).
		RouteType(integer(rec.Get("route_type"))).
		RouteURL(str(rec.Get("route_url"))).
		RouteColor(str(rec.Get("route_color"))).
		RouteTextColor(str(rec.Get("route_text_color"))).
		RouteSortOrder(integer(rec.Get("route_sort_order"))).
		Build()
	return process(p.sink, res, p.repo.AddRoute, func(gtfs.Route) notice.Notice {
		return notice.NewDuplicatedEntity(gtfs.RouteFile, "route_id", rec.EntityID())
	})
}
