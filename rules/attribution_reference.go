package rules

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// AttributionReference checks that attributions.agency_id and
// attributions.route_id point at stored entities. trip_id is not checked
// since trips are not loaded.
type AttributionReference struct{}

func (AttributionReference) Name() string { return "attribution_reference" }

func (AttributionReference) Requires() []string {
	return []string{gtfs.AttributionFile, gtfs.AgencyFile, gtfs.RouteFile}
}

func (AttributionReference) Validate(feed Feed, sink notice.Sink) {
	for _, a := range feed.Attributions() {
		entityID := a.AttributionID().OrElse("")
		if id, ok := a.AgencyID().Get(); ok {
			if _, found := feed.AgencyByID(id); !found {
				sink.AddNotice(notice.NewUnknownReference(gtfs.AttributionFile, "agency_id", entityID, gtfs.AgencyFile, id))
			}
		}
		if id, ok := a.RouteID().Get(); ok {
			if _, found := feed.RouteByID(id); !found {
				sink.AddNotice(notice.NewUnknownReference(gtfs.AttributionFile, "route_id", entityID, gtfs.RouteFile, id))
			}
		}
	}
}
