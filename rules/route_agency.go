package rules

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// RouteAgencyReference checks that routes.agency_id points at a stored
// agency, and that it is set whenever the feed has several agencies.
type RouteAgencyReference struct{}

func (RouteAgencyReference) Name() string { return "route_agency_reference" }

func (RouteAgencyReference) Requires() []string { return []string{gtfs.AgencyFile, gtfs.RouteFile} }

func (RouteAgencyReference) Validate(feed Feed, sink notice.Sink) {
	multiAgency := len(feed.Agencies()) > 1
	for _, r := range feed.Routes() {
		id, ok := r.AgencyID().Get()
		if !ok {
			if multiAgency {
				sink.AddNotice(notice.NewMissingRequiredValue(gtfs.RouteFile, "agency_id", r.RouteID()))
			}
			continue
		}
		if _, found := feed.AgencyByID(id); !found {
			sink.AddNotice(notice.NewUnknownReference(gtfs.RouteFile, "agency_id", r.RouteID(), gtfs.AgencyFile, id))
		}
	}
}
