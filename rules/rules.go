package rules

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// Feed is the read side of the feed repository.
type Feed interface {
	Agencies() []gtfs.Agency
	Routes() []gtfs.Route
	Attributions() []gtfs.Attribution
	AgencyByID(id string) (gtfs.Agency, bool)
	RouteByID(id string) (gtfs.Route, bool)
	ShapeIDs() []string
	ShapePoints(shapeID string) []gtfs.ShapePoint
}

// Rule is a feed-wide check.
type Rule interface {
	Name() string
	// Requires lists the files the rule reads. A rule is skipped when one of
	// them is excluded from validation.
	Requires() []string
	Validate(feed Feed, sink notice.Sink)
}

// Default returns the rules run on every feed.
func Default() []Rule {
	return []Rule{
		RouteAgencyReference{},
		RouteNames{},
		RouteColorContrast{},
		AttributionReference{},
		ShapeDistanceOrder{},
	}
}
