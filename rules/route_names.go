package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// MaxShortNameLength is the longest route_short_name accepted without a
// warning.
const MaxShortNameLength = 12

// RouteNames checks route_short_name, route_long_name and route_desc
// against each other.
type RouteNames struct{}

func (RouteNames) Name() string { return "route_names" }

func (RouteNames) Requires() []string { return []string{gtfs.RouteFile} }

func (RouteNames) Validate(feed Feed, sink notice.Sink) {
	for _, r := range feed.Routes() {
		checkRouteNames(r, sink)
	}
}

func checkRouteNames(r gtfs.Route, sink notice.Sink) {
	id := r.RouteID()
	short := strings.TrimSpace(r.RouteShortName().OrElse(""))
	long := strings.TrimSpace(r.RouteLongName().OrElse(""))

	if short == "" && long == "" {
		sink.AddNotice(notice.NewMissingShortAndLongNameForRoute(gtfs.RouteFile, id))
		return
	}
	if n := utf8.RuneCountInString(short); n > MaxShortNameLength {
		sink.AddNotice(notice.NewRouteShortNameTooLong(gtfs.RouteFile, id, n, MaxShortNameLength))
	}
	if short != "" && long != "" {
		switch {
		case strings.EqualFold(short, long):
			sink.AddNotice(notice.NewRouteLongNameEqualsShortName(gtfs.RouteFile, id))
		case strings.Contains(strings.ToLower(long), strings.ToLower(short)):
			sink.AddNotice(notice.NewRouteLongNameContainsShortName(gtfs.RouteFile, id))
		}
	}

	desc := strings.TrimSpace(r.RouteDesc().OrElse(""))
	switch {
	case desc == "":
	case strings.EqualFold(desc, short):
		sink.AddNotice(notice.NewSameNameAndDescriptionForRoute(gtfs.RouteFile, id, "route_short_name"))
	case strings.EqualFold(desc, long):
		sink.AddNotice(notice.NewSameNameAndDescriptionForRoute(gtfs.RouteFile, id, "route_long_name"))
	}
}
