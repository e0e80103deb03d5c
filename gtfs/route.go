package gtfs

import (
	"math"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

const RouteFile = "routes.txt"

// Basic route_type values.
const (
	RouteTypeLightRail  = 0
	RouteTypeSubway     = 1
	RouteTypeRail       = 2
	RouteTypeBus        = 3
	RouteTypeFerry      = 4
	RouteTypeCableTram  = 5
	RouteTypeAerialLift = 6
	RouteTypeFunicular  = 7
	RouteTypeTrolleybus = 11
	RouteTypeMonorail   = 12
)

// Extended route types (Google Transit hierarchical vehicle types).
const (
	minExtendedRouteType = 100
	maxExtendedRouteType = 1702
)

// IsValidRouteType reports whether t is a basic or extended route_type.
func IsValidRouteType(t int) bool {
	switch {
	case t >= RouteTypeLightRail && t <= RouteTypeFunicular:
		return true
	case t == RouteTypeTrolleybus || t == RouteTypeMonorail:
		return true
	case t >= minExtendedRouteType && t <= maxExtendedRouteType:
		return true
	}
	return false
}

// Route is a row of routes.txt.
type Route struct {
	routeID        string
	agencyID       Optional[string]
	routeShortName Optional[string]
	routeLongName  Optional[string]
	routeDesc      Optional[string]
	routeType      int
	routeURL       Optional[string]
	routeColor     Optional[string]
	routeTextColor Optional[string]
	routeSortOrder Optional[int]
}

func (r Route) RouteID() string                  { return r.routeID }
func (r Route) AgencyID() Optional[string]       { return r.agencyID }
func (r Route) RouteShortName() Optional[string] { return r.routeShortName }
func (r Route) RouteLongName() Optional[string]  { return r.routeLongName }
func (r Route) RouteDesc() Optional[string]      { return r.routeDesc }
func (r Route) RouteType() int                   { return r.routeType }
func (r Route) RouteURL() Optional[string]       { return r.routeURL }
func (r Route) RouteColor() Optional[string]     { return r.routeColor }
func (r Route) RouteTextColor() Optional[string] { return r.routeTextColor }
func (r Route) RouteSortOrder() Optional[int]    { return r.routeSortOrder }

func (r Route) Key() string { return r.routeID }

// RouteBuilder builds Route values.
type RouteBuilder struct {
	routeID        Optional[string]
	agencyID       Optional[string]
	routeShortName Optional[string]
	routeLongName  Optional[string]
	routeDesc      Optional[string]
	routeType      Optional[int]
	routeURL       Optional[string]
	routeColor     Optional[string]
	routeTextColor Optional[string]
	routeSortOrder Optional[int]
	notices        []notice.Notice
}

func NewRouteBuilder() *RouteBuilder { return &RouteBuilder{} }

func (b *RouteBuilder) RouteID(v Optional[string]) *RouteBuilder {
	b.routeID = v
	return b
}

func (b *RouteBuilder) AgencyID(v Optional[string]) *RouteBuilder {
	b.agencyID = v
	return b
}

func (b *RouteBuilder) RouteShortName(v Optional[string]) *RouteBuilder {
	b.routeShortName = v
	return b
}

func (b *RouteBuilder) RouteLongName(v Optional[string]) *RouteBuilder {
	b.routeLongName = v
	return b
}

func (b *RouteBuilder) RouteDesc(v Optional[string]) *RouteBuilder {
	b.routeDesc = v
	return b
}

func (b *RouteBuilder) RouteType(v Optional[int]) *RouteBuilder {
	b.routeType = v
	return b
}

func (b *RouteBuilder) RouteURL(v Optional[string]) *RouteBuilder {
	b.routeURL = v
	return b
}

func (b *RouteBuilder) RouteColor(v Optional[string]) *RouteBuilder {
	b.routeColor = v
	return b
}

func (b *RouteBuilder) RouteTextColor(v Optional[string]) *RouteBuilder {
	b.routeTextColor = v
	return b
}

func (b *RouteBuilder) RouteSortOrder(v Optional[int]) *RouteBuilder {
	b.routeSortOrder = v
	return b
}

// Build validates the recorded values and returns the route or the list of
// notices, in routes.txt field order.
func (b *RouteBuilder) Build() BuildResult[Route] {
	b.notices = b.notices[:0]
	c := collector{filename: RouteFile, entityID: b.routeID.OrElse(""), notices: &b.notices}

	c.requireString("route_id", b.routeID)
	if t, ok := b.routeType.Get(); !ok {
		c.add(notice.NewMissingRequiredValue(RouteFile, "route_type", c.entityID))
	} else if !IsValidRouteType(t) {
		c.add(notice.NewUnexpectedEnumValue(RouteFile, "route_type", c.entityID, t))
	}
	c.url("route_url", b.routeURL)
	c.color("route_color", b.routeColor)
	c.color("route_text_color", b.routeTextColor)
	c.intRange("route_sort_order", b.routeSortOrder, 0, math.MaxInt32)

	if len(b.notices) > 0 {
		return Failed[Route](b.notices)
	}
	return Built(Route{
		routeID:        b.routeID.OrElse(""),
		agencyID:       b.agencyID,
		routeShortName: b.routeShortName,
		routeLongName:  b.routeLongName,
		routeDesc:      b.routeDesc,
		routeType:      b.routeType.OrElse(0),
		routeURL:       b.routeURL,
		routeColor:     b.routeColor,
		routeTextColor: b.routeTextColor,
		routeSortOrder: b.routeSortOrder,
	})
}
