package parser

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
)

// ColumnType is the primitive type a column is coerced to.
type ColumnType int

const (
	Text ColumnType = iota
	Integer
	Float
)

type Column struct {
	Name     string
	Type     ColumnType
	Required bool // header must be present
}

// Table describes one GTFS file.
type Table struct {
	Name     string
	Required bool
	IDField  string // column used as the entity id in notices, if any
	Columns  []Column
}

func (t Table) column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

var (
	AgencyTable = Table{
		Name:     gtfs.AgencyFile,
		Required: true,
		IDField:  "agency_id",
		Columns: []Column{
			{Name: "agency_id"},
			{Name: "agency_name", Required: true},
			{Name: "agency_url", Required: true},
			{Name: "agency_timezone", Required: true},
			{Name: "agency_lang"},
			{Name: "agency_phone"},
			{Name: "agency_fare_url"},
			{Name: "agency_email"},
		},
	}

	RouteTable = Table{
		Name:     gtfs.RouteFile,
		Required: true,
		IDField:  "route_id",
		Columns: []Column{
			{Name: "route_id", Required: true},
			{Name: "agency_id"},
			{Name: "route_short_name"},
			{Name: "route_long_name"},
			{Name: "route_desc"},
			{Name: "route_type", Type: Integer, Required: true},
			{Name: "route_url"},
			{Name: "route_color"},
			{Name: "route_text_color"},
			{Name: "route_sort_order", Type: Integer},
			{Name: "continuous_pickup", Type: Integer},
			{Name: "continuous_drop_off", Type: Integer},
			{Name: "network_id"},
		},
	}

	ShapeTable = Table{
		Name:    gtfs.ShapeFile,
		IDField: "shape_id",
		Columns: []Column{
			{Name: "shape_id", Required: true},
			{Name: "shape_pt_lat", Type: Float, Required: true},
			{Name: "shape_pt_lon", Type: Float, Required: true},
			{Name: "shape_pt_sequence", Type: Integer, Required: true},
			{Name: "shape_dist_traveled", Type: Float},
		},
	}

	AttributionTable = Table{
		Name:    gtfs.AttributionFile,
		IDField: "attribution_id",
		Columns: []Column{
			{Name: "attribution_id"},
			{Name: "agency_id"},
			{Name: "route_id"},
			{Name: "trip_id"},
			{Name: "organization_name", Required: true},
			{Name: "is_producer", Type: Integer},
			{Name: "is_operator", Type: Integer},
			{Name: "is_authority", Type: Integer},
			{Name: "attribution_url"},
			{Name: "attribution_email"},
			{Name: "attribution_phone"},
		},
	}

	TranslationTable = Table{
		Name:    gtfs.TranslationFile,
		IDField: "record_id",
		Columns: []Column{
			{Name: "table_name", Required: true},
			{Name: "field_name", Required: true},
			{Name: "language", Required: true},
			{Name: "translation", Required: true},
			{Name: "record_id"},
			{Name: "record_sub_id"},
			{Name: "field_value"},
		},
	}
)

// Tables lists the validated tables in load order.
var Tables = []Table{AgencyTable, RouteTable, ShapeTable, AttributionTable, TranslationTable}

// knownFiles are the files defined by the GTFS reference. Files outside this
// set are reported as extra files; files inside it that have no Table are
// accepted but not validated.
var knownFiles = map[string]bool{
	"agency.txt":               true,
	"stops.txt":                true,
	"routes.txt":               true,
	"trips.txt":                true,
	"stop_times.txt":           true,
	"calendar.txt":             true,
	"calendar_dates.txt":       true,
	"fare_attributes.txt":      true,
	"fare_rules.txt":           true,
	"timeframes.txt":           true,
	"fare_media.txt":           true,
	"fare_products.txt":        true,
	"fare_leg_rules.txt":       true,
	"fare_transfer_rules.txt":  true,
	"areas.txt":                true,
	"stop_areas.txt":           true,
	"networks.txt":             true,
	"route_networks.txt":       true,
	"shapes.txt":               true,
	"frequencies.txt":          true,
	"transfers.txt":            true,
	"pathways.txt":             true,
	"levels.txt":               true,
	"location_groups.txt":      true,
	"location_group_stops.txt": true,
	"booking_rules.txt":        true,
	"translations.txt":         true,
	"feed_info.txt":            true,
	"attributions.txt":         true,
}
