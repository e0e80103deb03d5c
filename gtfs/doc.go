/*
Package gtfs provides the GTFS schedule entities and the builders that turn
loosely typed field values into them.

Every entity type has a builder with one setter per field. Setters only
record values; all rules are evaluated in Build, which returns a BuildResult
holding either the entity or every notice the values produced.

# Basic Usage

	b := gtfs.NewShapePointBuilder()
	res := b.ShapeID(gtfs.Some("S1")).
	    ShapePtLat(gtfs.Some(45.0)).
	    ShapePtLon(gtfs.Some(-73.0)).
	    ShapePtSequence(gtfs.Some(0)).
	    Build()

	res.Match(
	    func(p gtfs.ShapePoint) { feed.AddShapePoint(p) },
	    func(ns []notice.Notice) { report(ns) },
	)

# Absent values

Optional fields are held in an Optional, so a value that was never provided
stays distinguishable from a zero value. Required fields that are absent
produce a missing_required_value notice; an empty string is a value.

# Reuse

Builders may be reused across rows. Each Build starts from an empty notice
buffer and the returned result never aliases it.

# Identity

Agencies and routes are keyed by their id. Shape points are keyed by
shape_id plus shape_pt_sequence, attributions by the combination of all
their fields; both report notice.NoID when an entity id is needed.
Translations are keyed by table, field, language and record reference.
*/
package gtfs
