// Package notice defines the diagnostic records produced while validating a
// GTFS schedule feed.
//
// A Notice is an immutable value describing one data-quality problem: the
// file it was found in, its severity, a stable code, a human readable title
// and description, the id of the offending entity and a small set of
// kind-specific values (field names, bounds, raw values).
//
// Notices are data, not errors. Builders and processors return or emit them
// and keep going; nothing in the pipeline aborts because a record is bad.
//
// # Sinks
//
// Processors forward notices to a Sink. The sink package provides an
// in-memory implementation and a SQLite-backed one.
package notice
