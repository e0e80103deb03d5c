// Package parser reads GTFS tables from a zip archive or a directory and
// turns each CSV row into a Row whose values are already coerced to the
// column's type.
//
// Structural problems (missing files, unknown or missing headers, short
// rows, unparsable numbers) are reported as notices. Only I/O failures are
// returned as errors.
package parser
