// Package formatter renders the notices of a run for export.
//
// This package is organized into:
// - json.go: {"results": [...]} JSON document, one object per notice
// - proto.go: the same document as a google.protobuf.Struct in protobuf wire format
package formatter
