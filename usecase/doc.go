// Package usecase turns parsed records into stored entities.
//
// There is one processor per entity type. Each one builds the entity from a
// ParsedEntity, offers it to the repository and reports notices to a sink.
// A processor reuses its builder, so it must not be shared between
// goroutines; run one processor per table instead.
package usecase
