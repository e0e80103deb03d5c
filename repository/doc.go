// Package repository holds the validated entities of one feed.
//
// Each entity type lives in its own collection keyed by the entity's
// identity key. Adding an entity whose key is already taken is rejected and
// leaves the stored entity untouched. All methods are safe for concurrent
// use, so several tables can be loaded in parallel into one repository.
package repository
