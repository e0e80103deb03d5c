package gtfs

import (
	"slices"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// BuildResult is the outcome of a builder: either an entity or the notices
// that prevented building it, never both.
type BuildResult[T any] struct {
	entity  T
	notices []notice.Notice
	ok      bool
}

// Built wraps a successfully built entity.
func Built[T any](entity T) BuildResult[T] {
	return BuildResult[T]{entity: entity, ok: true}
}

// Failed wraps the notices of a rejected record. The slice is copied. It
// panics on an empty list: a failure always has a reason.
func Failed[T any](notices []notice.Notice) BuildResult[T] {
	if len(notices) == 0 {
		panic("gtfs: Failed called without notices")
	}
	return BuildResult[T]{notices: slices.Clone(notices)}
}

func (r BuildResult[T]) IsSuccess() bool { return r.ok }

// Entity returns the built entity; ok is false for a failed result.
func (r BuildResult[T]) Entity() (T, bool) {
	return r.entity, r.ok
}

// Notices returns a copy of the notices of a failed result, nil otherwise.
func (r BuildResult[T]) Notices() []notice.Notice {
	return slices.Clone(r.notices)
}

// Match calls exactly one of the two functions depending on the variant.
func (r BuildResult[T]) Match(onEntity func(T), onNotices func([]notice.Notice)) {
	if r.ok {
		onEntity(r.entity)
		return
	}
	onNotices(r.Notices())
}
