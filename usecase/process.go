package usecase

import (
	"math"

	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// ParsedEntity is one coerced row of a table. Get returns a string, an int,
// a float64 or nil for an absent value.
type ParsedEntity interface {
	Get(field string) any
	EntityID() string
}

// Outcome is the result of processing one record.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeStored
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "invalid"
	}
}

// process forwards the notices of a failed build, or stores the entity and
// reports a duplicate when the repository already holds its key.
func process[T any](sink notice.Sink, res gtfs.BuildResult[T], add func(T) (T, bool), duplicate func(T) notice.Notice) Outcome {
	outcome := OutcomeInvalid
	res.Match(
		func(e T) {
			if _, ok := add(e); ok {
				outcome = OutcomeStored
				return
			}
			outcome = OutcomeDuplicate
			sink.AddNotice(duplicate(e))
		},
		func(notices []notice.Notice) {
			for _, n := range notices {
				sink.AddNotice(n)
			}
		},
	)
	return outcome
}

func mustDeps(sink notice.Sink, repo, builder any, name string) {
	switch {
	case isNil(sink):
		panic("usecase: " + name + " requires a notice sink")
	case isNil(repo):
		panic("usecase: " + name + " requires a repository")
	case isNil(builder):
		panic("usecase: " + name + " requires a builder")
	}
}

func str(v any) gtfs.Optional[string] {
	if s, ok := v.(string); ok {
		return gtfs.Some(s)
	}
	return gtfs.None[string]()
}

// integer also accepts a float64 holding a whole number.
func integer(v any) gtfs.Optional[int] {
	switch n := v.(type) {
	case int:
		return gtfs.Some(n)
	case int64:
		return gtfs.Some(int(n))
	case float64:
		if !math.IsInf(n, 0) && n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32 {
			return gtfs.Some(int(n))
		}
	}
	return gtfs.None[int]()
}

func float(v any) gtfs.Optional[float64] {
	switch n := v.(type) {
	case float64:
		return gtfs.Some(n)
	case int:
		return gtfs.Some(float64(n))
	}
	return gtfs.None[float64]()
}
