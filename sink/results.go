package sink

import (
	"slices"
	"sync"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// ResultRepository keeps notices in the order they were added. It is safe
// for concurrent use.
type ResultRepository struct {
	mu       sync.Mutex
	notices  []notice.Notice
	errors   int
	warnings int
}

func NewResultRepository() *ResultRepository { return &ResultRepository{} }

func (r *ResultRepository) AddNotice(n notice.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
	if n.IsError() {
		r.errors++
	} else {
		r.warnings++
	}
}

// Notices returns a copy of the collected notices.
func (r *ResultRepository) Notices() []notice.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.notices)
}

// Counts returns the number of error and warning notices.
func (r *ResultRepository) Counts() (errors, warnings int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors, r.warnings
}

func (r *ResultRepository) HasErrors() bool {
	e, _ := r.Counts()
	return e > 0
}

// Tee returns a sink forwarding every notice to all of sinks, in order.
func Tee(sinks ...notice.Sink) notice.Sink { return tee(sinks) }

type tee []notice.Sink

func (t tee) AddNotice(n notice.Notice) {
	for _, s := range t {
		s.AddNotice(n)
	}
}

// Func adapts a function to notice.Sink.
type Func func(notice.Notice)

func (f Func) AddNotice(n notice.Notice) { f(n) }
