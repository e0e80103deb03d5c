package sink

import (
	"sync"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

const maxExamples = 3

// codeSummary holds aggregated information about one notice code
type codeSummary struct {
	severity notice.Severity
	title    string
	count    int
	examples []string
}

// Summary aggregates notices by code so a run can be logged as one line per
// code instead of one line per notice.
type Summary struct {
	mu     sync.Mutex
	byCode map[string]*codeSummary
	order  []string
}

func NewSummary() *Summary {
	return &Summary{byCode: make(map[string]*codeSummary)}
}

// AddNotice records an occurrence, keeping up to three example ids.
func (s *Summary) AddNotice(n notice.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := s.byCode[n.Code()]
	if info == nil {
		info = &codeSummary{severity: n.Severity(), title: n.Title(), examples: make([]string, 0, maxExamples)}
		s.byCode[n.Code()] = info
		s.order = append(s.order, n.Code())
	}
	info.count++
	if len(info.examples) < maxExamples {
		example := n.EntityID()
		if example == "" || example == notice.NoID {
			example = n.Filename()
		}
		info.examples = append(info.examples, example)
	}
}

// Counts returns the number of notices per code.
func (s *Summary) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.byCode))
	for code, info := range s.byCode {
		out[code] = info.count
	}
	return out
}

// Log writes one entry per code, in first-seen order. Error codes are logged
// at error level, warnings at warn level.
func (s *Summary) Log(logger *zap.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, code := range s.order {
		info := s.byCode[code]
		fields := []zap.Field{
			zap.String("code", code),
			zap.String("title", info.title),
			zap.Int("occurrences", info.count),
			zap.Strings("examples", info.examples),
		}
		if info.severity == notice.SeverityError {
			logger.Error("feed has notices", fields...)
		} else {
			logger.Warn("feed has notices", fields...)
		}
	}
}
