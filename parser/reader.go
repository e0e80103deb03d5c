package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

const utf8BOM = "\ufeff"

// Row is one coerced record of a table. It satisfies usecase.ParsedEntity.
type Row struct {
	filename string
	line     int
	idField  string
	values   map[string]any
}

// Get returns a string, an int, a float64, or nil when the cell is empty,
// unparsable or the column is missing.
func (r *Row) Get(field string) any { return r.values[field] }

// EntityID returns the value of the table's id column, or "".
func (r *Row) EntityID() string {
	if s, ok := r.values[r.idField].(string); ok {
		return s
	}
	return ""
}

func (r *Row) Filename() string { return r.filename }
func (r *Row) LineNumber() int  { return r.line }

// ReadTable streams the rows of t to fn in file order and returns how many
// rows were handed over. A table with a missing required header is reported
// and not read further.
func (s *Source) ReadTable(ctx context.Context, t Table, sink notice.Sink, fn func(*Row)) (int, error) {
	rc, err := s.open(t.Name)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", t.Name, err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		header = nil
	} else if err != nil {
		return 0, fmt.Errorf("read %s header: %w", t.Name, err)
	}
	header = append([]string(nil), header...)
	columns, ok := checkHeader(t, header, sink)
	if !ok {
		return 0, nil
	}

	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("read %s: %w", t.Name, err)
		}
		line, _ := r.FieldPos(0)
		if len(rec) != len(header) {
			if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
				continue
			}
			sink.AddNotice(notice.NewInvalidRowLength(t.Name, line, len(header), len(rec)))
			continue
		}
		fn(coerce(t, columns, rec, line, sink))
		n++
	}
}

// checkHeader maps header positions to columns. Unknown headers map to a
// zero Column with an empty name and are ignored.
func checkHeader(t Table, header []string, sink notice.Sink) ([]Column, bool) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	columns := make([]Column, len(header))
	seen := map[string]bool{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		c, ok := t.column(h)
		if !ok {
			sink.AddNotice(notice.NewNonStandardHeader(t.Name, h))
			continue
		}
		columns[i] = c
		seen[h] = true
	}
	ok := true
	for _, c := range t.Columns {
		if c.Required && !seen[c.Name] {
			sink.AddNotice(notice.NewMissingHeader(t.Name, c.Name))
			ok = false
		}
	}
	return columns, ok
}

func coerce(t Table, columns []Column, rec []string, line int, sink notice.Sink) *Row {
	row := &Row{filename: t.Name, line: line, idField: t.IDField, values: make(map[string]any, len(rec))}
	entityID := rowID(t, columns, rec)
	for i, raw := range rec {
		c := columns[i]
		if c.Name == "" || raw == "" {
			continue
		}
		switch c.Type {
		case Integer:
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				sink.AddNotice(notice.NewCannotParseInteger(t.Name, c.Name, entityID, line, raw))
				continue
			}
			row.values[c.Name] = v
		case Float:
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				sink.AddNotice(notice.NewCannotParseFloat(t.Name, c.Name, entityID, line, raw))
				continue
			}
			row.values[c.Name] = v
		default:
			if strings.HasSuffix(c.Name, "_id") && !isPrintableASCII(raw) {
				sink.AddNotice(notice.NewNonASCIIOrNonPrintableChar(t.Name, c.Name, entityID, raw))
			}
			row.values[c.Name] = raw
		}
	}
	return row
}

// rowID returns the raw value of the table's id column, or "".
func rowID(t Table, columns []Column, rec []string) string {
	if t.IDField == "" {
		return ""
	}
	for i, c := range columns {
		if c.Name == t.IDField && i < len(rec) {
			return rec[i]
		}
	}
	return ""
}

// isPrintableASCII reports whether s only holds bytes 0x20 to 0x7E.
func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
