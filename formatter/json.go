package formatter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// Exporter writes a set of notices to w.
type Exporter interface {
	Export(w io.Writer, notices []notice.Notice) error
	// Extension is the file extension of the output, without the dot.
	Extension() string
}

// New returns the proto exporter when proto is set, the JSON one otherwise.
func New(proto bool) Exporter {
	if proto {
		return ProtoExporter{}
	}
	return JSONExporter{}
}

// JSONExporter streams notices as {"results":[...]}.
type JSONExporter struct {
	Indent bool
}

func (JSONExporter) Extension() string { return "json" }

func (e JSONExporter) Export(w io.Writer, notices []notice.Notice) error {
	bw := bufio.NewWriter(w)
	sep, nl := "", ""
	if e.Indent {
		nl = "\n"
	}
	if _, err := fmt.Fprintf(bw, `{"results":[%s`, nl); err != nil {
		return err
	}
	for i, n := range notices {
		var (
			b   []byte
			err error
		)
		if e.Indent {
			b, err = json.MarshalIndent(n, "  ", "  ")
		} else {
			b, err = json.Marshal(n)
		}
		if err != nil {
			return fmt.Errorf("encode notice %d: %w", i, err)
		}
		if e.Indent {
			bw.WriteString(sep + "  ")
		} else {
			bw.WriteString(sep)
		}
		bw.Write(b)
		sep = "," + nl
	}
	if _, err := fmt.Fprintf(bw, "%s]}\n", nl); err != nil {
		return err
	}
	return bw.Flush()
}
