package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// ProtoExporter writes the results document as a binary
// google.protobuf.Struct.
type ProtoExporter struct{}

func (ProtoExporter) Extension() string { return "pb" }

func (ProtoExporter) Export(w io.Writer, notices []notice.Notice) error {
	doc, err := ResultsStruct(notices)
	if err != nil {
		return err
	}
	b, err := proto.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// ResultsStruct builds the results document as a Struct. Each notice has the
// same fields as in the JSON export.
func ResultsStruct(notices []notice.Notice) (*structpb.Struct, error) {
	results := make([]any, 0, len(notices))
	for i, n := range notices {
		b, err := json.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("encode notice %d: %w", i, err)
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("decode notice %d: %w", i, err)
		}
		results = append(results, m)
	}
	return structpb.NewStruct(map[string]any{"results": results})
}

// DecodeProto reads back a document written by ProtoExporter.
func DecodeProto(b []byte) (map[string]any, error) {
	var doc structpb.Struct
	if err := proto.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return doc.AsMap(), nil
}
