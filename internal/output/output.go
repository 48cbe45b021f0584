package output

import (
	"fmt"
	"io"

	"liquidityCalc/internal/model"
)

// Sink defines a destination for position records.
type Sink interface {
	PutReports(records []model.PositionRecord) error
}

// NewSink returns the sink for format ("text" or "json") writing to w.
func NewSink(format string, w io.Writer) (Sink, error) {
	switch format {
	case "", "text":
		return NewTextSink(w), nil
	case "json", "jsonl":
		return NewJsonlSink(w), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
