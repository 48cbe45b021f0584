package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"liquidityCalc/internal/model"
)

// JsonlSink writes position records as JSON lines.
type JsonlSink struct {
	w  io.Writer
	mu sync.Mutex
}

func NewJsonlSink(w io.Writer) *JsonlSink {
	return &JsonlSink{w: w}
}

// PutReports writes one JSON object per record.
func (s *JsonlSink) PutReports(records []model.PositionRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writer := bufio.NewWriter(s.w)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal position record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write position record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
