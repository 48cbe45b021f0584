package output

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"liquidityCalc/internal/model"
)

const separator = "--------------------------------"

// TextSink writes labelled report fields in the order sqrt_low, sqrt_cur,
// sqrt_upp, lowTick, curTick, uppTick, liq, amount0, amount1.
type TextSink struct {
	w  io.Writer
	mu sync.Mutex
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// PutReports writes each record preceded by a separator line.
func (s *TextSink) PutReports(records []model.PositionRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writer := bufio.NewWriter(s.w)
	for _, r := range records {
		fields := []struct {
			label string
			value any
		}{
			{"sqrt_low", r.SqrtLow},
			{"sqrt_cur", r.SqrtCur},
			{"sqrt_upp", r.SqrtUpp},
			{"lowTick", r.LowTick},
			{"curTick", r.CurTick},
			{"uppTick", r.UppTick},
			{"liq", r.Liquidity},
			{"amount0", r.Amount0},
			{"amount1", r.Amount1},
		}

		if _, err := fmt.Fprintln(writer, separator); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(writer, "%s: %v\n", f.label, f.value); err != nil {
				return fmt.Errorf("write %s: %w", f.label, err)
			}
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
