package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPositionRecordFieldNames(t *testing.T) {
	record := PositionRecord{
		SqrtCur:   "79228162514264337593543950336",
		CurTick:   0,
		Liquidity: "19949874371066241196558265384",
	}

	b, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	text := string(b)
	for _, key := range []string{`"sqrt_cur":"79228162514264337593543950336"`, `"cur_tick":0`, `"liquidity":"19949874371066241196558265384"`} {
		if !strings.Contains(text, key) {
			t.Fatalf("missing %s in %s", key, text)
		}
	}
	if strings.Contains(text, `"name"`) {
		t.Fatalf("empty name should be omitted: %s", text)
	}
}
