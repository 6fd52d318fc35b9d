package bench

import (
	"testing"
	"time"

	tokgrid "github.com/jamesainslie/go-tokgrid"
)

func TestMeasure(t *testing.T) {
	tok, err := tokgrid.New([]string{" "}, tokgrid.WithPadValue("[PAD]"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doc := &Document{
		ID:    "doc",
		Lines: []string{"a b c", "d"},
		Bytes: 6,
	}

	m, err := Measure(tok, doc)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if m.Cells != 2 {
		t.Errorf("Cells = %d, want 2", m.Cells)
	}
	if m.Width != 3 {
		t.Errorf("Width = %d, want 3", m.Width)
	}
	if m.Tokens != 4 {
		t.Errorf("Tokens = %d, want 4", m.Tokens)
	}
	if m.PadSlots != 2 {
		t.Errorf("PadSlots = %d, want 2", m.PadSlots)
	}
	if got := m.PadRatio(); got < 0.33 || got > 0.34 {
		t.Errorf("PadRatio() = %f, want 2/6", got)
	}
}

func TestMeasure_MarkersNotCounted(t *testing.T) {
	tok, err := tokgrid.New([]string{" "}, tokgrid.WithMark(true), tokgrid.WithPadValue("_"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doc := &Document{ID: "doc", Lines: []string{"a b", "c"}, Bytes: 4}
	m, err := Measure(tok, doc)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if m.Width != 4 {
		t.Errorf("Width = %d, want 4 (2 tokens + 2 markers)", m.Width)
	}
	if m.Tokens != 3 {
		t.Errorf("Tokens = %d, want 3", m.Tokens)
	}
	if m.PadSlots != 1 {
		t.Errorf("PadSlots = %d, want 1", m.PadSlots)
	}
}

func TestMetrics_Rates(t *testing.T) {
	m := Metrics{Tokens: 1000, Bytes: 4000, Elapsed: 2 * time.Second}
	if got := m.TokensPerSec(); got != 500 {
		t.Errorf("TokensPerSec() = %f, want 500", got)
	}
	if got := m.BytesPerSec(); got != 2000 {
		t.Errorf("BytesPerSec() = %f, want 2000", got)
	}

	var zero Metrics
	if zero.TokensPerSec() != 0 || zero.PadRatio() != 0 {
		t.Error("zero metrics should report zero rates")
	}
}

func TestAggregate(t *testing.T) {
	agg := Aggregate([]Metrics{
		{Cells: 2, Width: 3, Tokens: 4, PadSlots: 2, Bytes: 10, Elapsed: time.Second},
		{Cells: 1, Width: 5, Tokens: 5, PadSlots: 0, Bytes: 20, Elapsed: time.Second},
	})

	if agg.Cells != 3 || agg.Tokens != 9 || agg.PadSlots != 2 || agg.Bytes != 30 {
		t.Errorf("unexpected aggregate: %+v", agg)
	}
	if agg.Width != 5 {
		t.Errorf("Width = %d, want widest 5", agg.Width)
	}
	if agg.Elapsed != 2*time.Second {
		t.Errorf("Elapsed = %v, want 2s", agg.Elapsed)
	}
}
