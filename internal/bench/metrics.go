package bench

import (
	"fmt"
	"time"

	tokgrid "github.com/jamesainslie/go-tokgrid"
)

// Metrics describes one tokenization run over a batch.
type Metrics struct {
	Cells    int // input strings tokenized
	Width    int // trailing output dimension (maxTokens)
	Tokens   int // real tokens written, markers excluded
	PadSlots int // slots filled with the pad value
	Bytes    int // input payload bytes
	Elapsed  time.Duration
}

// PadRatio returns the fraction of output slots wasted on padding.
func (m Metrics) PadRatio() float64 {
	total := m.Cells * m.Width
	if total == 0 {
		return 0
	}
	return float64(m.PadSlots) / float64(total)
}

// TokensPerSec returns token throughput.
func (m Metrics) TokensPerSec() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Tokens) / m.Elapsed.Seconds()
}

// BytesPerSec returns input byte throughput.
func (m Metrics) BytesPerSec() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Bytes) / m.Elapsed.Seconds()
}

// String formats the metrics for terminal output.
func (m Metrics) String() string {
	return fmt.Sprintf("cells=%d width=%d tokens=%d pad=%.1f%% %.0f tok/s %.0f B/s",
		m.Cells, m.Width, m.Tokens, 100*m.PadRatio(), m.TokensPerSec(), m.BytesPerSec())
}

// Measure tokenizes one document batch and derives run metrics. Marker
// slots count as occupied but not as tokens. Pad slots are counted from
// the trailing pad run of each row, so a real token equal to the pad value
// in the middle of a row is still counted as a token.
func Measure(tok *tokgrid.Tokenizer, doc *Document) (Metrics, error) {
	start := time.Now()
	rows, err := tok.Tokenize(doc.Lines)
	if err != nil {
		return Metrics{}, fmt.Errorf("tokenizing %s: %w", doc.ID, err)
	}
	elapsed := time.Since(start)

	m := Metrics{
		Cells:   len(rows),
		Bytes:   doc.Bytes,
		Elapsed: elapsed,
	}
	if len(rows) > 0 {
		m.Width = len(rows[0])
	}

	for _, row := range rows {
		body := row
		if tok.Mark() && len(body) >= 2 {
			body = body[1 : len(body)-1]
		}
		pads := 0
		for i := len(body) - 1; i >= 0; i-- {
			if body[i] != tok.PadValue() {
				break
			}
			pads++
		}
		m.PadSlots += pads
		m.Tokens += len(body) - pads
	}

	return m, nil
}

// Aggregate merges per-document metrics into corpus totals. Width becomes
// the widest document's width.
func Aggregate(all []Metrics) Metrics {
	var agg Metrics
	for _, m := range all {
		agg.Cells += m.Cells
		agg.Tokens += m.Tokens
		agg.PadSlots += m.PadSlots
		agg.Bytes += m.Bytes
		agg.Elapsed += m.Elapsed
		if m.Width > agg.Width {
			agg.Width = m.Width
		}
	}
	return agg
}
