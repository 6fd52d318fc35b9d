package tokgrid

import "fmt"

// maxTokens returns the widest cell's slot count across the batch,
// including the two marker slots per cell when marking is enabled.
func (t *Tokenizer) maxTokens(cells [][]string) int {
	max := 0
	for _, tokens := range cells {
		n := len(tokens)
		if t.mark {
			n += 2
		}
		if n > max {
			max = n
		}
	}
	return max
}

// gridWriter lays ragged per-cell token lists into a dense row-major
// buffer. Each cell occupies exactly maxTokens consecutive slots:
// optional start marker, the tokens, pad values, optional end marker.
type gridWriter struct {
	out       []string
	maxTokens int
	mark      bool
	pad       string
	next      int
}

func (g *gridWriter) writeCell(tokens []string) {
	start := g.next
	if g.mark {
		g.write(StartMarker)
	}
	for _, tok := range tokens {
		g.write(tok)
	}
	pads := g.maxTokens - len(tokens)
	if g.mark {
		pads -= 2
	}
	for i := 0; i < pads; i++ {
		g.write(g.pad)
	}
	if g.mark {
		g.write(EndMarker)
	}
	// Pass 1 sized the buffer from the same counts, so anything but an
	// exact fill is a bug, not bad input.
	if g.next-start != g.maxTokens {
		panic(fmt.Sprintf("tokgrid: cell wrote %d of %d slots", g.next-start, g.maxTokens))
	}
}

func (g *gridWriter) write(s string) {
	g.out[g.next] = s
	g.next++
}
