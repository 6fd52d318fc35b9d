package tokgrid

import (
	"fmt"

	"github.com/jamesainslie/go-tokgrid/internal/wide"
)

// separatorTokenize splits each cell on the configured separators and
// returns the per-cell token lists in row-major order.
//
// The scan keeps a cursor and a last-cut position over the cell's code
// units. A separator match cuts the pending span, which is emitted only if
// strictly longer than minTokenLen; a miss advances the cursor by one unit
// so the pending span keeps growing. Whatever remains after the scan is
// emitted unconditionally, so trailing content survives the length filter
// that drops short spans mid-string.
func (t *Tokenizer) separatorTokenize(data []string) ([][]string, error) {
	cells := make([][]string, 0, len(data))
	for _, s := range data {
		units, ok := wide.Decode(s)
		if !ok {
			return nil, fmt.Errorf("%w: invalid utf8 chars in the input: %q", ErrInvalidUTF8, s)
		}

		var tokens []string
		lastCut := 0
		pos := 0
		for pos < len(units) {
			length, found := t.tree.Match(units, pos)
			if !found {
				pos++
				continue
			}
			if pos-lastCut > t.minTokenLen {
				tokens = append(tokens, wide.Encode(units[lastCut:pos]))
			}
			pos += length
			lastCut = pos
		}
		if pos > lastCut {
			tokens = append(tokens, wide.Encode(units[lastCut:pos]))
		}

		cells = append(cells, tokens)
	}
	return cells, nil
}

// charTokenize emits one token per code point in each cell, each being that
// code point's own UTF-8 bytes. No length filtering applies.
func (t *Tokenizer) charTokenize(data []string) ([][]string, error) {
	cells := make([][]string, 0, len(data))
	for _, s := range data {
		count, ok := wide.Validate(s)
		if !ok {
			return nil, fmt.Errorf("%w: input string contains invalid utf8 chars: %q", ErrInvalidUTF8, s)
		}

		tokens := make([]string, 0, count)
		for i := 0; i < len(s); {
			n := wide.ByteLen(s[i])
			tokens = append(tokens, s[i:i+n])
			i += n
		}

		cells = append(cells, tokens)
	}
	return cells, nil
}
