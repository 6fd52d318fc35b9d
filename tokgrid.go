package tokgrid

import (
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-tokgrid/internal/wide"
	"github.com/jamesainslie/go-tokgrid/matcher"
)

// Marker tokens written around each cell's tokens when marking is enabled.
// They are the ASCII STX/ETX control characters, each emitted as its own
// single-byte token.
const (
	StartMarker = "\x02"
	EndMarker   = "\x03"
)

// Tokenizer splits batches of UTF-8 strings into dense, padded grids of
// sub-token strings. It is immutable after New and safe for concurrent use.
//
// A single empty separator selects character mode: one token per code point.
// Any other separator set selects separator mode: the longest separator
// found at the cursor cuts the string, and the spans between cuts become
// tokens.
type Tokenizer struct {
	separators  []string
	charMode    bool
	mark        bool
	minTokenLen int
	padValue    string
	tree        *matcher.Tree // nil in character mode
	logger      *slog.Logger
}

// New creates a Tokenizer for the given separator list. Configuration is
// validated eagerly: the separator list must be non-empty, an empty
// separator string is only allowed as the sole entry (character mode), and
// character mode caps the minimum token length at 1. The multi-pattern
// matcher is built here once; duplicate separators are silently ignored,
// first insertion wins.
func New(separators []string, opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.minTokenLen < 0 {
		return nil, fmt.Errorf("%w: negative min token length %d", ErrInvalidConfig, cfg.minTokenLen)
	}
	if len(separators) == 0 {
		return nil, fmt.Errorf("%w: requires at least one separator", ErrInvalidConfig)
	}

	charMode := len(separators) == 1 && separators[0] == ""
	if charMode && cfg.minTokenLen > 1 {
		return nil, fmt.Errorf("%w: min token length %d is too big for character tokenization",
			ErrInvalidConfig, cfg.minTokenLen)
	}

	t := &Tokenizer{
		separators:  append([]string(nil), separators...),
		charMode:    charMode,
		mark:        cfg.mark,
		minTokenLen: cfg.minTokenLen,
		padValue:    cfg.padValue,
		logger:      cfg.logger,
	}

	if !charMode {
		tree := matcher.New()
		for _, sep := range separators {
			if sep == "" {
				return nil, fmt.Errorf("%w: no empty separators allowed", ErrInvalidConfig)
			}
			units, ok := wide.Decode(sep)
			if !ok {
				return nil, fmt.Errorf("%w: separator contains invalid utf-8 chars: %q", ErrInvalidUTF8, sep)
			}
			tree.Put(units, len(units))
		}
		t.tree = tree
	}

	return t, nil
}

// CharMode reports whether the Tokenizer splits per code point.
func (t *Tokenizer) CharMode() bool { return t.charMode }

// Mark reports whether cells are wrapped in start/end marker tokens.
func (t *Tokenizer) Mark() bool { return t.mark }

// MinTokenLen returns the configured minimum token length in code units.
func (t *Tokenizer) MinTokenLen() int { return t.minTokenLen }

// PadValue returns the string used to fill unused trailing slots.
func (t *Tokenizer) PadValue() string { return t.padValue }

// Separators returns a copy of the configured separator list.
func (t *Tokenizer) Separators() []string { return append([]string(nil), t.separators...) }

// Compute tokenizes the input batch and writes the dense output grid into a
// buffer obtained from alloc. The input must be a string tensor of rank 1
// (treated as a single row) or rank 2 with positive dimensions. The output
// shape is the input shape with one trailing dimension appended: the
// maximum per-cell token count, counting two extra marker slots per cell
// when marking is enabled. No output is allocated if any validation or
// decode step fails.
func (t *Tokenizer) Compute(input Input, alloc OutputAllocator) error {
	if input.DataType() != TypeString {
		return fmt.Errorf("%w: tensor(string) expected as input", ErrInvalidType)
	}

	dims := input.Shape()
	var n, c int64
	switch len(dims) {
	case 1:
		n = 1
		c = dims[0]
		if c < 1 {
			return fmt.Errorf("%w: invalid C dimension value %d", ErrInvalidShape, c)
		}
	case 2:
		n, c = dims[0], dims[1]
		if n < 1 || c < 1 {
			return fmt.Errorf("%w: invalid N and/or C dimension values [%d %d]", ErrInvalidShape, n, c)
		}
	default:
		return fmt.Errorf("%w: input dimensions are either [C] or [N][C] allowed, got rank %d",
			ErrInvalidShape, len(dims))
	}

	data := input.Strings()
	if int64(len(data)) != n*c {
		return fmt.Errorf("%w: shape %v holds %d elements, have %d strings",
			ErrInvalidShape, dims, n*c, len(data))
	}

	var cells [][]string
	var err error
	if t.charMode {
		cells, err = t.charTokenize(data)
	} else {
		cells, err = t.separatorTokenize(data)
	}
	if err != nil {
		return err
	}

	maxTokens := t.maxTokens(cells)
	outShape := append(append(Shape(nil), dims...), int64(maxTokens))
	out, err := alloc.Allocate(outShape)
	if err != nil {
		return fmt.Errorf("allocating output: %w", err)
	}
	if int64(len(out)) != outShape.Elems() {
		return fmt.Errorf("%w: allocator returned %d slots for shape %v", ErrInvalidShape, len(out), outShape)
	}

	w := gridWriter{out: out, maxTokens: maxTokens, mark: t.mark, pad: t.padValue}
	for _, tokens := range cells {
		w.writeCell(tokens)
	}

	t.logger.Debug("tokenized batch",
		"cells", len(cells),
		"char_mode", t.charMode,
		"max_tokens", maxTokens)
	return nil
}

// Tokenize is a convenience wrapper for a rank-1 batch. It returns one
// padded row of length maxTokens per input string.
func (t *Tokenizer) Tokenize(batch []string) ([][]string, error) {
	in, err := NewStringTensor(Shape{int64(len(batch))}, batch)
	if err != nil {
		return nil, err
	}
	var out GridBuffer
	if err := t.Compute(in, &out); err != nil {
		return nil, err
	}
	return out.Rows(), nil
}

// TokenizeGrid is a convenience wrapper for a rank-2 batch. Rows must all
// have the same length.
func (t *Tokenizer) TokenizeGrid(rows [][]string) ([][][]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: invalid N and/or C dimension values [0 0]", ErrInvalidShape)
	}
	c := len(rows[0])
	flat := make([]string, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d",
				ErrInvalidShape, i, len(row), c)
		}
		flat = append(flat, row...)
	}

	in, err := NewStringTensor(Shape{int64(len(rows)), int64(c)}, flat)
	if err != nil {
		return nil, err
	}
	var out GridBuffer
	if err := t.Compute(in, &out); err != nil {
		return nil, err
	}

	cells := out.Rows()
	result := make([][][]string, len(rows))
	for i := range result {
		result[i] = cells[i*c : (i+1)*c]
	}
	return result, nil
}
