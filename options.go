package tokgrid

import "log/slog"

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	mark        bool
	minTokenLen int
	padValue    string
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		mark:        false,
		minTokenLen: 0,
		padValue:    "",
		logger:      slog.Default(),
	}
}

// WithMark enables wrapping each cell's tokens with the start/end marker
// tokens (default: false).
func WithMark(mark bool) Option {
	return func(c *config) {
		c.mark = mark
	}
}

// WithMinTokenLen sets the minimum token length in code units (default: 0).
// Tokens at or below this length are dropped from separator-mode output,
// except a trailing token after the last separator match, which is always
// kept. Must be at most 1 in character mode.
func WithMinTokenLen(n int) Option {
	return func(c *config) {
		c.minTokenLen = n
	}
}

// WithPadValue sets the string used to fill unused trailing slots
// (default: empty string).
func WithPadValue(pad string) Option {
	return func(c *config) {
		c.padValue = pad
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
