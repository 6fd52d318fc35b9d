// Package tokgrid tokenizes batches of UTF-8 strings into fixed-width grids
// of sub-token strings, padded so every cell has the same number of slots.
//
// # Quick Start
//
//	tok, err := tokgrid.New([]string{" "}, tokgrid.WithMark(true), tokgrid.WithPadValue("[PAD]"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := tok.Tokenize([]string{"a b", "a b c"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// rows[0] = [START "a" "b" "[PAD]" END]
//	// rows[1] = [START "a" "b" "c" END]
//
// # Modes
//
// A separator list with a single empty string selects character mode: every
// code point becomes its own token. Any other list selects separator mode:
// the input is scanned left to right and the longest separator starting at
// the cursor cuts the string. Separator lookup does not backtrack; see
// matcher.Tree.Match for the consequences when one separator is a prefix of
// another.
//
// # Thread Safety
//
// A Tokenizer is immutable after New and safe for concurrent use; each
// Compute call keeps all scratch state local.
package tokgrid
