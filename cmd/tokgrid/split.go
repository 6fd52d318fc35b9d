package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tokgrid "github.com/jamesainslie/go-tokgrid"
	"github.com/spf13/cobra"
)

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [string ...]",
		Short: "Split each input string on the configured separators",
		Long: `Split tokenizes its arguments (or stdin lines when no arguments are
given) on the configured separator strings and prints the padded grid, one
row per input string. All rows have the same number of slots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args, activeCfg.Separators)
		},
	}
}

func newCharsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chars [string ...]",
		Short: "Split each input string into one token per code point",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A single empty separator selects character mode.
			return runTokenize(cmd, args, []string{""})
		},
	}
}

func runTokenize(cmd *cobra.Command, args, separators []string) error {
	batch := args
	if len(batch) == 0 {
		var err error
		batch, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	if len(batch) == 0 {
		return errors.New("no input strings provided")
	}

	tok, err := tokgrid.New(separators,
		tokgrid.WithMark(activeCfg.Mark),
		tokgrid.WithMinTokenLen(activeCfg.MinTokenLen),
		tokgrid.WithPadValue(activeCfg.PadValue),
		tokgrid.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	rows, err := tok.Tokenize(batch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, row := range rows {
		fmt.Fprintf(out, "%d:", i)
		for _, token := range row {
			fmt.Fprintf(out, " %q", token)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
