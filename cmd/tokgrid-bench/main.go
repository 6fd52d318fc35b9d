package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tokgrid "github.com/jamesainslie/go-tokgrid"
	"github.com/jamesainslie/go-tokgrid/internal/bench"
)

func main() {
	var (
		corpusDir   = flag.String("corpus", "testdata/corpus", "Directory containing .txt input files")
		separators  = flag.String("separators", " ", "Comma-separated list of separator strings")
		mark        = flag.Bool("mark", false, "Wrap each cell in start/end marker tokens")
		minTokenLen = flag.Int("min-token-len", 0, "Drop mid-string tokens at or below this length")
		padValue    = flag.String("pad", "", "Pad value for unused trailing slots")
		sweep       = flag.Bool("sweep", false, "Sweep separator subsets and rank by padding waste")
	)
	flag.Parse()

	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	seps := strings.Split(*separators, ",")
	opts := []tokgrid.Option{
		tokgrid.WithMark(*mark),
		tokgrid.WithMinTokenLen(*minTokenLen),
		tokgrid.WithPadValue(*padValue),
	}

	if *sweep {
		runSweep(docs, seps, opts)
		return
	}
	runSingle(docs, seps, opts)
}

func runSingle(docs []*bench.Document, seps []string, opts []tokgrid.Option) {
	tok, err := tokgrid.New(seps, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating tokenizer: %v\n", err)
		os.Exit(1)
	}

	var all []bench.Metrics
	for _, doc := range docs {
		m, err := bench.Measure(tok, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error measuring %s: %v\n", doc.ID, err)
			os.Exit(1)
		}
		fmt.Printf("%-20s %s\n", doc.ID, m)
		all = append(all, m)
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-20s %s\n", "total", bench.Aggregate(all))
}

// runSweep evaluates the full separator set plus each separator on its own.
func runSweep(docs []*bench.Document, seps []string, opts []tokgrid.Option) {
	candidates := [][]string{seps}
	if len(seps) > 1 {
		for _, s := range seps {
			candidates = append(candidates, []string{s})
		}
	}

	results, err := bench.Sweep(docs, candidates, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error sweeping: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Separator Sweep Results (densest grid first)")
	fmt.Println(strings.Repeat("-", 50))
	for _, r := range results {
		fmt.Printf("%-24q %s\n", r.Separators, r.Metrics)
	}
}
