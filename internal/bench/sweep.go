package bench

import (
	"sort"

	tokgrid "github.com/jamesainslie/go-tokgrid"
)

// SweepResult holds aggregated metrics for one candidate separator set.
type SweepResult struct {
	Separators []string
	Metrics    Metrics
}

// Sweep tokenizes the corpus once per candidate separator set and returns
// the results sorted by padding waste, densest grid first. Candidates that
// fail validation (for example an empty set) surface their error.
func Sweep(docs []*Document, candidates [][]string, opts ...tokgrid.Option) ([]SweepResult, error) {
	var results []SweepResult

	for _, separators := range candidates {
		tok, err := tokgrid.New(separators, opts...)
		if err != nil {
			return nil, err
		}

		var all []Metrics
		for _, doc := range docs {
			m, err := Measure(tok, doc)
			if err != nil {
				return nil, err
			}
			all = append(all, m)
		}

		results = append(results, SweepResult{
			Separators: separators,
			Metrics:    Aggregate(all),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.PadRatio() < results[j].Metrics.PadRatio()
	})

	return results, nil
}
