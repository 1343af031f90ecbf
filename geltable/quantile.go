package geltable

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gelband/gelstat/fragment"
)

// QuantileScores returns, aligned with records, each record's empirical
// quantile among all fragment sizes sharing its sample label. The scores are
// a reporting annotation only; nothing in the statistical core consumes them.
func QuantileScores(records []fragment.Record) []float64 {
	sortedByLabel := make(map[string][]float64)
	for _, r := range records {
		sortedByLabel[r.SampleLabel] = append(sortedByLabel[r.SampleLabel], r.FragmentSize)
	}
	for _, sizes := range sortedByLabel {
		sort.Float64s(sizes)
	}

	out := make([]float64, 0, len(records))
	for _, r := range records {
		out = append(out, stat.CDF(r.FragmentSize, stat.Empirical, sortedByLabel[r.SampleLabel], nil))
	}

	return out
}
