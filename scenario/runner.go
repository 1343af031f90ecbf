package scenario

import (
	"fmt"

	"github.com/gelband/gelstat/anova"
	"github.com/gelband/gelstat/fragment"
)

// Run executes every scenario in order against annotated reference and sample
// tables: the reference table is filtered to the scenario's reference label,
// the sample table to its sample label, and the resulting fragment-size
// groups are compared. Matching scores are computed over the same filtered
// subsets.
//
// A scenario that cannot be computed (a label with no rows, degenerate
// groups, a duplicate band key in the join) is recorded with its error and
// does not abort the remaining scenarios; callers get as many results as the
// data allows, each annotated with its own status.
func Run(scenarios []Scenario, reference, sample []fragment.Record) []Result {
	results := make([]Result, 0, len(scenarios))

	for _, sc := range scenarios {
		res := newResult(sc)

		refRecords := filterByLabel(reference, sc.ReferenceLabel)
		samRecords := filterByLabel(sample, sc.SampleLabel)

		cmp, err := anova.Compare(sizesOf(refRecords), sizesOf(samRecords))
		if err != nil {
			res.Err = fmt.Errorf("scenario %q vs %q: %w", sc.ReferenceLabel, sc.SampleLabel, err)
			results = append(results, res)
			continue
		}
		res.Comparison = cmp

		matches, err := fragment.Score(refRecords, samRecords)
		if err != nil {
			res.Err = fmt.Errorf("scenario %q vs %q: %w", sc.ReferenceLabel, sc.SampleLabel, err)
			results = append(results, res)
			continue
		}
		res.Matches = matches

		results = append(results, res)
	}

	return results
}

func filterByLabel(records []fragment.Record, label string) []fragment.Record {
	out := make([]fragment.Record, 0, len(records))
	for _, r := range records {
		if r.SampleLabel == label {
			out = append(out, r)
		}
	}
	return out
}

func sizesOf(records []fragment.Record) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		out = append(out, r.FragmentSize)
	}
	return out
}
