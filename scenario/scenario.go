// Package scenario drives the declared set of reference-versus-sample
// comparisons and collects one result per comparison.
package scenario

import (
	"math"

	"github.com/gelband/gelstat/anova"
	"github.com/gelband/gelstat/fragment"
	"github.com/gelband/gelstat/padjust"
)

// Scenario pairs a reference label with a sample label. The scenario list is
// declared up front, as data, and its order fixes the order of every
// downstream result vector.
type Scenario struct {
	ReferenceLabel string
	SampleLabel    string
}

// Result is the outcome of one scenario. Each result carries its Scenario, so
// consumers should key on the label pair rather than on position; positional
// alignment with the input list holds but is an implementation detail.
//
// AdjustedP is NaN until AdjustPValues has run, and stays NaN for failed
// scenarios.
type Result struct {
	Scenario   Scenario
	Comparison anova.Result
	Matches    []fragment.MatchingScore
	AdjustedP  float64
	Err        error
}

// Failed reports whether this scenario could not be computed.
func (r Result) Failed() bool { return r.Err != nil }

// PValues returns the raw p-values of the successful results, in result
// order, along with the indices they came from.
func PValues(results []Result) (p []float64, indices []int) {
	for i, r := range results {
		if r.Failed() {
			continue
		}
		p = append(p, r.Comparison.PValue)
		indices = append(indices, i)
	}
	return p, indices
}

// AdjustPValues applies the chosen correction across the p-values of every
// successful scenario and returns a copy of results with AdjustedP filled in.
// Failed scenarios are excluded from the correction vector and keep
// AdjustedP = NaN; because results stay keyed by their label pair, excluding
// them cannot misalign anything. A run where every scenario failed is
// returned unchanged.
func AdjustPValues(results []Result, method padjust.Method) ([]Result, error) {
	p, indices := PValues(results)

	out := append([]Result(nil), results...)
	if len(p) == 0 {
		return out, nil
	}

	adjusted, err := padjust.Adjust(p, method)
	if err != nil {
		return nil, err
	}

	for j, i := range indices {
		out[i].AdjustedP = adjusted[j]
	}

	return out, nil
}

func newResult(sc Scenario) Result {
	return Result{Scenario: sc, AdjustedP: math.NaN()}
}
