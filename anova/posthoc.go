package anova

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gelband/gelstat/padjust"
)

// PairwiseResult is one post-hoc contrast between two named groups.
// Difference is the mean of A minus the mean of B.
type PairwiseResult struct {
	LabelA     string
	LabelB     string
	Difference float64
	CILower    float64
	CIUpper    float64
	PValue     float64
	AdjustedP  float64
}

// Pairwise runs Tukey-style post-hoc contrasts after a one-way fit across the
// named groups: every pair is compared using the pooled within-group variance
// from the full fit, and the resulting p-values are Holm-adjusted across the
// family of contrasts. labels and groups are parallel slices.
func Pairwise(labels []string, groups [][]float64) ([]PairwiseResult, error) {
	f, err := fit(groups)
	if err != nil {
		return nil, err
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(f.dfWithin)}
	tq := tDist.Quantile(0.975)

	out := make([]PairwiseResult, 0, len(groups)*(len(groups)-1)/2)
	raw := make([]float64, 0, cap(out))

	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			diff := f.means[i] - f.means[j]
			se := math.Sqrt(f.meanSquareWithin * (1/float64(f.sizes[i]) + 1/float64(f.sizes[j])))

			var p float64
			switch {
			case se == 0 && diff == 0:
				p = 1
			case se == 0:
				p = 0
			default:
				p = 2 * tDist.Survival(math.Abs(diff)/se)
			}

			out = append(out, PairwiseResult{
				LabelA:     labels[i],
				LabelB:     labels[j],
				Difference: diff,
				CILower:    diff - tq*se,
				CIUpper:    diff + tq*se,
				PValue:     p,
			})
			raw = append(raw, p)
		}
	}

	adjusted, err := padjust.Adjust(raw, padjust.Holm)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].AdjustedP = adjusted[i]
	}

	return out, nil
}
