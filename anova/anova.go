// Package anova compares groups of estimated fragment sizes with a one-way
// analysis of variance, and provides post-hoc pairwise contrasts over the
// pooled within-group variance.
package anova

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrEmptyComparisonGroup indicates that one of the groups held no
	// observations. Callers iterating many comparisons should isolate this
	// per comparison rather than aborting the whole run.
	ErrEmptyComparisonGroup = errors.New("anova: comparison group holds no observations")

	// ErrInsufficientObservations indicates that there were not enough
	// observations overall to estimate the within-group variance (N <= k).
	ErrInsufficientObservations = errors.New("anova: not enough observations to estimate within-group variance")
)

// Result summarizes a two-group comparison. CILower/CIUpper bound the 95%
// pooled-variance interval on the difference of means, computed as group A
// minus group B.
type Result struct {
	FStatistic float64
	PValue     float64
	CILower    float64
	CIUpper    float64
	DFBetween  int
	DFWithin   int
}

// Compare runs a one-way ANOVA between two groups of fragment sizes. With
// exactly two groups this is equivalent to the two-sample pooled t test
// (F = t²), which is why a difference-of-means confidence interval is a
// sensible companion to the F statistic.
//
// Two groups with zero within-group variance are handled explicitly rather
// than left to divide by zero: identical constant groups yield F = 0 and
// p = 1; separated constant groups yield F = +Inf and p = 0.
func Compare(groupA, groupB []float64) (Result, error) {
	f, err := fit([][]float64{groupA, groupB})
	if err != nil {
		return Result{}, err
	}

	res := Result{
		FStatistic: f.statistic,
		PValue:     f.pValue,
		DFBetween:  f.dfBetween,
		DFWithin:   f.dfWithin,
	}

	diff := stat.Mean(groupA, nil) - stat.Mean(groupB, nil)
	se := math.Sqrt(f.meanSquareWithin * (1/float64(len(groupA)) + 1/float64(len(groupB))))
	tq := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(f.dfWithin)}.Quantile(0.975)

	res.CILower = diff - tq*se
	res.CIUpper = diff + tq*se

	return res, nil
}

// oneWayFit carries the pieces of a fitted one-way ANOVA that both Compare
// and the post-hoc contrasts need.
type oneWayFit struct {
	statistic        float64
	pValue           float64
	dfBetween        int
	dfWithin         int
	meanSquareWithin float64
	means            []float64
	sizes            []int
}

func fit(groups [][]float64) (oneWayFit, error) {
	k := len(groups)
	n := 0
	for _, g := range groups {
		if len(g) == 0 {
			return oneWayFit{}, ErrEmptyComparisonGroup
		}
		n += len(g)
	}

	out := oneWayFit{
		dfBetween: k - 1,
		dfWithin:  n - k,
		means:     make([]float64, k),
		sizes:     make([]int, k),
	}
	if out.dfWithin < 1 {
		return oneWayFit{}, ErrInsufficientObservations
	}

	var grandSum float64
	for i, g := range groups {
		out.sizes[i] = len(g)
		out.means[i] = stat.Mean(g, nil)
		for _, v := range g {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(n)

	var ssBetween, ssWithin float64
	for i, g := range groups {
		d := out.means[i] - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, v := range g {
			e := v - out.means[i]
			ssWithin += e * e
		}
	}

	out.meanSquareWithin = ssWithin / float64(out.dfWithin)

	switch {
	case ssWithin == 0 && ssBetween == 0:
		// Every observation identical: no evidence of anything.
		out.statistic = 0
		out.pValue = 1
	case ssWithin == 0:
		// Constant groups at different levels: perfectly separated.
		out.statistic = math.Inf(1)
		out.pValue = 0
	default:
		out.statistic = (ssBetween / float64(out.dfBetween)) / out.meanSquareWithin
		fDist := distuv.F{D1: float64(out.dfBetween), D2: float64(out.dfWithin)}
		out.pValue = fDist.Survival(out.statistic)
	}

	return out, nil
}
