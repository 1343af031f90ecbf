// Package padjust adjusts vectors of p-values for multiple comparisons.
//
// The six procedures reproduce the reference formulations used by the
// standard statistics packages (including Hommel's closed-testing loop and
// the Benjamini–Yekutieli harmonic factor), so adjusted values can be checked
// directly against R's p.adjust. Every method returns a vector of the same
// length and order as its input, with each adjusted value clipped to [0, 1]
// and never below the raw value.
package padjust

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrEmptyInput indicates that a zero-length p-value vector was passed in,
// which signals caller-level misuse rather than bad data.
var ErrEmptyInput = errors.New("padjust: empty p-value vector")

// Method selects a p-value adjustment procedure.
type Method int

const (
	Bonferroni Method = iota
	Holm
	Hochberg
	Hommel
	BenjaminiHochberg
	BenjaminiYekutieli
)

func (m Method) String() string {
	switch m {
	case Bonferroni:
		return "bonferroni"
	case Holm:
		return "holm"
	case Hochberg:
		return "hochberg"
	case Hommel:
		return "hommel"
	case BenjaminiHochberg:
		return "BH"
	case BenjaminiYekutieli:
		return "BY"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a user-supplied method name onto a Method. Names follow
// the conventional abbreviations ("BH" and "fdr" are synonyms).
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "bonferroni":
		return Bonferroni, nil
	case "holm":
		return Holm, nil
	case "hochberg":
		return Hochberg, nil
	case "hommel":
		return Hommel, nil
	case "bh", "fdr", "benjamini-hochberg":
		return BenjaminiHochberg, nil
	case "by", "benjamini-yekutieli":
		return BenjaminiYekutieli, nil
	}
	return 0, fmt.Errorf("padjust: unknown method %q (want bonferroni, holm, hochberg, hommel, BH, or BY)", name)
}

// Adjust returns the adjusted p-values for p under the chosen method, in the
// same order as the input. The input is not modified.
func Adjust(p []float64, method Method) ([]float64, error) {
	n := len(p)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, n)

	switch method {
	case Bonferroni:
		for i, v := range p {
			out[i] = clip(v * float64(n))
		}

	case Holm:
		// Step-down: walk the sorted p-values from smallest to largest with
		// multipliers n, n-1, ..., enforcing a running maximum.
		o := order(p, false)
		running := math.Inf(-1)
		for i, idx := range o {
			v := float64(n-i) * p[idx]
			if v > running {
				running = v
			}
			out[idx] = clip(running)
		}

	case Hochberg:
		// Step-up: walk from the largest p-value down with multipliers
		// 1, 2, ..., enforcing a running minimum.
		o := order(p, true)
		running := math.Inf(1)
		for i, idx := range o {
			v := float64(i+1) * p[idx]
			if v < running {
				running = v
			}
			out[idx] = clip(running)
		}

	case Hommel:
		hommel(p, out)

	case BenjaminiHochberg:
		o := order(p, true)
		running := math.Inf(1)
		for i, idx := range o {
			rank := n - i
			v := float64(n) / float64(rank) * p[idx]
			if v < running {
				running = v
			}
			out[idx] = clip(running)
		}

	case BenjaminiYekutieli:
		var q float64
		for i := 1; i <= n; i++ {
			q += 1 / float64(i)
		}
		o := order(p, true)
		running := math.Inf(1)
		for i, idx := range o {
			rank := n - i
			v := q * float64(n) / float64(rank) * p[idx]
			if v < running {
				running = v
			}
			out[idx] = clip(running)
		}

	default:
		return nil, fmt.Errorf("padjust: unknown method %v", method)
	}

	return out, nil
}

// hommel writes Hommel-adjusted values of p into out. This is a direct port
// of the closed-testing formulation used by the reference implementations;
// the loop indices look opaque because they are faithful to it.
func hommel(p []float64, out []float64) {
	n := len(p)

	o := order(p, false)
	ps := make([]float64, n)
	for i, idx := range o {
		ps[i] = p[idx]
	}

	m0 := math.Inf(1)
	for i := 0; i < n; i++ {
		if v := float64(n) * ps[i] / float64(i+1); v < m0 {
			m0 = v
		}
	}

	q := make([]float64, n)
	pa := make([]float64, n)
	for i := range q {
		q[i] = m0
		pa[i] = m0
	}

	for m := n - 1; m >= 2; m-- {
		// Upper block: the m-1 largest sorted p-values, paired with
		// denominators 2..m.
		q1 := math.Inf(1)
		for t := 0; t < m-1; t++ {
			idx := n - m + 1 + t
			if v := float64(m) * ps[idx] / float64(t+2); v < q1 {
				q1 = v
			}
		}

		// Lower block: indices 0..n-m.
		for i := 0; i <= n-m; i++ {
			q[i] = math.Min(float64(m)*ps[i], q1)
		}
		for i := n - m + 1; i < n; i++ {
			q[i] = q[n-m]
		}

		for i := range pa {
			if q[i] > pa[i] {
				pa[i] = q[i]
			}
		}
	}

	for i, idx := range o {
		out[idx] = clip(math.Max(pa[i], ps[i]))
	}
}

// order returns the permutation of indices that sorts p. Ties keep their
// input order so results are deterministic.
func order(p []float64, decreasing bool) []int {
	idx := make([]int, len(p))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if decreasing {
			return p[idx[a]] > p[idx[b]]
		}
		return p[idx[a]] < p[idx[b]]
	})
	return idx
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
