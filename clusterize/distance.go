package clusterize

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is a symmetric, label-indexed matrix of Euclidean distances
// between per-label feature vectors. The diagonal is zero and
// Distance(a, b) == Distance(b, a) by construction.
type DistanceMatrix struct {
	Labels []string

	index map[string]int
	m     *mat.SymDense
}

// NewDistanceMatrix computes all pairwise Euclidean distances between the
// feature vectors. labels and features are parallel slices, as produced by
// FeatureVectors.
func NewDistanceMatrix(labels []string, features [][]float64) *DistanceMatrix {
	n := len(labels)

	d := &DistanceMatrix{
		Labels: append([]string(nil), labels...),
		index:  make(map[string]int, n),
		m:      mat.NewSymDense(n, nil),
	}
	for i, label := range labels {
		d.index[label] = i
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.m.SetSym(i, j, floats.Distance(features[i], features[j], 2))
		}
	}

	return d
}

// Distance returns the distance between two labels.
func (d *DistanceMatrix) Distance(a, b string) float64 {
	return d.m.At(d.index[a], d.index[b])
}

// Len returns the number of labels in the matrix.
func (d *DistanceMatrix) Len() int {
	return len(d.Labels)
}

func (d *DistanceMatrix) at(i, j int) float64 {
	return d.m.At(i, j)
}
