// Package clusterize groups sample labels by the similarity of their
// estimated fragment-size distributions.
//
// Labels can carry different numbers of bands, so raw fragment-size vectors
// are not directly comparable. Each label is instead reduced to a fixed
// two-dimensional summary feature vector (mean and standard deviation of its
// fragment sizes), and all distances and cluster assignments operate on those
// features.
package clusterize

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gelband/gelstat/fragment"
)

// FeatureVectors reduces annotated records to one (mean, stddev) feature
// vector per sample label. Labels come back sorted so downstream consumers
// are deterministic regardless of input order.
func FeatureVectors(records []fragment.Record) (labels []string, features [][]float64) {
	byLabel := make(map[string][]float64)
	for _, r := range records {
		byLabel[r.SampleLabel] = append(byLabel[r.SampleLabel], r.FragmentSize)
	}

	labels = make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	features = make([][]float64, 0, len(labels))
	for _, label := range labels {
		sizes := byLabel[label]
		m, s := stat.MeanStdDev(sizes, nil)
		if len(sizes) < 2 {
			// A single band has no spread; NaN would poison every distance.
			s = 0
		}
		features = append(features, []float64{m, s})
	}

	return labels, features
}
