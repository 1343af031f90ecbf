package clusterize

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const maxKMeansIterations = 100

// KMeans runs Lloyd's algorithm over the per-label feature vectors with k
// centers. Initialization samples k distinct points using a rand.Rand seeded
// by the caller, so a fixed seed always reproduces the same assignment.
func KMeans(labels []string, features [][]float64, k int, seed int64) (map[string]int, error) {
	n := len(features)
	if k < 1 || k > n {
		return nil, fmt.Errorf("clusterize: k-means needs 1 <= k <= %d labels, got k = %d", n, k)
	}

	rnd := rand.New(rand.NewSource(seed))

	// Forgy initialization: k distinct observations as starting centers.
	perm := rnd.Perm(n)
	centers := make([][]float64, k)
	for c := 0; c < k; c++ {
		centers[c] = append([]float64(nil), features[perm[c]]...)
	}

	assign := make([]int, n)
	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false

		for i, x := range features {
			nearest, nearestDist := 0, floats.Distance(x, centers[0], 2)
			for c := 1; c < k; c++ {
				if dist := floats.Distance(x, centers[c], 2); dist < nearestDist {
					nearest, nearestDist = c, dist
				}
			}
			if assign[i] != nearest {
				assign[i] = nearest
				changed = true
			}
		}

		if !changed && iter > 0 {
			break
		}

		// Recompute centers as member means. A center that lost all of its
		// members keeps its previous position.
		for c := 0; c < k; c++ {
			var count int
			sum := make([]float64, len(centers[c]))
			for i, a := range assign {
				if a != c {
					continue
				}
				floats.Add(sum, features[i])
				count++
			}
			if count > 0 {
				floats.Scale(1/float64(count), sum)
				centers[c] = sum
			}
		}
	}

	out := make(map[string]int, n)
	for i, label := range labels {
		out[label] = assign[i]
	}

	return out, nil
}
