package clusterize

import "math"

// Hierarchical performs agglomerative average-linkage (UPGMA) clustering over
// the distance matrix and cuts the tree at k clusters. It returns one cluster
// id per label; ids are assigned in order of each cluster's first label, so
// the assignment is deterministic.
func Hierarchical(d *DistanceMatrix, k int) map[string]int {
	n := d.Len()
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	// Each active cluster is the set of original label indices it contains.
	clusters := make([][]int, 0, n)
	for i := 0; i < n; i++ {
		clusters = append(clusters, []int{i})
	}

	for len(clusters) > k {
		// Find the pair of clusters with the smallest average linkage.
		// Strict less-than keeps ties on the earliest pair, which makes
		// repeated runs identical.
		bestI, bestJ := -1, -1
		best := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				if link := averageLinkage(d, clusters[i], clusters[j]); link < best {
					best = link
					bestI, bestJ = i, j
				}
			}
		}

		clusters[bestI] = append(clusters[bestI], clusters[bestJ]...)
		clusters = append(clusters[:bestJ], clusters[bestJ+1:]...)
	}

	out := make(map[string]int, n)
	for id, members := range clusters {
		for _, idx := range members {
			out[d.Labels[idx]] = id
		}
	}

	return out
}

// averageLinkage is the mean of all cross-cluster pairwise distances.
func averageLinkage(d *DistanceMatrix, a, b []int) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += d.at(i, j)
		}
	}
	return sum / float64(len(a)*len(b))
}
