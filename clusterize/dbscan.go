package clusterize

// Noise is the cluster id given to labels that no density-based cluster
// claims. Noise is a valid outcome of DBSCAN, not an error.
const Noise = -1

// DBSCAN runs density-based clustering over the distance matrix with
// neighborhood radius eps and core-point threshold minPts (a point counts
// toward its own neighborhood). Labels unreachable from any core point come
// back as Noise.
func DBSCAN(d *DistanceMatrix, eps float64, minPts int) map[string]int {
	n := d.Len()

	const unvisited = -2
	assign := make([]int, n)
	for i := range assign {
		assign[i] = unvisited
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if assign[i] != unvisited {
			continue
		}

		neighbors := regionQuery(d, i, eps)
		if len(neighbors) < minPts {
			assign[i] = Noise
			continue
		}

		assign[i] = clusterID

		// Expand the cluster breadth-first. Noise points reached here are
		// border points and get adopted.
		queue := append([]int(nil), neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]

			if assign[j] == Noise {
				assign[j] = clusterID
			}
			if assign[j] != unvisited {
				continue
			}
			assign[j] = clusterID

			if expanded := regionQuery(d, j, eps); len(expanded) >= minPts {
				queue = append(queue, expanded...)
			}
		}

		clusterID++
	}

	out := make(map[string]int, n)
	for i, label := range d.Labels {
		out[label] = assign[i]
	}

	return out
}

func regionQuery(d *DistanceMatrix, i int, eps float64) []int {
	var neighbors []int
	for j := 0; j < d.Len(); j++ {
		if d.at(i, j) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
