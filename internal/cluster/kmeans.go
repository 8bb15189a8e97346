package cluster

// partition splits vecs into k groups with Lloyd's algorithm. Seeds are picked
// deterministically: the first vector, then repeatedly the vector farthest
// from every seed chosen so far. Equidistant candidates resolve to the lower
// index, both when seeding and when assigning. ok is false when a group ends
// up empty, which tells the caller to retry with a smaller k.
func partition(vecs [][]float64, k, maxIter int) (assign []int, ok bool) {
	centers := seedCenters(vecs, k)
	assign = make([]int, len(vecs))
	for i := range assign {
		assign[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, v := range vecs {
			best := nearest(v, centers)
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		centers = recenter(vecs, assign, centers)
	}

	sizes := make([]int, k)
	for _, a := range assign {
		sizes[a]++
	}
	for _, s := range sizes {
		if s == 0 {
			return assign, false
		}
	}
	return assign, true
}

func seedCenters(vecs [][]float64, k int) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, clone(vecs[0]))
	for len(centers) < k {
		bestIdx, bestDist := 0, -1.0
		for i, v := range vecs {
			d := sqDistance(v, centers[nearest(v, centers)])
			if d > bestDist {
				bestIdx, bestDist = i, d
			}
		}
		centers = append(centers, clone(vecs[bestIdx]))
	}
	return centers
}

func nearest(v []float64, centers [][]float64) int {
	best, bestDist := 0, sqDistance(v, centers[0])
	for c := 1; c < len(centers); c++ {
		if d := sqDistance(v, centers[c]); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// recenter moves each center to the mean of its members. A center that lost
// all members stays where it was.
func recenter(vecs [][]float64, assign []int, old [][]float64) [][]float64 {
	dim := len(vecs[0])
	sums := make([][]float64, len(old))
	counts := make([]int, len(old))
	for i, v := range vecs {
		c := assign[i]
		if sums[c] == nil {
			sums[c] = make([]float64, dim)
		}
		for j, x := range v {
			sums[c][j] += x
		}
		counts[c]++
	}
	centers := make([][]float64, len(old))
	for c := range old {
		if counts[c] == 0 {
			centers[c] = old[c]
			continue
		}
		for j := range sums[c] {
			sums[c][j] /= float64(counts[c])
		}
		centers[c] = sums[c]
	}
	return centers
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
