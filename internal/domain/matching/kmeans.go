package matching

import "math/rand"

// kmeansSeed fixes the centroid initialization so clustering is
// reproducible across runs.
const kmeansSeed = 42

const kmeansMaxIterations = 100

// kmeans assigns each vector a cluster label in [0,k). Standard Lloyd
// iterations with deterministic seeded initialization; empty clusters keep
// their previous centroid.
func kmeans(vecs [][]float64, k int) []int {
	n := len(vecs)
	if n == 0 {
		return nil
	}
	if k <= 1 || n == 1 {
		return make([]int, n)
	}
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(kmeansSeed))

	// Pick k distinct starting points.
	perm := rng.Perm(n)
	dim := len(vecs[0])
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), vecs[perm[i]]...)
	}

	labels := make([]int, n)
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, v := range vecs {
			best := 0
			bestDist := squaredDistance(v, centroids[0])
			for c := 1; c < k; c++ {
				if d := squaredDistance(v, centroids[c]); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vecs {
			c := labels[i]
			counts[c]++
			for d := 0; d < dim && d < len(v); d++ {
				sums[c][d] += v[d]
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dim; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return labels
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := 0; i < len(a) && i < len(b); i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
