// Package distribution implements sampling from piecewise-constant
// distributions via discretized inverse-transform (CDF inversion).
package distribution

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Piecewise1D is a discrete distribution over n buckets, built once from
// non-negative weights and immutable afterwards. Sampling inverts the
// normalized cumulative sum with a binary search; the probability reported
// by Sample is always identical to what Prob returns for the same bucket.
//
// A distribution whose weights are all zero stays usable: it samples and
// reports probabilities as if the weights were uniform.
type Piecewise1D struct {
	cdf []float64 // normalized running sums; cdf[n-1] == 1 when sum > 0
	sum float64   // total unnormalized mass
}

// NewPiecewise1D builds a distribution from bucket weights.
// Weights must be non-negative; the slice is not retained.
func NewPiecewise1D(weights []float64) (*Piecewise1D, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("distribution: no weights")
	}

	cdf := make([]float64, len(weights))
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("distribution: weight must be non-negative, got %g at bucket %d", w, i)
		}
		cdf[i] = w
	}
	floats.CumSum(cdf, cdf)

	sum := cdf[len(cdf)-1]
	if sum > 0 {
		floats.Scale(1/sum, cdf)
		cdf[len(cdf)-1] = 1 // guard against rounding in the final entry
	}

	return &Piecewise1D{cdf: cdf, sum: sum}, nil
}

// Len returns the number of buckets
func (p *Piecewise1D) Len() int {
	return len(p.cdf)
}

// Sum returns the total unnormalized mass the distribution was built from
func (p *Piecewise1D) Sum() float64 {
	return p.sum
}

// Sample inverts the CDF for a uniform u in [0, 1) and returns the selected
// bucket index together with its probability
func (p *Piecewise1D) Sample(u float64) (int, float64) {
	n := len(p.cdf)
	if p.sum == 0 {
		idx := int(u * float64(n))
		if idx > n-1 {
			idx = n - 1
		}
		return idx, 1 / float64(n)
	}

	// Smallest bucket whose cumulative value reaches u
	idx := sort.SearchFloat64s(p.cdf, u)
	if idx > n-1 {
		idx = n - 1
	}

	// An exact hit on a plateau of zero-mass buckets would otherwise select
	// a bucket with probability 0; advance to the next bucket with mass
	for idx < n-1 && p.Prob(idx) == 0 {
		idx++
	}

	return idx, p.Prob(idx)
}

// Prob returns the probability of the given bucket
func (p *Piecewise1D) Prob(idx int) float64 {
	if idx < 0 || idx >= len(p.cdf) {
		return 0
	}
	if p.sum == 0 {
		return 1 / float64(len(p.cdf))
	}
	if idx == 0 {
		return p.cdf[0]
	}
	return p.cdf[idx] - p.cdf[idx-1]
}
