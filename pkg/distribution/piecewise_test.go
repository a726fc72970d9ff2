package distribution

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewPiecewise1D_Errors(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{"Empty weights", []float64{}},
		{"Nil weights", nil},
		{"Negative weight", []float64{1, -0.5, 2}},
		{"NaN weight", []float64{1, math.NaN(), 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPiecewise1D(tt.weights); err == nil {
				t.Errorf("Expected error for weights %v", tt.weights)
			}
		})
	}
}

func TestPiecewise1D_Probabilities(t *testing.T) {
	dist, err := NewPiecewise1D([]float64{1, 3, 0, 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if dist.Sum() != 8 {
		t.Errorf("Expected total mass 8, got %f", dist.Sum())
	}
	if dist.Len() != 4 {
		t.Errorf("Expected 4 buckets, got %d", dist.Len())
	}

	expected := []float64{0.125, 0.375, 0, 0.5}
	for i, want := range expected {
		if got := dist.Prob(i); math.Abs(got-want) > 1e-15 {
			t.Errorf("Prob(%d) = %f, expected %f", i, got, want)
		}
	}

	// Out-of-range indices carry no probability
	if dist.Prob(-1) != 0 || dist.Prob(4) != 0 {
		t.Error("Out-of-range buckets should have probability 0")
	}
}

func TestPiecewise1D_SampleMatchesProb(t *testing.T) {
	dist, err := NewPiecewise1D([]float64{0.2, 1.5, 0.9, 3.1, 0.01})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		idx, prob := dist.Sample(random.Float64())
		if idx < 0 || idx >= dist.Len() {
			t.Fatalf("Sampled index %d out of range", idx)
		}
		if prob != dist.Prob(idx) {
			t.Fatalf("Sample reported probability %g, Prob(%d) = %g", prob, idx, dist.Prob(idx))
		}
		if prob <= 0 {
			t.Fatalf("Sampled bucket %d with non-positive probability %g", idx, prob)
		}
	}
}

func TestPiecewise1D_SampleProportions(t *testing.T) {
	weights := []float64{1, 2, 3, 4}
	dist, err := NewPiecewise1D(weights)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	random := rand.New(rand.NewSource(7))
	const draws = 200000
	counts := make([]int, len(weights))
	for i := 0; i < draws; i++ {
		idx, _ := dist.Sample(random.Float64())
		counts[idx]++
	}

	for i, w := range weights {
		want := w / 10
		got := float64(counts[i]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("Bucket %d frequency %f, expected %f", i, got, want)
		}
	}
}

func TestPiecewise1D_ZeroBucketNeverSampled(t *testing.T) {
	dist, err := NewPiecewise1D([]float64{1, 0, 0, 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	random := rand.New(rand.NewSource(99))
	for i := 0; i < 50000; i++ {
		idx, _ := dist.Sample(random.Float64())
		if idx == 1 || idx == 2 {
			t.Fatalf("Sampled zero-mass bucket %d", idx)
		}
	}

	// An exact hit on the plateau must advance to the next bucket with mass
	idx, prob := dist.Sample(0.5)
	if prob <= 0 {
		t.Errorf("Exact plateau hit selected zero-mass bucket %d", idx)
	}
}

func TestPiecewise1D_ZeroMassFallback(t *testing.T) {
	dist, err := NewPiecewise1D([]float64{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if dist.Sum() != 0 {
		t.Errorf("Expected zero total mass, got %f", dist.Sum())
	}

	// Zero-mass distributions behave as uniform
	for i := 0; i < 4; i++ {
		if got := dist.Prob(i); got != 0.25 {
			t.Errorf("Prob(%d) = %f, expected uniform 0.25", i, got)
		}
	}

	tests := []struct {
		u        float64
		expected int
	}{
		{0.0, 0},
		{0.26, 1},
		{0.51, 2},
		{0.99, 3},
	}
	for _, tt := range tests {
		idx, prob := dist.Sample(tt.u)
		if idx != tt.expected {
			t.Errorf("Sample(%f) selected bucket %d, expected %d", tt.u, idx, tt.expected)
		}
		if prob != 0.25 {
			t.Errorf("Sample(%f) reported probability %f, expected 0.25", tt.u, prob)
		}
	}
}
