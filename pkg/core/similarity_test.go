package core

import (
	"math"
	"testing"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	vec := []float64{0.3, 0.7, 0.1}

	if got := CosineSimilarity(vec, vec); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("CosineSimilarity(v, v) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	if got := CosineSimilarity([]float64{1, 0}, []float64{0, 1}); got != 0.0 {
		t.Errorf("CosineSimilarity(orthogonal) = %v, want 0.0", got)
	}
}

func TestCosineSimilarityZeroMagnitude(t *testing.T) {
	cases := [][2][]float64{
		{{0, 0}, {1, 2}},
		{{1, 2}, {0, 0}},
		{{}, {}},
	}
	for _, c := range cases {
		if got := CosineSimilarity(c[0], c[1]); got != 0.0 {
			t.Errorf("CosineSimilarity(%v, %v) = %v, want 0.0", c[0], c[1], got)
		}
	}
}

func TestCosineSimilarityMismatchedLength(t *testing.T) {
	if got := CosineSimilarity([]float64{1}, []float64{1, 2}); got != 0.0 {
		t.Errorf("CosineSimilarity(mismatched) = %v, want 0.0", got)
	}
}

func TestDotProduct(t *testing.T) {
	got := DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6})
	if math.Abs(got-32.0) > 1e-9 {
		t.Errorf("DotProduct() = %v, want 32.0", got)
	}
}
