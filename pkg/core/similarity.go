package core

import "math"

// SimilarityFunc defines a function that scores two aligned weight vectors.
type SimilarityFunc func(a, b []float64) float64

// CosineSimilarity computes the cosine of the angle between two aligned
// weight vectors. A zero-magnitude input (all-zero or empty vectors) scores
// 0.0 rather than dividing by zero, and mismatched lengths also score 0.0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0.0 || normB == 0.0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// DotProduct computes the dot product of two aligned weight vectors.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var sum float64
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}
