package core

// Comparison reports the outcome of scoring one document pair, including
// the intermediate sizes useful for diagnostics and history records.
type Comparison struct {
	Score           float64
	OriginalTokens  int
	CandidateTokens int
	VocabSize       int
}

// Compare runs the full pipeline on two raw documents: tokenize both,
// build aligned TF-IDF vectors, and score them with cosine similarity. If
// either input is the empty string the pipeline is skipped entirely and the
// score is 0.0. The score is clamped to [0, 1] to absorb floating-point
// overshoot.
//
// Compare is a pure function of its inputs and safe for concurrent use.
func Compare(original, candidate string) Comparison {
	if original == "" || candidate == "" {
		return Comparison{}
	}

	tokensA := Tokenize(original)
	tokensB := Tokenize(candidate)
	vecA, vecB := BuildVectors(tokensA, tokensB)

	return Comparison{
		Score:           clamp01(CosineSimilarity(vecA, vecB)),
		OriginalTokens:  len(tokensA),
		CandidateTokens: len(tokensB),
		VocabSize:       len(vecA),
	}
}

// Score returns the TF-IDF cosine similarity of two documents as a value
// in [0, 1].
func Score(original, candidate string) float64 {
	return Compare(original, candidate).Score
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
