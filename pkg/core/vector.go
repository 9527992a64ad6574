package core

import "math"

// corpusSize is fixed at two: the scorer always compares exactly one
// original against exactly one candidate. Extending the IDF formula to
// larger corpora would require tracking document frequency across all of
// them, which is out of scope here.
const corpusSize = 2

// termStats holds raw term counts and the total token count for one
// document.
type termStats struct {
	counts map[string]int
	total  int
}

func newTermStats(tokens []string) termStats {
	s := termStats{counts: make(map[string]int, len(tokens)), total: len(tokens)}
	for _, tok := range tokens {
		s.counts[tok]++
	}
	return s
}

// normalizedFreq returns the term frequency of tok divided by document
// length, or 0 for an empty document.
func (s termStats) normalizedFreq(tok string) float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.counts[tok]) / float64(s.total)
}

// BuildVectors computes aligned TF-IDF weight vectors for two tokenized
// documents. The vocabulary is the union of both documents' distinct
// tokens; both vectors iterate it in one shared order, so they always have
// equal length and matching index-to-token alignment. The IDF weight uses
// the smoothed form ln((N+1)/(df+1))+1, which never divides by zero and
// stays positive for every vocabulary token.
//
// A document with no tokens contributes zero weight at every index; if
// both documents are empty the vocabulary is empty and both vectors have
// length zero.
func BuildVectors(tokensA, tokensB []string) ([]float64, []float64) {
	statsA := newTermStats(tokensA)
	statsB := newTermStats(tokensB)

	vocab := make([]string, 0, len(statsA.counts)+len(statsB.counts))
	seen := make(map[string]struct{}, len(statsA.counts)+len(statsB.counts))
	for tok := range statsA.counts {
		seen[tok] = struct{}{}
		vocab = append(vocab, tok)
	}
	for tok := range statsB.counts {
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			vocab = append(vocab, tok)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, tok := range vocab {
		df := 0
		if _, ok := statsA.counts[tok]; ok {
			df++
		}
		if _, ok := statsB.counts[tok]; ok {
			df++
		}
		idf := math.Log(float64(corpusSize+1)/float64(df+1)) + 1

		vecA[i] = statsA.normalizedFreq(tok) * idf
		vecB[i] = statsB.normalizedFreq(tok) * idf
	}

	return vecA, vecB
}
