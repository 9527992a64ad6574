// Package core implements the similarity-scoring pipeline: tokenization,
// TF-IDF vector construction over a two-document corpus, and cosine
// similarity scoring.
//
// The pipeline is a linear data flow: raw text → tokens → aligned TF-IDF
// weight vectors → a scalar score in [0, 1]. Every entry point is a pure
// function of its inputs; nothing is cached or shared between calls, so
// the package is safe for concurrent use without coordination.
//
//	score := core.Score("the cat sat", "the cat sat on the mat")
//
// Tokenization is script-aware in a deliberately simple way: each CJK
// ideograph is its own token, runs of letters and digits merge into one
// lowercased token, and a fixed deny-list of ASCII and full-width
// punctuation is stripped. There is no stemming, stopword removal, or
// dictionary-based segmentation.
package core
