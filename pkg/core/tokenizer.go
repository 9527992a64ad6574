package core

import (
	"strings"
	"unicode"
)

// Punctuation stripped before scanning: ASCII punctuation plus the common
// full-width CJK marks. This is a fixed deny-list, not a general Unicode
// punctuation rule, so scoring stays reproducible across Go releases.
const (
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	cjkPunctuation   = "，。！？；：“”‘’【】（）《》"
)

var strippedPunctuation = func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range asciiPunctuation + cjkPunctuation {
		set[r] = struct{}{}
	}
	return set
}()

// scanState tracks whether the tokenizer is inside an alphanumeric run.
type scanState int

const (
	stateIdle scanState = iota
	stateInRun
)

// isIdeograph reports whether r falls in the CJK Unified Ideographs block.
func isIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// Tokenize splits text into an ordered token sequence. Each CJK ideograph
// becomes its own single-character token, while runs of letters and digits
// (any script) merge into one lowercased token. Deny-listed punctuation is
// removed before scanning, so it joins the characters around it; any other
// symbol terminates the current run and is discarded, as is whitespace.
// Empty input yields no tokens. Tokenize accepts every string and never
// fails.
func Tokenize(text string) []string {
	var tokens []string
	var run strings.Builder
	state := stateIdle

	flush := func() {
		if state == stateInRun {
			tokens = append(tokens, run.String())
			run.Reset()
			state = stateIdle
		}
	}

	for _, r := range strings.ToLower(text) {
		if _, stripped := strippedPunctuation[r]; stripped {
			continue
		}
		switch {
		case unicode.IsSpace(r):
			flush()
		case isIdeograph(r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			run.WriteRune(r)
			state = stateInRun
		default:
			// Residual symbol: ends the run, emits nothing.
			flush()
		}
	}
	flush()

	return tokens
}
