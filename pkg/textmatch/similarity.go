package textmatch

import "strings"

// Similarity scores how closely document contains reference or a close
// paraphrase of it, in [0,1]. Both inputs are expected to be normalized
// (callers that take raw text run Normalize first).
//
// Exact substring containment scores 1.0. Otherwise the score is derived
// from the levenshtein distance between reference and the best-matching
// region of the document: matching may start and end at any document
// position, so a short required phrase is never penalized for the length of
// the page it sits in. Locality still holds because the reference's words
// scattered far apart cost one insertion per intervening character.
//
// An empty reference scores 0; rule tables are validated at startup so an
// empty reference only occurs on misconfiguration.
func Similarity(reference, document string) float64 {
	if reference == "" || document == "" {
		return 0
	}
	if strings.Contains(document, reference) {
		return 1.0
	}
	distance := bestRegionDistance(reference, document)
	score := 1.0 - float64(distance)/float64(len(reference))
	if score < 0 {
		return 0
	}
	return score
}

// bestRegionDistance computes the minimum levenshtein distance between
// reference and any substring of document, using two-row dynamic
// programming: row zero is all zeros (a match may begin anywhere) and the
// answer is the minimum of the final row (a match may end anywhere).
func bestRegionDistance(reference, document string) int {
	previous := make([]int, len(document)+1)
	current := make([]int, len(document)+1)

	for i := 1; i <= len(reference); i++ {
		current[0] = i
		for j := 1; j <= len(document); j++ {
			cost := 1
			if reference[i-1] == document[j-1] {
				cost = 0
			}
			insertion := current[j-1] + 1
			deletion := previous[j] + 1
			substitution := previous[j-1] + cost
			current[j] = min3(insertion, deletion, substitution)
		}
		previous, current = current, previous
	}

	best := previous[0]
	for j := 1; j <= len(document); j++ {
		if previous[j] < best {
			best = previous[j]
		}
	}
	return best
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
