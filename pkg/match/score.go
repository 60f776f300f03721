// Package match scores OCR-detected words against a query string and picks
// the best candidate out of a word index.
package match

import (
	"errors"
	"fmt"
	"sort"

	"github.com/eyespot/eyespot/pkg/hocr"
)

// ErrNoCandidates is returned by Resolve when the word index is empty.
var ErrNoCandidates = errors.New("no candidate words in index")

// NoMatchError reports that the best candidate for a query scored below the
// caller's required threshold.
type NoMatchError struct {
	Query    string
	Best     string
	Score    float64
	Required float64
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching word for %q: best candidate %q with score %.2f, required %.2f",
		e.Query, e.Best, e.Score, e.Required)
}

// Score rates how well candidate matches query, returning a value in [0, 1].
//
// Each rune of candidate can earn 1/len(candidate) when one of its positions
// in query continues the rune matched on the previous step. The allowed set
// of continuation positions is rebuilt from the current rune's occurrence
// list on every step, whether or not the rune matched. The function is not
// commutative; callers wanting a symmetric measure multiply both directions.
//
// OCR noise like transposed or dropped characters still scores well, which
// is the point: "Flie" finds "File". Extra runes in query are not penalized.
func Score(candidate, query string) float64 {
	c := []rune(candidate)
	q := []rune(query)
	if len(c) == 0 || len(q) == 0 {
		return 0.0
	}

	// All positions in query where each candidate rune occurs.
	positions := make([][]int, len(c))
	for i, r := range c {
		for j, qr := range q {
			if qr == r {
				positions[i] = append(positions[i], j)
			}
		}
	}

	perRune := 1.0 / float64(len(c))
	score := 0.0
	allowed := map[int]bool{0: true}
	for i := range c {
		for _, p := range positions[i] {
			if allowed[p] {
				score += perRune
				break
			}
		}
		next := make(map[int]bool, len(positions[i]))
		for _, p := range positions[i] {
			next[p+1] = true
		}
		allowed = next
	}

	return score
}

// Resolve scores every word in the index against query and returns the best
// candidate with its combined score. The combined score is the product of
// both directed scores, so a word has to match the query and vice versa.
//
// A low score is not an error here; the caller compares the returned score
// against its own threshold. An empty index is a precondition violation.
func Resolve(query string, index hocr.WordIndex) (float64, string, error) {
	if len(index) == 0 {
		return 0, "", ErrNoCandidates
	}

	type scored struct {
		score float64
		word  string
	}
	candidates := make([]scored, 0, len(index))
	for w := range index {
		candidates = append(candidates, scored{Score(w, query) * Score(query, w), w})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score < candidates[j].score
		}
		return candidates[i].word < candidates[j].word
	})

	best := candidates[len(candidates)-1]
	return best.score, best.word, nil
}
