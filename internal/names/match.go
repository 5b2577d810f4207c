package names

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const (
	// MatchThreshold is the minimum normalized edit-distance similarity
	// for a typo-tolerant match. Tuned empirically: "Ibrahimovik" passes,
	// "Ronaldinho" vs "Ronaldo" does not.
	MatchThreshold = 0.8

	// MinPartialLength is the shortest guess eligible for a partial or
	// surname match. Anything shorter is too cheap to count.
	MinPartialLength = 3

	partialScore = 0.9
)

// Result is the outcome of validating a guess against a target name.
type Result struct {
	Match bool    `json:"isMatch"`
	Score float64 `json:"score"`
}

func levenshtein() *metrics.Levenshtein {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	m.InsertCost = 1
	m.DeleteCost = 1
	m.ReplaceCost = 1
	return m
}

// ValidateGuess decides whether guess identifies target. Rules are applied
// in order, first hit wins:
//
//  1. empty (after normalization) → no match
//  2. exact normalized match → score 1.0
//  3. surname / multi-word suffix match ("Van Dijk" → "Virgil van Dijk"),
//     guess length ≥ MinPartialLength → score ≥ 0.9
//  4. edit-distance similarity against the full name or its last token
//     ≥ MatchThreshold → match with that score
//  5. otherwise no match, sub-threshold similarity kept as a diagnostic
func ValidateGuess(guess, target string) Result {
	g := Normalize(guess)
	t := Normalize(target)
	if g == "" || t == "" {
		return Result{}
	}

	if g == t {
		return Result{Match: true, Score: 1.0}
	}

	last := LastToken(t)
	if len(g) >= MinPartialLength && (g == last || strings.HasSuffix(t, " "+g)) {
		score := partialScore + (1-partialScore)*float64(len(g))/float64(len(t))
		if score > 1 {
			score = 1
		}
		return Result{Match: true, Score: score}
	}

	lev := levenshtein()
	sim := strutil.Similarity(g, t, lev)
	if len(g) >= MinPartialLength {
		if s := strutil.Similarity(g, last, lev); s > sim {
			sim = s
		}
	}
	if sim >= MatchThreshold {
		return Result{Match: true, Score: sim}
	}
	return Result{Match: false, Score: sim}
}
