// Package ranker implements the brute-force sweep over all shift keys and
// the ranking of the resulting candidates.
package ranker

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"GoCaesar/internal/cipher"
	"GoCaesar/internal/lexicon"
)

// KeySpace is the number of shift keys tried, fixed at the Latin alphabet
// size. The sweep stays at 26 keys even when the text is Cyrillic (32),
// Greek (24), or Arabic (28); this mirrors the behavior of the system this
// engine replaces and is a known limitation for non-Latin scripts, not a
// per-script policy.
const KeySpace = 26

// TopN is the number of leading candidates reported alongside the full
// sweep.
const TopN = 5

// Candidate is one brute-forced decryption attempt.
type Candidate struct {
	Key       int     `json:"key"`
	Plaintext string  `json:"plaintext"`
	Score     float64 `json:"score"`
}

// Result is the ranked outcome of a sweep. All holds every candidate
// sorted by score descending with ties broken by ascending key, Top the
// first TopN of those, and Best the first.
type Result struct {
	Best Candidate
	Top  []Candidate
	All  []Candidate
}

// Ranker runs the sweep. It holds no state between calls and is safe for
// concurrent use.
type Ranker struct {
	scorer *lexicon.Scorer
}

// New creates a Ranker using the given scorer.
func New(scorer *lexicon.Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank decrypts ciphertext under every key in [0, KeySpace), scores each
// candidate for lang, and returns the deterministic ranking. It is total:
// any string and any language tag produce a Result, never an error.
// Repeated calls with the same inputs yield identical results, including
// tie order.
func (r *Ranker) Rank(ciphertext, lang string) Result {
	all := make([]Candidate, KeySpace)

	// The per-key computations are independent; order is imposed only by
	// the sort below.
	var g errgroup.Group
	for k := 0; k < KeySpace; k++ {
		k := k
		g.Go(func() error {
			plaintext := cipher.Decrypt(ciphertext, k)
			all[k] = Candidate{
				Key:       k,
				Plaintext: plaintext,
				Score:     r.scorer.Score(plaintext, lang),
			}
			return nil
		})
	}
	_ = g.Wait() // the workers never return errors

	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Key < all[j].Key
	})

	n := TopN
	if n > len(all) {
		n = len(all)
	}
	top := make([]Candidate, n)
	copy(top, all[:n])

	return Result{Best: all[0], Top: top, All: all}
}
