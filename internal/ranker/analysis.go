package ranker

import "GoCaesar/internal/alphabet"

// echoLimit caps the ciphertext and plaintext echoed in an Analysis, in
// runes.
const echoLimit = 500

// Analysis is the exchange form of a ranked result: the shape served by
// the HTTP API and consumed by remote clients. Score is always a number in
// [0, 1]. Key is nil when the input contains no alphabetic content, since
// no shift is distinguishable then.
type Analysis struct {
	Cipher     string      `json:"cipher"`
	Key        *int        `json:"key,omitempty"`
	PlainText  string      `json:"plainText"`
	Score      float64     `json:"score"`
	Candidates []Candidate `json:"candidates"`
}

// Analyze runs Rank and shapes the outcome for exchange. Local and remote
// paths both produce this form, so a fallback from one to the other is
// invisible to callers.
func (r *Ranker) Analyze(ciphertext, lang string) Analysis {
	res := r.Rank(ciphertext, lang)

	a := Analysis{
		Cipher:     truncateRunes(ciphertext, echoLimit),
		PlainText:  truncateRunes(res.Best.Plaintext, echoLimit),
		Score:      res.Best.Score,
		Candidates: res.Top,
	}
	if hasLetters(ciphertext) {
		key := res.Best.Key
		a.Key = &key
	}
	return a
}

func hasLetters(s string) bool {
	for _, r := range s {
		if alphabet.IsLetter(r) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
