// Package frequency implements classical frequency analysis for shift
// ciphers: letter histograms, a most-frequent-letter key guess, and
// statistical plausibility measures (chi-squared, entropy, bigram
// likelihood). These are auxiliary diagnostics; the ranking score of the
// brute-force engine is the lexicon fraction, not any of these.
package frequency

import (
	"math"
	"strings"

	"GoCaesar/internal/alphabet"
	"GoCaesar/internal/cipher"
)

// referenceLetter is the letter assumed most frequent in plaintext for the
// supported languages. Both English and French peak at 'e'.
const referenceLetter = 'e'

// Letters returns the relative frequency of each alphabetic rune in text,
// case-folded to lower case. Non-alphabetic runes are ignored. Empty or
// letterless text yields an empty map.
func Letters(text string) map[rune]float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range strings.ToLower(text) {
		if alphabet.IsLetter(r) {
			counts[r]++
			total++
		}
	}

	freqs := make(map[rune]float64, len(counts))
	if total == 0 {
		return freqs
	}
	for r, c := range counts {
		freqs[r] = float64(c) / float64(total)
	}
	return freqs
}

// GuessKey proposes a shift key by assuming the most frequent Latin letter
// of the ciphertext decrypts to 'e'. Returns 0 for text without Latin
// letters. Ties go to the alphabetically smallest letter so the guess is
// deterministic.
func GuessKey(ciphertext, lang string) int {
	_ = lang // both supported languages share the 'e' reference

	freqs := Letters(ciphertext)
	var best rune
	bestFreq := -1.0
	for r, f := range freqs {
		if r < 'a' || r > 'z' {
			continue
		}
		if f > bestFreq || (f == bestFreq && r < best) {
			best, bestFreq = r, f
		}
	}
	if bestFreq < 0 {
		return 0
	}

	k := int(best-referenceLetter) % 26
	if k < 0 {
		k += 26
	}
	return k
}

// DecryptByGuess decrypts ciphertext with the key proposed by GuessKey and
// returns both.
func DecryptByGuess(ciphertext, lang string) (string, int) {
	k := GuessKey(ciphertext, lang)
	return cipher.Decrypt(ciphertext, k), k
}

// ChiSquared scores how closely the Latin letter distribution of text
// matches the expected distribution for lang, mapped into (0, 1] where
// higher is closer. Letterless text scores 0.
//
// The raw Pearson statistic is normalized by degrees of freedom and mapped
// through an exponential decay, so typical natural text lands near 1 and
// uniformly scrambled text near 0.
func ChiSquared(text, lang string) float64 {
	expected := expectedFreq(lang)

	counts := make(map[rune]int)
	n := 0
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			counts[r]++
			n++
		}
	}
	if n == 0 {
		return 0
	}

	chi2 := 0.0
	df := 0
	for r := 'a'; r <= 'z'; r++ {
		exp := expected[r] * float64(n)
		obs := float64(counts[r])
		if exp > 0 {
			chi2 += (obs - exp) * (obs - exp) / exp
			df++
		} else if obs > 0 {
			chi2 += obs * 10
		}
	}
	if df > 1 {
		chi2 /= float64(df - 1)
	}

	switch {
	case chi2 < 1:
		return 1
	case chi2 < 50:
		return math.Exp(-chi2 / 10)
	default:
		return 1 / (1 + chi2/100)
	}
}

// Entropy returns the Shannon entropy in bits per rune over all runes of
// text. Empty text has entropy 0. Natural language tends to land between
// 3.5 and 4.5 bits when measured over letters.
func Entropy(text string) float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}
	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// BigramLogLikelihood sums English bigram log-probabilities over every
// adjacent rune pair of the lowercased text, charging a fixed penalty for
// bigrams outside the table. More negative means less English-like.
// Text shorter than one bigram scores 0.
func BigramLogLikelihood(text string) float64 {
	runes := []rune(strings.ToLower(text))
	if len(runes) < 2 {
		return 0
	}

	score := 0.0
	for i := 0; i+1 < len(runes); i++ {
		g := string(runes[i : i+2])
		if p, ok := englishBigramLogProb[g]; ok {
			score += p
		} else {
			score += unknownBigramPenalty
		}
	}
	return score
}
