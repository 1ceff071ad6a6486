// Package cipher implements the alphabet-aware shift transform.
package cipher

import (
	"strings"

	"GoCaesar/internal/alphabet"
)

// Shift applies a shift of k positions backwards (the decryption direction)
// to every alphabetic rune of text. Runes outside the supported alphabets
// are copied through unchanged, so the output has the same runes at the
// same positions as the input.
//
// Each rune shifts within its own alphabet: Latin wraps at 26, Cyrillic at
// 32, Greek at 24, Arabic at 28. k may be negative or larger than the
// alphabet; it is normalized by modulo per alphabet.
//
// Shift is its own inverse under negation: Shift(Shift(t, k), -k) == t.
func Shift(text string, k int) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		c, ok := alphabet.Classify(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		size := c.Size()
		// Normalize k per alphabet first so extreme keys cannot overflow.
		pos := (c.Pos(r) - k%size) % size
		if pos < 0 {
			pos += size
		}
		b.WriteRune(c.Rune(pos))
	}
	return b.String()
}

// Encrypt shifts plaintext forward by k, producing ciphertext.
func Encrypt(plaintext string, k int) string {
	return Shift(plaintext, -k)
}

// Decrypt undoes Encrypt with the same key: Decrypt(Encrypt(t, k), k) == t.
func Decrypt(ciphertext string, k int) string {
	return Shift(ciphertext, k)
}
