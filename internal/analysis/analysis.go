// Package analysis tokenizes candidate plaintexts into words for scoring.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single word produced by the tokenizer.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Words splits text on runs of non-word runes and lowercases each token.
// Word runes are Unicode letters, digits, and underscore, so Cyrillic,
// Greek, and Arabic words tokenize whole rather than per character.
// Empty tokens are never produced.
func Words(text string) []Token {
	var tokens []Token
	pos := 0
	i := 0

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}

		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}

		tokens = append(tokens, Token{
			Term:      strings.ToLower(text[start:i]),
			Position:  pos,
			StartByte: start,
			EndByte:   i,
		})
		pos++
	}

	return tokens
}

// Terms returns just the lowercase terms of Words(text).
func Terms(text string) []string {
	tokens := Words(text)
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = tok.Term
	}
	return terms
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
