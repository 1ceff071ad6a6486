// Package lexicon holds the per-language known-word lists used to score
// candidate plaintexts, and the scorer built on them.
//
// The wordlists are short lists of common words compiled into the binary;
// lookup is case-insensitive exact match. This is deliberately not a
// statistical language model.
package lexicon

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed words_en.txt
var wordsEN string

//go:embed words_fr.txt
var wordsFR string

// FallbackLang is used when the caller supplies no language, "auto", or an
// unknown tag. Unknown tags never fail.
const FallbackLang = "en"

// Lexicon is a known-word list for one language.
type Lexicon struct {
	lang  string
	words map[string]struct{}
}

// Parse builds a Lexicon from newline-separated words. Blank lines are
// skipped and words are lowercased.
func Parse(lang, raw string) *Lexicon {
	words := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}
	return &Lexicon{lang: lang, words: words}
}

// Lang returns the language tag the lexicon was registered under.
func (l *Lexicon) Lang() string { return l.lang }

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int { return len(l.words) }

// Contains reports whether word is in the lexicon. Matching is exact and
// case-insensitive; no stemming or fuzzy matching.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Registry resolves language tags to lexicons.
type Registry struct {
	mu       sync.RWMutex
	lexicons map[string]*Lexicon
}

// NewRegistry creates a Registry with the embedded lexicons registered.
func NewRegistry() *Registry {
	r := &Registry{lexicons: make(map[string]*Lexicon)}
	r.lexicons["en"] = Parse("en", wordsEN)
	r.lexicons["fr"] = Parse("fr", wordsFR)
	return r
}

// Get returns the lexicon for the given language tag. Empty, "auto", and
// unknown tags all resolve to the fallback lexicon.
func (r *Registry) Get(lang string) *Lexicon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag := strings.ToLower(strings.TrimSpace(lang))
	if l, ok := r.lexicons[tag]; ok {
		return l
	}
	return r.lexicons[FallbackLang]
}

// Register adds a custom lexicon to the registry.
func (r *Registry) Register(lang string, l *Lexicon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag := strings.ToLower(strings.TrimSpace(lang))
	if _, exists := r.lexicons[tag]; exists {
		return fmt.Errorf("lexicon already registered: %q", tag)
	}
	r.lexicons[tag] = l
	return nil
}

// Names returns the registered language tags, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.lexicons))
	for name := range r.lexicons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
