package lexicon

import "GoCaesar/internal/analysis"

// Scorer rates how plausible a candidate plaintext is for a language.
type Scorer struct {
	reg *Registry
}

// NewScorer creates a Scorer backed by the given registry.
func NewScorer(reg *Registry) *Scorer {
	return &Scorer{reg: reg}
}

// Score returns the fraction of word tokens in text that appear in the
// lexicon for lang, in [0, 1]. Text with no tokens scores 0. Unknown or
// absent language tags use the fallback lexicon.
func (s *Scorer) Score(text, lang string) float64 {
	terms := analysis.Terms(text)
	if len(terms) == 0 {
		return 0
	}

	lex := s.reg.Get(lang)
	matched := 0
	for _, term := range terms {
		if lex.Contains(term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}
