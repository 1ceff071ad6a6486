// Package alphabet classifies runes into the cased alphabets the cipher
// operates on. Each supported script maps independently for upper and lower
// case so that shifting never changes case or script.
package alphabet

// Class describes one cased alphabet: its first letter, its size, and how
// to convert between a rune and its position in the alphabet.
//
// Most alphabets are contiguous Unicode ranges and positions are plain
// offsets from Base. Greek and Arabic carry an explicit letter table
// because their blocks contain gaps (U+03A2) or extra forms (final sigma,
// ta marbuta, alef maqsura) that are not part of the 24- and 28-letter
// alphabets.
type Class struct {
	Name string
	Base rune
	size int

	// letters is non-empty for non-contiguous alphabets; index is its
	// reverse lookup. Both are nil for contiguous ranges.
	letters []rune
	index   map[rune]int
}

var (
	latinUpper = &Class{Name: "latin-upper", Base: 'A', size: 26}
	latinLower = &Class{Name: "latin-lower", Base: 'a', size: 26}

	// А..Я and а..я are contiguous 32-letter blocks. Ё/ё sit outside the
	// block and pass through unclassified.
	cyrillicUpper = &Class{Name: "cyrillic-upper", Base: 'А', size: 32}
	cyrillicLower = &Class{Name: "cyrillic-lower", Base: 'а', size: 32}

	// Α..Ω skips the unassigned U+03A2; α..ω skips final sigma so both
	// cases hold the same 24 letters.
	greekUpper = listed("greek-upper", []rune("ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"))
	greekLower = listed("greek-lower", []rune("αβγδεζηθικλμνξοπρστυφχψω"))

	// The 28 basic Arabic letters. Other code points in the ا..ي span
	// (ta marbuta, alef maqsura, tatweel) are not letters of the cipher
	// alphabet and pass through.
	arabic = listed("arabic", []rune("ابتثجحخدذرزسشصضطظعغفقكلمنهوي"))
)

func listed(name string, letters []rune) *Class {
	c := &Class{
		Name:    name,
		Base:    letters[0],
		size:    len(letters),
		letters: letters,
		index:   make(map[rune]int, len(letters)),
	}
	for i, r := range letters {
		c.index[r] = i
	}
	return c
}

// Classify returns the alphabet class of r, or ok=false for any rune that
// belongs to no supported alphabet. Unsupported runes are never an error;
// the transform copies them through unchanged.
func Classify(r rune) (*Class, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return latinUpper, true
	case r >= 'a' && r <= 'z':
		return latinLower, true
	case r >= 'А' && r <= 'Я':
		return cyrillicUpper, true
	case r >= 'а' && r <= 'я':
		return cyrillicLower, true
	}
	if _, ok := greekUpper.index[r]; ok {
		return greekUpper, true
	}
	if _, ok := greekLower.index[r]; ok {
		return greekLower, true
	}
	if _, ok := arabic.index[r]; ok {
		return arabic, true
	}
	return nil, false
}

// Size returns the number of letters in the alphabet.
func (c *Class) Size() int {
	return c.size
}

// Pos returns the 0-based position of r within the alphabet.
// r must have been classified into c.
func (c *Class) Pos(r rune) int {
	if c.letters == nil {
		return int(r - c.Base)
	}
	return c.index[r]
}

// Rune returns the letter at the given 0-based position.
// pos must be in [0, Size).
func (c *Class) Rune(pos int) rune {
	if c.letters == nil {
		return c.Base + rune(pos)
	}
	return c.letters[pos]
}

// IsLetter reports whether r belongs to any supported alphabet.
func IsLetter(r rune) bool {
	_, ok := Classify(r)
	return ok
}
