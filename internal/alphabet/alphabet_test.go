package alphabet

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		wantName string
		wantSize int
	}{
		{"latin upper first", 'A', "latin-upper", 26},
		{"latin upper last", 'Z', "latin-upper", 26},
		{"latin lower", 'q', "latin-lower", 26},
		{"cyrillic upper", 'Д', "cyrillic-upper", 32},
		{"cyrillic lower", 'ж', "cyrillic-lower", 32},
		{"cyrillic lower last", 'я', "cyrillic-lower", 32},
		{"greek upper", 'Ω', "greek-upper", 24},
		{"greek lower", 'α', "greek-lower", 24},
		{"greek lower last", 'ω', "greek-lower", 24},
		{"arabic first", 'ا', "arabic", 28},
		{"arabic last", 'ي', "arabic", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Classify(tt.r)
			if !ok {
				t.Fatalf("Classify(%q) not classified, want %s", tt.r, tt.wantName)
			}
			if c.Name != tt.wantName {
				t.Errorf("Classify(%q) class = %s, want %s", tt.r, c.Name, tt.wantName)
			}
			if c.Size() != tt.wantSize {
				t.Errorf("Classify(%q) size = %d, want %d", tt.r, c.Size(), tt.wantSize)
			}
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	unsupported := []rune{'0', '9', ' ', '!', ',', '-', '_', 'é', 'ß', 'Ё', 'ё', 'ς', 'ة', 'ى', 'ـ', '日', '😀'}
	for _, r := range unsupported {
		if _, ok := Classify(r); ok {
			t.Errorf("Classify(%q) classified, want pass-through", r)
		}
	}
}

func TestPosRuneRoundTrip(t *testing.T) {
	classes := []*Class{latinUpper, latinLower, cyrillicUpper, cyrillicLower, greekUpper, greekLower, arabic}
	for _, c := range classes {
		for pos := 0; pos < c.Size(); pos++ {
			r := c.Rune(pos)
			got, ok := Classify(r)
			if !ok || got != c {
				t.Fatalf("%s: Rune(%d) = %q did not classify back into the same class", c.Name, pos, r)
			}
			if p := c.Pos(r); p != pos {
				t.Errorf("%s: Pos(Rune(%d)) = %d", c.Name, pos, p)
			}
		}
	}
}

func TestGreekGap(t *testing.T) {
	// The unassigned U+03A2 sits between Ρ and Σ; positions must skip it.
	if p := greekUpper.Pos('Σ'); p != greekUpper.Pos('Ρ')+1 {
		t.Errorf("Σ position = %d, want %d", p, greekUpper.Pos('Ρ')+1)
	}
	// Final sigma is not part of the alphabet.
	if _, ok := Classify('ς'); ok {
		t.Error("final sigma should not classify")
	}
}

func TestIsLetter(t *testing.T) {
	if !IsLetter('k') || !IsLetter('Щ') || !IsLetter('م') {
		t.Error("expected letters to classify")
	}
	if IsLetter('7') || IsLetter('.') {
		t.Error("expected non-letters to pass through")
	}
}
