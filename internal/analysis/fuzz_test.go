package analysis

import "testing"

func FuzzWords(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("привет мир")
	f.Add("Γειά σου")
	f.Add("مرحبا بالعالم")
	f.Add("12345!!!")

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Words(input)

		for i, tok := range tokens {
			if tok.Position != i {
				t.Errorf("token %d position = %d", i, tok.Position)
			}
			if tok.StartByte < 0 || tok.EndByte > len(input) || tok.StartByte >= tok.EndByte {
				t.Errorf("invalid byte offsets: start=%d end=%d len=%d", tok.StartByte, tok.EndByte, len(input))
			}
			if tok.Term == "" {
				t.Error("empty term produced")
			}
		}
	})
}
