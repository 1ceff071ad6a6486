package frequency

// Relative letter frequencies for English and French running text.
// Source: standard corpus statistics, as used by classical cryptanalysis.
var englishLetterFreq = map[rune]float64{
	'a': 0.08167, 'b': 0.01492, 'c': 0.02782, 'd': 0.04253, 'e': 0.12702,
	'f': 0.02228, 'g': 0.02015, 'h': 0.06094, 'i': 0.06966, 'j': 0.00153,
	'k': 0.00772, 'l': 0.04025, 'm': 0.02406, 'n': 0.06749, 'o': 0.07507,
	'p': 0.01929, 'q': 0.00095, 'r': 0.05987, 's': 0.06327, 't': 0.09056,
	'u': 0.02758, 'v': 0.00978, 'w': 0.02360, 'x': 0.00150, 'y': 0.01974,
	'z': 0.00074,
}

var frenchLetterFreq = map[rune]float64{
	'a': 0.07636, 'b': 0.00901, 'c': 0.03260, 'd': 0.03669, 'e': 0.14715,
	'f': 0.01066, 'g': 0.00866, 'h': 0.00737, 'i': 0.07529, 'j': 0.00613,
	'k': 0.00049, 'l': 0.05456, 'm': 0.02968, 'n': 0.07110, 'o': 0.05796,
	'p': 0.02521, 'q': 0.01362, 'r': 0.06693, 's': 0.07948, 't': 0.07244,
	'u': 0.06311, 'v': 0.01629, 'w': 0.00074, 'x': 0.00427, 'y': 0.00128,
	'z': 0.00326,
}

// englishBigramLogProb holds log-probabilities of the most common English
// bigrams. Bigrams not listed get unknownBigramPenalty.
var englishBigramLogProb = map[string]float64{
	"th": -3.5, "he": -3.8, "in": -3.9, "er": -4.0, "an": -4.1, "re": -4.1,
	"nd": -4.3, "at": -4.4, "on": -4.4, "nt": -4.5, "ha": -4.5, "es": -4.6,
	"st": -4.6, "en": -4.7, "ed": -4.7, "to": -4.7, "it": -4.7, "ou": -4.8,
	"ea": -4.8, "hi": -4.8, "is": -4.9, "or": -4.9, "ti": -4.9, "as": -4.9,
	"te": -5.0, "et": -5.0, "ng": -5.0, "of": -5.0, "al": -5.0, "de": -5.1,
	"se": -5.1, "le": -5.1, "sa": -5.1, "si": -5.2, "ar": -5.2, "ve": -5.2,
	"ra": -5.2, "ld": -5.3, "ur": -5.3, "ac": -5.3, "ne": -5.3, "no": -5.3,
	"fo": -5.3, "co": -5.3, "me": -5.4, "ec": -5.4, "ot": -5.4, "ri": -5.4,
	"ro": -5.4, "io": -5.4, "ic": -5.4, "ma": -5.4, "ta": -5.4, "el": -5.4,
	"li": -5.4, "om": -5.4, "us": -5.4, "ce": -5.5, "ca": -5.5, "il": -5.5,
	"na": -5.5, "la": -5.5, "ge": -5.5, "un": -5.5, "ch": -5.5, "wi": -5.5,
	"di": -5.5, "pe": -5.5, "be": -5.5, "so": -5.5, "rt": -5.5, "wa": -5.5,
	"nc": -5.6, "wh": -5.6, "tr": -5.6, "pr": -5.6, "ul": -5.6, "ni": -5.6,
	"ns": -5.6, "ts": -5.6, "ow": -5.6, "em": -5.6, "ie": -5.6, "ll": -5.6,
	"ut": -5.6, "po": -5.6, "lo": -5.6, "ss": -5.6, "ad": -5.6, "ho": -5.6,
	"rs": -5.6, "mo": -5.7, "we": -5.7, "pa": -5.7, "im": -5.7, "tt": -5.7,
	"mi": -5.7, "ai": -5.7, "su": -5.7, "qu": -5.7, "pp": -5.7,
}

// unknownBigramPenalty is the log-probability charged for bigrams outside
// the table.
const unknownBigramPenalty = -15.0

// expectedFreq returns the letter distribution for a language tag,
// defaulting to English for unknown tags.
func expectedFreq(lang string) map[rune]float64 {
	if lang == "fr" {
		return frenchLetterFreq
	}
	return englishLetterFreq
}
