package pattern

// DefaultAlphabet is the built-in 33-symbol alphabet: digits 0-9 plus the
// uppercase letters A-Z without I, L and O, which read ambiguously next to
// 1 and 0 in printed or spoken codes.
const DefaultAlphabet = "0123456789ABCDEFGHJKMNPQRSTUVWXYZ"

// defaultTemplates is parsed once; DefaultTemplates hands out copies so the
// pool stays immutable.
var defaultTemplates = []Template{
	MustParse("ABCABC"), // mirror repeat
	MustParse("AAABBB"), // triplet + triplet
	MustParse("ABABAB"), // alternating pair
	MustParse("ABCDAB"), // four symbols, then the first two again
	MustParse("ABCCBA"), // palindrome
}

// DefaultTemplates returns the built-in pool of five 6-character templates.
// Against DefaultAlphabet the pool guarantees 20 bits of minimum entropy.
func DefaultTemplates() []Template {
	out := make([]Template, len(defaultTemplates))
	copy(out, defaultTemplates)
	return out
}
