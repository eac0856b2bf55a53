// Package pattern models repeating-symbol passcode templates and estimates
// the entropy of template pools.
//
// A template is parsed from a label string such as "ABCABC": positions that
// share a letter in the label must hold the same symbol in a generated code.
// The label letters are only internal slot markers; the generated code draws
// its symbols from an alphabet.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/patternotp/pkg/pattern"
//
//	tpl, err := pattern.Parse("ABCABC")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(tpl.Name())        // "ABCABC"
//	fmt.Println(tpl.UniqueSlots()) // 3
//
// # Entropy Estimation
//
// CalcPoolEntropyBits reports the guaranteed minimum entropy, in whole bits,
// of a code drawn from a pool of templates:
//
//	bits, err := pattern.CalcPoolEntropyBits(pattern.DefaultTemplates(), len(pattern.DefaultAlphabet))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(bits) // 20
//
// The computation runs in log space, so large alphabets combined with many
// unique slots do not overflow.
//
// # Defaults
//
// DefaultAlphabet contains 33 symbols: the digits 0-9 and the uppercase
// letters A-Z minus I, L and O, which are easy to confuse with 1 and 0 when
// a code is read aloud or retyped. DefaultTemplates returns five 6-character
// templates curated to keep the pool at 20 bits against DefaultAlphabet.
package pattern
