// Package passcode generates and validates short, human-memorable one-time
// passcodes built from repeating-symbol templates.
//
// A template such as "ABCABC" expands into a 6-character code where
// positions 1 and 4 share one random symbol, 2 and 5 another, 3 and 6 a
// third. The repetition makes codes easy to read aloud or retype while the
// pool-wide entropy floor stays provable.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/patternotp/pkg/passcode"
//
//	code, err := passcode.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(code.Code)        // e.g. "X7QX7Q"
//	fmt.Println(code.Template)    // e.g. "ABCABC"
//	fmt.Println(code.EntropyBits) // 20
//
//	ok, err := passcode.Validate(code.Code)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Alphabets and Pools
//
// Both calls accept functional options:
//
//	tpl := pattern.MustParse("ABCDABCD")
//	code, err := passcode.Generate(
//		passcode.WithAlphabet("234679QWERTYUPADFGHJKLXCVBNM"),
//		passcode.WithTemplates(tpl),
//	)
//
// # Binding to Metadata
//
// With a secret, Generate attaches a keyed digest over the code and any
// supplied metadata, so only the digest needs storing:
//
//	code, err := passcode.Generate(
//		passcode.WithSecret(secret),
//		passcode.WithMeta(map[string]any{"user_id": 42, "nonce": nonce}),
//	)
//	// persist code.Digest, hand code.Code to the user
//
//	ok, err := passcode.Validate(candidate,
//		passcode.WithSecret(secret),
//		passcode.WithMeta(map[string]any{"user_id": 42, "nonce": nonce}),
//		passcode.WithStoredDigest(storedDigest),
//	)
//
// # Randomness
//
// The default source draws from crypto/rand. Tests can inject a
// deterministic source with WithRandomSource; production callers must keep
// a cryptographically secure one.
package passcode
