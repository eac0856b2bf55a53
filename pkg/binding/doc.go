// Package binding ties a passcode to contextual metadata with a keyed
// digest, so only the digest needs to be persisted instead of the plaintext
// code.
//
// The code and metadata are first canonicalized into a deterministic byte
// payload: map keys are sorted recursively, entries marked Absent are
// dropped, nil is preserved as null, and sequences keep their order. Equal
// logical content always produces byte-identical payloads regardless of key
// ordering or platform, which is what makes the digest reproducible.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/patternotp/pkg/binding"
//
//	secret := []byte("server-side secret")
//	meta := map[string]any{"user_id": 42, "purpose": "login"}
//
//	// At issue time: compute and store the digest, discard the code.
//	digest, err := binding.ComputeDigest(code, meta, secret, binding.SHA256, binding.Hex)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// At verification time: recompute and compare in constant time.
//	ok, err := binding.VerifyDigest(candidate, meta, secret, binding.SHA256, binding.Hex, digest)
//	if err != nil {
//		log.Fatal(err) // misconfigured algorithm or encoding
//	}
//	if !ok {
//		// wrong code, wrong metadata, wrong secret, or corrupt digest
//	}
//
// # Algorithms and Encodings
//
// HMAC-SHA256 is the default algorithm; HMAC-SHA512 and keyed BLAKE2b-256
// are available for callers that want longer or faster digests. The raw
// digest bytes encode as hex (default), standard base64, or unpadded
// URL-safe base64.
//
// # Replay Protection
//
// The package does not track attempts. Callers that need replay protection
// should put a per-attempt nonce into the metadata, which makes every stored
// digest single-use.
package binding
