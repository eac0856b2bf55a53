package binding

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Algorithm selects the keyed digest primitive.
type Algorithm string

const (
	// SHA256 is HMAC-SHA256, the default.
	SHA256 Algorithm = "sha256"
	// SHA512 is HMAC-SHA512 for callers that want a wider digest.
	SHA512 Algorithm = "sha512"
	// BLAKE2b256 is keyed BLAKE2b with a 256-bit output. BLAKE2b's keyed
	// mode is a MAC in its own right, so no HMAC wrapping is needed. The
	// key must be at most 64 bytes.
	BLAKE2b256 Algorithm = "blake2b-256"
)

// newMAC returns the keyed hash for the algorithm. An empty Algorithm
// falls back to SHA256.
func (a Algorithm) newMAC(secret []byte) (hash.Hash, error) {
	switch a {
	case "", SHA256:
		return hmac.New(sha256.New, secret), nil
	case SHA512:
		return hmac.New(sha512.New, secret), nil
	case BLAKE2b256:
		h, err := blake2b.New256(secret)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedAlgorithm, a, err)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// Encoding selects the text encoding of the raw digest bytes.
type Encoding string

const (
	// Hex is lowercase hexadecimal, the default.
	Hex Encoding = "hex"
	// Base64 is standard base64 with padding.
	Base64 Encoding = "base64"
	// Base64URL is URL-safe base64 without padding.
	Base64URL Encoding = "base64url"
)

// encode renders raw digest bytes as text. An empty Encoding falls back
// to Hex.
func (e Encoding) encode(raw []byte) (string, error) {
	switch e {
	case "", Hex:
		return hex.EncodeToString(raw), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(raw), nil
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(e))
	}
}

// decode parses a stored digest string back to raw bytes. A decode failure
// reports ok=false rather than an error: a corrupt or wrongly encoded
// stored digest is a routine verification failure, not a caller bug.
func (e Encoding) decode(s string) (raw []byte, ok bool, err error) {
	switch e {
	case "", Hex:
		raw, decErr := hex.DecodeString(s)
		return raw, decErr == nil, nil
	case Base64:
		raw, decErr := base64.StdEncoding.DecodeString(s)
		return raw, decErr == nil, nil
	case Base64URL:
		raw, decErr := base64.RawURLEncoding.DecodeString(s)
		return raw, decErr == nil, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(e))
	}
}

// ComputeDigest canonicalizes {code, ...meta}, digests the payload with the
// keyed algorithm, and returns the digest in the requested text encoding.
func ComputeDigest(code string, meta any, secret []byte, alg Algorithm, enc Encoding) (string, error) {
	raw, err := computeRaw(code, meta, secret, alg)
	if err != nil {
		return "", err
	}
	return enc.encode(raw)
}

// VerifyDigest recomputes the digest for {code, ...meta} and compares it to
// the stored digest string in constant time.
//
// A mismatch, a stored digest of the wrong length, or a stored digest that
// does not decode under the given encoding all return (false, nil). Errors
// are reserved for misconfiguration: an unknown algorithm or encoding, or a
// secret the algorithm rejects.
func VerifyDigest(code string, meta any, secret []byte, alg Algorithm, enc Encoding, stored string) (bool, error) {
	expected, err := computeRaw(code, meta, secret, alg)
	if err != nil {
		return false, err
	}
	raw, ok, err := enc.decode(stored)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare(expected, raw) == 1, nil
}

func computeRaw(code string, meta any, secret []byte, alg Algorithm) ([]byte, error) {
	mac, err := alg.newMAC(secret)
	if err != nil {
		return nil, err
	}
	payload, err := CanonicalPayload(code, meta)
	if err != nil {
		return nil, err
	}
	mac.Write(payload)
	return mac.Sum(nil), nil
}
