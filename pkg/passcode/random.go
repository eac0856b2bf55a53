package passcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomSource returns a uniform random integer in [0, maxExclusive).
// Production use requires a cryptographically secure source; the package
// cannot verify this and trusts the caller's wiring. A deterministic source
// makes Generate fully reproducible for tests.
type RandomSource func(maxExclusive int) (int, error)

// CryptoRand is the default RandomSource, backed by crypto/rand.
func CryptoRand(maxExclusive int) (int, error) {
	if maxExclusive <= 0 {
		return 0, fmt.Errorf("random source: max must be positive, got %d", maxExclusive)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(maxExclusive)))
	if err != nil {
		return 0, fmt.Errorf("random source: %w", err)
	}
	return int(n.Int64()), nil
}
