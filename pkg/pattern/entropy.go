package pattern

import (
	"fmt"
	"math"
)

// CalcPoolEntropyBits returns the minimum entropy, in whole bits, of a code
// produced from the given pool against an alphabet of alphabetLen symbols.
//
// The outcome count is the sum over templates of alphabetLen^uniqueSlots.
// Codes producible by more than one template are counted once per template;
// the sum slightly overstates the true combinatorial count when templates
// overlap, which is accepted as a simple approximation since the final value
// is floored anyway.
//
// The computation stays in log space. With uMax the largest unique-slot
// count in the pool and log2a = log2(alphabetLen):
//
//	bits = uMax*log2a + log2(Σ 2^((u_t-uMax)*log2a))
//
// Every exponent in the inner sum is <= 0, so each term lies in (0,1] and
// the sum never overflows, no matter how large the alphabet or templates.
//
// The reported floor is strict: a pool whose outcome count lands exactly on
// a power of two reports one bit less, so an adversary's search space always
// strictly exceeds 2^bits. A 2-symbol alphabet with a single 1-slot template
// therefore reports 0.
//
// Returns ErrInvalidAlphabet when alphabetLen < 2 and ErrInvalidTemplatePool
// when the pool is empty.
func CalcPoolEntropyBits(templates []Template, alphabetLen int) (int, error) {
	if alphabetLen < 2 {
		return 0, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidAlphabet, alphabetLen)
	}
	if len(templates) == 0 {
		return 0, fmt.Errorf("%w: empty pool", ErrInvalidTemplatePool)
	}

	uMax := 0
	for _, t := range templates {
		if u := t.UniqueSlots(); u > uMax {
			uMax = u
		}
	}

	log2a := math.Log2(float64(alphabetLen))
	sum := 0.0
	for _, t := range templates {
		sum += math.Exp2(float64(t.UniqueSlots()-uMax) * log2a)
	}

	bits := float64(uMax)*log2a + math.Log2(sum)
	floor := math.Floor(bits)
	if floor == bits {
		floor--
	}
	return int(floor), nil
}
