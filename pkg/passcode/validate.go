package passcode

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/patternotp/pkg/binding"
	"github.com/dmitrymomot/patternotp/pkg/pattern"
)

// Validate reports whether code could have been produced by some template
// in the configured pool under the configured alphabet.
//
// The candidate is upper-cased first. It fails validation when any of its
// characters is outside the alphabet, or when no template matches. A
// template matches when lengths are equal and every pair of positions
// sharing a slot holds the same character; positions in different slots are
// free to coincide. The check is pattern consistency, never symbol
// distinctness, so a palindrome template that happened to draw equal
// symbols still validates.
//
// A malformed candidate is an expected outcome and returns (false, nil);
// errors are reserved for bad options: an invalid alphabet, an empty pool,
// or a misconfigured digest algorithm or encoding.
//
// When a secret and a stored digest are supplied, Validate additionally
// verifies the binding digest over the upper-cased candidate and the
// configured metadata; a digest mismatch also returns (false, nil).
func Validate(code string, opts ...Option) (bool, error) {
	o := applyOptions(opts...)

	if err := pattern.ValidateAlphabet(o.alphabet); err != nil {
		return false, err
	}
	if len(o.templates) == 0 {
		return false, fmt.Errorf("%w: empty pool", pattern.ErrInvalidTemplatePool)
	}

	candidate := strings.ToUpper(code)

	members := make(map[rune]struct{}, len(o.alphabet))
	for _, r := range o.alphabet {
		members[r] = struct{}{}
	}
	for _, r := range candidate {
		if _, ok := members[r]; !ok {
			return false, nil
		}
	}

	matched := false
	for _, tpl := range o.templates {
		if tpl.Matches(candidate) {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	if len(o.secret) > 0 && o.storedDigest != "" {
		return binding.VerifyDigest(candidate, o.meta, o.secret, o.algorithm, o.encoding, o.storedDigest)
	}

	return true, nil
}
