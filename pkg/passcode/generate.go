package passcode

import (
	"fmt"

	"github.com/dmitrymomot/patternotp/pkg/binding"
	"github.com/dmitrymomot/patternotp/pkg/pattern"
)

// GeneratedCode is the immutable result of one Generate call.
type GeneratedCode struct {
	// Code is the produced passcode.
	Code string `json:"code"`
	// Template is the name of the template the code was expanded from.
	Template string `json:"template"`
	// EntropyBits is the minimum entropy of the full configured pool, not
	// of the selected template: the worst-case guarantee an adversary who
	// knows the pool faces.
	EntropyBits int `json:"entropy_bits"`
	// Digest is the keyed digest over the code and metadata. Empty unless
	// a secret was supplied.
	Digest string `json:"hmac,omitempty"`
}

// Generate produces a passcode from a uniformly chosen pool template, with
// one independent random symbol per unique slot.
//
// The draw count is deterministic for given inputs: one draw selects the
// template when the pool has more than one member (a single-template pool
// consumes no selection draw), then exactly UniqueSlots draws fill the
// symbols. Symbols are drawn with replacement, so positions in different
// slots may coincide by chance.
//
// Returns pattern.ErrInvalidAlphabet or pattern.ErrInvalidTemplatePool for
// bad configuration, and wraps any random source failure.
func Generate(opts ...Option) (GeneratedCode, error) {
	o := applyOptions(opts...)

	if err := pattern.ValidateAlphabet(o.alphabet); err != nil {
		return GeneratedCode{}, err
	}
	if len(o.templates) == 0 {
		return GeneratedCode{}, fmt.Errorf("%w: empty pool", pattern.ErrInvalidTemplatePool)
	}

	tpl := o.templates[0]
	if len(o.templates) > 1 {
		idx, err := o.random(len(o.templates))
		if err != nil {
			return GeneratedCode{}, fmt.Errorf("select template: %w", err)
		}
		tpl = o.templates[idx]
	}

	alphabet := []rune(o.alphabet)
	symbols := make([]rune, tpl.UniqueSlots())
	for i := range symbols {
		j, err := o.random(len(alphabet))
		if err != nil {
			return GeneratedCode{}, fmt.Errorf("draw symbol: %w", err)
		}
		symbols[i] = alphabet[j]
	}

	slots := tpl.Slots()
	out := make([]rune, len(slots))
	for i, s := range slots {
		out[i] = symbols[s]
	}

	bits, err := pattern.CalcPoolEntropyBits(o.templates, len(alphabet))
	if err != nil {
		return GeneratedCode{}, err
	}

	code := GeneratedCode{
		Code:        string(out),
		Template:    tpl.Name(),
		EntropyBits: bits,
	}

	if len(o.secret) > 0 {
		digest, err := binding.ComputeDigest(code.Code, o.meta, o.secret, o.algorithm, o.encoding)
		if err != nil {
			return GeneratedCode{}, fmt.Errorf("bind code: %w", err)
		}
		code.Digest = digest
	}

	return code, nil
}
