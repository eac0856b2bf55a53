package pattern

import (
	"fmt"
	"strings"
)

// Template describes which positions of a fixed-length code must hold the
// same symbol. Two positions with equal slot indices share one randomly
// drawn symbol; positions with different indices are drawn independently
// (and may still coincide by chance).
//
// Templates are immutable values and safe to share across goroutines.
type Template struct {
	name  string
	slots []int
}

// Parse builds a Template from a label string such as "ABCABC".
//
// The label is case-insensitive and may only contain the letters A-Z. Slot
// indices are assigned in first-occurrence order: the first distinct letter
// becomes slot 0, the next slot 1, and so on. Returns ErrInvalidTemplate for
// an empty label or any character outside A-Z.
func Parse(label string) (Template, error) {
	if label == "" {
		return Template{}, fmt.Errorf("%w: empty label", ErrInvalidTemplate)
	}

	upper := strings.ToUpper(label)
	slots := make([]int, len(upper))
	seen := make(map[rune]int, len(upper))

	for i, r := range upper {
		if r < 'A' || r > 'Z' {
			return Template{}, fmt.Errorf("%w: label %q contains non-letter character %q", ErrInvalidTemplate, label, r)
		}
		idx, ok := seen[r]
		if !ok {
			idx = len(seen)
			seen[r] = idx
		}
		slots[i] = idx
	}

	return Template{name: upper, slots: slots}, nil
}

// MustParse is like Parse but panics on error. Use for static template
// definitions known to be well-formed.
func MustParse(label string) Template {
	tpl, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Name returns the upper-cased label the template was parsed from.
func (t Template) Name() string {
	return t.name
}

// Len returns the length of codes the template produces.
func (t Template) Len() int {
	return len(t.slots)
}

// UniqueSlots returns the number of independently drawn symbols the template
// requires, i.e. the count of distinct slot indices.
func (t Template) UniqueSlots() int {
	u := 0
	for _, s := range t.slots {
		if s >= u {
			u = s + 1
		}
	}
	return u
}

// Slots returns a copy of the per-position slot indices.
func (t Template) Slots() []int {
	out := make([]int, len(t.slots))
	copy(out, t.slots)
	return out
}

// Matches reports whether code is pattern-consistent with the template:
// equal length, and every pair of positions sharing a slot index holds the
// same character. Positions with different slot indices are allowed to hold
// equal characters; the check enforces consistency, not distinctness.
//
// Matches compares characters exactly as given; callers that want
// case-insensitive matching should normalize the code first.
func (t Template) Matches(code string) bool {
	runes := []rune(code)
	if len(runes) != len(t.slots) {
		return false
	}

	// Track assignment explicitly rather than using a sentinel rune, so a
	// candidate containing U+0000 cannot masquerade as "slot unassigned".
	assigned := make([]rune, t.UniqueSlots())
	seen := make([]bool, t.UniqueSlots())
	for i, r := range runes {
		s := t.slots[i]
		if !seen[s] {
			assigned[s] = r
			seen[s] = true
			continue
		}
		if assigned[s] != r {
			return false
		}
	}
	return true
}

// ValidateAlphabet checks that alphabet has at least two symbols and no
// duplicates. Returns ErrInvalidAlphabet otherwise.
func ValidateAlphabet(alphabet string) error {
	runes := []rune(alphabet)
	if len(runes) < 2 {
		return fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidAlphabet, len(runes))
	}
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, dup := seen[r]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}
