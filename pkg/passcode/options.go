package passcode

import (
	"github.com/dmitrymomot/patternotp/pkg/binding"
	"github.com/dmitrymomot/patternotp/pkg/pattern"
)

// options configures generation and validation.
type options struct {
	alphabet  string
	templates []pattern.Template
	random    RandomSource

	// Binding. A non-empty secret turns on digest computation in Generate;
	// together with storedDigest it turns on digest verification in Validate.
	secret       []byte
	meta         any
	algorithm    binding.Algorithm
	encoding     binding.Encoding
	storedDigest string
}

// Option is a functional option for Generate and Validate.
type Option func(*options)

// WithAlphabet overrides the default 33-symbol alphabet. The alphabet must
// have at least two symbols and no duplicates.
func WithAlphabet(alphabet string) Option {
	return func(o *options) {
		o.alphabet = alphabet
	}
}

// WithTemplates overrides the default template pool. Passing no templates
// yields an empty pool, which Generate and Validate reject.
func WithTemplates(templates ...pattern.Template) Option {
	return func(o *options) {
		o.templates = templates
	}
}

// WithRandomSource replaces the crypto/rand backed default. Production
// sources must be cryptographically secure.
func WithRandomSource(src RandomSource) Option {
	return func(o *options) {
		if src != nil {
			o.random = src
		}
	}
}

// WithSecret supplies the key for digest binding. Generate attaches a
// digest to its output when a secret is set.
func WithSecret(secret []byte) Option {
	return func(o *options) {
		o.secret = secret
	}
}

// WithMeta supplies metadata bound into the digest alongside the code.
// String-keyed maps merge at the top level of the digest payload; any other
// value nests under a "meta" field. Callers wanting replay protection
// should include a per-attempt nonce here.
func WithMeta(meta any) Option {
	return func(o *options) {
		o.meta = meta
	}
}

// WithDigestAlgorithm selects the keyed digest algorithm. Default is
// binding.SHA256.
func WithDigestAlgorithm(alg binding.Algorithm) Option {
	return func(o *options) {
		o.algorithm = alg
	}
}

// WithDigestEncoding selects the digest text encoding. Default is
// binding.Hex.
func WithDigestEncoding(enc binding.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithStoredDigest supplies a previously stored digest for Validate to
// verify against. Ignored by Generate.
func WithStoredDigest(digest string) Option {
	return func(o *options) {
		o.storedDigest = digest
	}
}

func defaultOptions() *options {
	return &options{
		alphabet:  pattern.DefaultAlphabet,
		templates: pattern.DefaultTemplates(),
		random:    CryptoRand,
		algorithm: binding.SHA256,
		encoding:  binding.Hex,
	}
}

func applyOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
