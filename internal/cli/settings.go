package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/patternotp/config"
	"github.com/dmitrymomot/patternotp/pkg/binding"
	"github.com/dmitrymomot/patternotp/pkg/passcode"
	"github.com/dmitrymomot/patternotp/pkg/pattern"
)

// envConfig carries the CLI defaults from the environment. Flags override
// every field.
type envConfig struct {
	Secret    string `env:"PATTERNOTP_SECRET"`
	Alphabet  string `env:"PATTERNOTP_ALPHABET"`
	Templates string `env:"PATTERNOTP_TEMPLATES"` // comma-separated labels
	DigestAlg string `env:"PATTERNOTP_DIGEST_ALG"`
	DigestEnc string `env:"PATTERNOTP_DIGEST_ENC"`
}

// codeSettings is the resolved generation/validation configuration after
// merging defaults, environment, pool file and flags.
type codeSettings struct {
	alphabet  string
	templates []pattern.Template
	secret    []byte
	algorithm binding.Algorithm
	encoding  binding.Encoding
}

// registerCodeFlags adds the flags shared by generate, validate and entropy.
func registerCodeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("alphabet", "a", "", "Symbol alphabet (default: built-in 33 unambiguous symbols)")
	cmd.Flags().StringSliceP("templates", "t", nil, "Template labels, e.g. ABCABC,ABCCBA (default: built-in pool)")
	cmd.Flags().StringP("pool", "p", "", "YAML pool file with templates and optional alphabet")
	cmd.Flags().StringP("secret", "s", "", "Digest secret; enables metadata binding")
	cmd.Flags().String("alg", "", "Digest algorithm: sha256, sha512, blake2b-256 (default sha256)")
	cmd.Flags().String("enc", "", "Digest encoding: hex, base64, base64url (default hex)")
}

// resolveSettings merges, in increasing precedence: built-in defaults,
// environment, a --pool file, and explicit flags.
func resolveSettings(cmd *cobra.Command) (*codeSettings, error) {
	var envCfg envConfig
	if err := config.Load(&envCfg); err != nil {
		return nil, err
	}

	alphabet := envCfg.Alphabet
	var labels []string
	if envCfg.Templates != "" {
		labels = strings.Split(envCfg.Templates, ",")
	}

	if path, _ := cmd.Flags().GetString("pool"); path != "" {
		pf, err := loadPoolFile(path)
		if err != nil {
			return nil, err
		}
		labels = pf.Templates
		if pf.Alphabet != "" {
			alphabet = pf.Alphabet
		}
	}
	if v, _ := cmd.Flags().GetString("alphabet"); v != "" {
		alphabet = v
	}
	if v, _ := cmd.Flags().GetStringSlice("templates"); len(v) > 0 {
		labels = v
	}

	templates := make([]pattern.Template, 0, len(labels))
	for _, label := range labels {
		tpl, err := pattern.Parse(strings.TrimSpace(label))
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", label, err)
		}
		templates = append(templates, tpl)
	}

	secret := envCfg.Secret
	if v, _ := cmd.Flags().GetString("secret"); v != "" {
		secret = v
	}
	alg := envCfg.DigestAlg
	if v, _ := cmd.Flags().GetString("alg"); v != "" {
		alg = v
	}
	enc := envCfg.DigestEnc
	if v, _ := cmd.Flags().GetString("enc"); v != "" {
		enc = v
	}

	s := &codeSettings{
		alphabet:  alphabet,
		templates: templates,
		algorithm: binding.Algorithm(alg),
		encoding:  binding.Encoding(enc),
	}
	if secret != "" {
		s.secret = []byte(secret)
	}
	return s, nil
}

// passcodeOptions translates the settings into library options, leaving
// library defaults in place for anything unset.
func (s *codeSettings) passcodeOptions() []passcode.Option {
	var opts []passcode.Option
	if s.alphabet != "" {
		opts = append(opts, passcode.WithAlphabet(s.alphabet))
	}
	if len(s.templates) > 0 {
		opts = append(opts, passcode.WithTemplates(s.templates...))
	}
	if len(s.secret) > 0 {
		opts = append(opts, passcode.WithSecret(s.secret))
	}
	if s.algorithm != "" {
		opts = append(opts, passcode.WithDigestAlgorithm(s.algorithm))
	}
	if s.encoding != "" {
		opts = append(opts, passcode.WithDigestEncoding(s.encoding))
	}
	return opts
}

// effectiveAlphabet returns the configured alphabet or the library default.
func (s *codeSettings) effectiveAlphabet() string {
	if s.alphabet != "" {
		return s.alphabet
	}
	return pattern.DefaultAlphabet
}

// effectiveTemplates returns the configured pool or the library default.
func (s *codeSettings) effectiveTemplates() []pattern.Template {
	if len(s.templates) > 0 {
		return s.templates
	}
	return pattern.DefaultTemplates()
}

// parseMeta turns repeated key=value flags into a metadata map.
func parseMeta(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("metadata %q: want key=value", pair)
		}
		meta[key] = value
	}
	return meta, nil
}
