package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("prints code, template and entropy", func(t *testing.T) {
		out, err := execute(t, "generate", "--templates", "ABCABC")
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^[0-9A-Z]{6}  template=ABCABC  entropy=15bits\n$`), out)
	})

	t.Run("generates the requested count", func(t *testing.T) {
		out, err := execute(t, "generate", "--count", "3")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Len(t, lines, 3)
	})

	t.Run("emits JSON with digest and nonce", func(t *testing.T) {
		out, err := execute(t, "generate", "--json", "--secret", "s3cret", "--meta", "user_id=42", "--nonce")
		require.NoError(t, err)

		var result struct {
			Code        string `json:"code"`
			Template    string `json:"template"`
			EntropyBits int    `json:"entropy_bits"`
			Digest      string `json:"hmac"`
			Nonce       string `json:"nonce"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))

		assert.Len(t, result.Code, 6)
		assert.Equal(t, 20, result.EntropyBits)
		assert.NotEmpty(t, result.Digest)
		assert.NotEmpty(t, result.Nonce)
	})

	t.Run("rejects bad metadata pairs", func(t *testing.T) {
		_, err := execute(t, "generate", "--secret", "s", "--meta", "novalue")
		assert.Error(t, err)
	})

	t.Run("rejects qr with multiple codes", func(t *testing.T) {
		_, err := execute(t, "generate", "--count", "2", "--qr", "out.png")
		assert.Error(t, err)
	})

	t.Run("writes a QR PNG", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "code.png")
		_, err := execute(t, "generate", "--qr", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "expected PNG header")
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("accepts a matching code", func(t *testing.T) {
		out, err := execute(t, "validate", "QWEQWE", "--templates", "ABCABC")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("rejects a mismatching code with non-zero exit", func(t *testing.T) {
		out, err := execute(t, "validate", "QWEQWA", "--templates", "ABCABC")
		assert.ErrorIs(t, err, errInvalidCode)
		assert.Contains(t, out, "invalid")
	})

	t.Run("verifies a digest round-trip", func(t *testing.T) {
		genOut, err := execute(t, "generate", "--json", "--secret", "s3cret", "--meta", "user_id=42")
		require.NoError(t, err)

		var generated struct {
			Code   string `json:"code"`
			Digest string `json:"hmac"`
		}
		require.NoError(t, json.Unmarshal([]byte(genOut), &generated))

		out, err := execute(t, "validate", generated.Code,
			"--secret", "s3cret", "--meta", "user_id=42", "--digest", generated.Digest)
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)

		_, err = execute(t, "validate", generated.Code,
			"--secret", "s3cret", "--meta", "user_id=43", "--digest", generated.Digest)
		assert.ErrorIs(t, err, errInvalidCode)
	})

	t.Run("surfaces bad templates as errors", func(t *testing.T) {
		_, err := execute(t, "validate", "QWEQWE", "--templates", "AB1")
		assert.Error(t, err)
	})
}

func TestEntropyCommand(t *testing.T) {
	t.Run("reports the default pool", func(t *testing.T) {
		out, err := execute(t, "entropy")
		require.NoError(t, err)
		assert.Equal(t, "20 bits (5 templates, 33 symbols)\n", out)
	})

	t.Run("reports a custom pool", func(t *testing.T) {
		out, err := execute(t, "entropy", "--templates", "ABCABC", "--alphabet", "0123456789")
		require.NoError(t, err)
		assert.Equal(t, "9 bits (1 templates, 10 symbols)\n", out)
	})

	t.Run("loads a YAML pool file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pool.yaml")
		content := "alphabet: \"0123456789\"\ntemplates:\n  - ABCABC\n  - ABCDAB\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		out, err := execute(t, "entropy", "--pool", path)
		require.NoError(t, err)
		assert.Contains(t, out, "(2 templates, 10 symbols)")
	})

	t.Run("rejects a pool file without templates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("alphabet: AB\n"), 0o600))

		_, err := execute(t, "entropy", "--pool", path)
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "patternotp version dev")
}
