package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/patternotp/pkg/passcode"
)

// generateOutput is one generated code plus the nonce the CLI injected, so
// the caller can persist both the digest and the metadata needed to verify
// it later.
type generateOutput struct {
	passcode.GeneratedCode
	Nonce string `json:"nonce,omitempty"`
}

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passcodes",
		Long: `Generate passcodes from a template pool.

With --secret, each code is bound to the supplied metadata with a keyed
digest; store the digest instead of the code. --nonce adds a fresh UUID
as a "nonce" metadata field, making each digest single-use.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGenerate,
	}

	registerCodeFlags(cmd)
	cmd.Flags().IntP("count", "n", 1, "Number of codes to generate")
	cmd.Flags().StringArrayP("meta", "m", nil, "Metadata field as key=value (repeatable)")
	cmd.Flags().Bool("nonce", false, "Add a random UUID nonce to the metadata")
	cmd.Flags().Bool("json", false, "Output one JSON object per code")
	cmd.Flags().String("qr", "", "Write the code as a QR PNG to this path (single code only)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	qrPath, _ := cmd.Flags().GetString("qr")
	if qrPath != "" && count > 1 {
		return fmt.Errorf("--qr supports a single code, got --count %d", count)
	}

	metaPairs, _ := cmd.Flags().GetStringArray("meta")
	meta, err := parseMeta(metaPairs)
	if err != nil {
		return err
	}
	withNonce, _ := cmd.Flags().GetBool("nonce")
	asJSON, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)

	for i := 0; i < count; i++ {
		nonce := ""
		genMeta := meta
		if withNonce {
			nonce = uuid.NewString()
			genMeta = make(map[string]any, len(meta)+1)
			for k, v := range meta {
				genMeta[k] = v
			}
			genMeta["nonce"] = nonce
		}

		opts := settings.passcodeOptions()
		if genMeta != nil {
			opts = append(opts, passcode.WithMeta(genMeta))
		}

		code, err := passcode.Generate(opts...)
		if err != nil {
			return err
		}

		result := generateOutput{GeneratedCode: code, Nonce: nonce}
		if asJSON {
			if err := enc.Encode(result); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "%s  template=%s  entropy=%dbits", code.Code, code.Template, code.EntropyBits)
			if code.Digest != "" {
				fmt.Fprintf(out, "  hmac=%s", code.Digest)
			}
			if nonce != "" {
				fmt.Fprintf(out, "  nonce=%s", nonce)
			}
			fmt.Fprintln(out)
		}

		if qrPath != "" {
			if err := qrcode.WriteFile(code.Code, qrcode.Medium, 256, qrPath); err != nil {
				return fmt.Errorf("write QR code: %w", err)
			}
		}
	}

	return nil
}
