package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCommand assembles the patternotp command tree.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patternotp",
		Short: "Generate and validate pattern-based one-time passcodes",
		Long: `Generate and validate short, human-memorable one-time passcodes.

Codes follow repeating-symbol templates such as ABCABC, which keeps them
easy to read aloud or retype while the pool retains a provable entropy
floor. With a secret, a code can be cryptographically bound to metadata
so only a keyed digest needs storing.

Examples:
  # Generate a code from the built-in pool
  patternotp generate

  # Generate five codes from a custom pool file
  patternotp generate --count 5 --pool pool.yaml

  # Bind a code to metadata and keep only the digest
  patternotp generate --secret "$SECRET" --meta user_id=42 --nonce

  # Validate a candidate against the stored digest
  patternotp validate X7QX7Q --secret "$SECRET" --meta user_id=42 \
    --meta nonce=... --digest <stored>

  # Report the entropy floor of a pool
  patternotp entropy --templates ABCABC,ABCDABCD`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(
		newGenerateCommand(),
		newValidateCommand(),
		newEntropyCommand(),
		newVersionCommand(),
	)

	return cmd
}

// Execute runs the CLI and exits non-zero on any error, including a failed
// validation.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
