package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/patternotp/pkg/pattern"
)

func newEntropyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entropy",
		Short: "Report the entropy floor of a template pool",
		Long: `Report the guaranteed minimum entropy, in bits, of a code drawn from
the configured pool and alphabet. Useful for vetting custom pools before
deploying them.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runEntropy,
	}

	registerCodeFlags(cmd)

	return cmd
}

func runEntropy(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	templates := settings.effectiveTemplates()
	alphabet := settings.effectiveAlphabet()
	if err := pattern.ValidateAlphabet(alphabet); err != nil {
		return err
	}

	bits, err := pattern.CalcPoolEntropyBits(templates, len([]rune(alphabet)))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d bits (%d templates, %d symbols)\n", bits, len(templates), len([]rune(alphabet)))
	return nil
}
