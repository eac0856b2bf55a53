package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/patternotp/pkg/passcode"
)

// errInvalidCode makes a failed validation visible in the exit status.
var errInvalidCode = errors.New("code failed validation")

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <code>",
		Short: "Validate a candidate passcode",
		Long: `Check whether a candidate code could have been produced by the pool.

With --secret and --digest, additionally verifies the binding digest over
the code and the supplied metadata. Supply the same metadata (including
any nonce) that was bound at generation time.

Exits 0 when the code is valid and non-zero otherwise.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runValidate,
	}

	registerCodeFlags(cmd)
	cmd.Flags().StringArrayP("meta", "m", nil, "Metadata field as key=value (repeatable)")
	cmd.Flags().StringP("digest", "d", "", "Previously stored digest to verify against")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	metaPairs, _ := cmd.Flags().GetStringArray("meta")
	meta, err := parseMeta(metaPairs)
	if err != nil {
		return err
	}
	storedDigest, _ := cmd.Flags().GetString("digest")

	opts := settings.passcodeOptions()
	if meta != nil {
		opts = append(opts, passcode.WithMeta(meta))
	}
	if storedDigest != "" {
		opts = append(opts, passcode.WithStoredDigest(storedDigest))
	}

	ok, err := passcode.Validate(args[0], opts...)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		return errInvalidCode
	}

	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
