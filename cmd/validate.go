package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dataobj/internal/domain"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Check data objects against the rules for their kind",
		Long: `Check every data object and report each violation.

Strings must be valid in their encoding (utf-8, ascii or latin-1). Integers
must fit in their width (8, 16, 32 or 64 bits). Floats must be finite and use
the ieee-754 or decimal representation.

Exits with status 1 when any finding is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src, err := sourceArgs(args)
			if err != nil {
				return err
			}

			return workflow.Validate(c.Context(), domain.ValidateArgs{SourceArgs: src})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
