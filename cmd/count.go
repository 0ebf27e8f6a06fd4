package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dataobj/internal/domain"
)

// countCmd represents the count command.
var countCmd = newCountCmd()

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [manifest]",
		Short: "Count data objects per kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src, err := sourceArgs(args)
			if err != nil {
				return err
			}

			return workflow.Count(c.Context(), domain.CountArgs{SourceArgs: src})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(countCmd)
}
