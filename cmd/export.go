package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dataobj/internal/domain"
	m "github.com/mouse-blink/dataobj/internal/model"
)

var exportOutputFlag string

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [manifest]",
		Short: "Write data objects as a YAML manifest",
		Long: `Write the selected data objects as a YAML manifest that dataobj can read
back. Without --output the manifest goes to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src, err := sourceArgs(args)
			if err != nil {
				return err
			}

			return workflow.Export(c.Context(), domain.ExportArgs{
				SourceArgs: src,
				Output:     m.Path(exportOutputFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "manifest file to write (default stdout)")

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
