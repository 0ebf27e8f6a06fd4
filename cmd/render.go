package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dataobj/internal/domain"
)

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Print one line per data object",
		Long: `Print one human-readable line per data object, in sequence order.

The compact layout prints:
  String: "Hello" (utf-8)
  Integer: 16 (32 bits)
  Float: 3.14 (ieee-754)

The aligned layout pads the labels to one column and prints floats with six
decimals. This is also what dataobj does when run without a subcommand.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	return cmd
}

func runRender(c *cobra.Command, args []string) error {
	layout, err := domain.ParseLayout(settings.Layout)
	if err != nil {
		return err
	}

	src, err := sourceArgs(args)
	if err != nil {
		return err
	}

	return workflow.Render(c.Context(), domain.RenderArgs{
		SourceArgs: src,
		Layout:     layout,
	})
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
