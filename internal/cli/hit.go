package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// hitCommand reports the topmost element under a point.
func (c *CLI) hitCommand() *cobra.Command {
	var at []float64

	cmd := &cobra.Command{
		Use:   "hit [scene.toml]",
		Short: "Print the topmost visible element under a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := point("at", at)
			if err != nil {
				return err
			}
			s, err := c.loadScreen(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			e := s.ElementAt(p.X, p.Y)
			if e == nil {
				_, err = fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("nothing at %g,%g", p.X, p.Y)))
				return err
			}
			_, err = fmt.Fprintln(out, styleKey.Render(path(e)), describe(e))
			return err
		},
	}

	cmd.Flags().Float64SliceVar(&at, "at", nil, "absolute point x,y")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
