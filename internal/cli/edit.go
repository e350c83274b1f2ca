package cli

import (
	"github.com/spf13/cobra"

	uitree "github.com/grindlemire/go-uitree"
)

// resizeCommand drags a resize handle and prints the result.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		key    string
		handle string
		to     []float64
	)

	cmd := &cobra.Command{
		Use:   "resize [scene.toml]",
		Short: "Drag a resize handle of an element",
		Long: `Drag a resize handle of an element to an absolute point and print the tree.

Coordinates are y-up screen pixels. Children follow the element according to
their docking corner and scale flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := uitree.ParseHandle(handle)
			if err != nil {
				return err
			}
			target, err := point("to", to)
			if err != nil {
				return err
			}
			s, err := c.loadScreen(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			e, err := lookup(s, key)
			if err != nil {
				return err
			}

			e.Resize(target.X, target.Y, h)
			s.Logger().Info("Resized", "key", key, "handle", h, "size", e.Dimensions())
			return printTree(cmd.OutOrStdout(), s, "")
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "element to resize")
	cmd.Flags().StringVar(&handle, "handle", "SE", "handle to drag: NW, N, NE, W, E, SW, S, SE")
	cmd.Flags().Float64SliceVar(&to, "to", nil, "absolute target point x,y")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// moveCommand moves an element within its parent.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		key string
		to  []float64
	)

	cmd := &cobra.Command{
		Use:   "move [scene.toml]",
		Short: "Move an element to a parent-relative position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := point("to", to)
			if err != nil {
				return err
			}
			s, err := c.loadScreen(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			e, err := lookup(s, key)
			if err != nil {
				return err
			}

			e.MoveTo(target.X, target.Y)
			s.Logger().Info("Moved", "key", key, "position", e.Position())
			return printTree(cmd.OutOrStdout(), s, "")
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "element to move")
	cmd.Flags().Float64SliceVar(&to, "to", nil, "parent-relative position x,y")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// toggleCommand flips the visibility of an element.
func (c *CLI) toggleCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "toggle [scene.toml]",
		Short: "Toggle the visibility of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScreen(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			e, err := lookup(s, key)
			if err != nil {
				return err
			}

			e.ToggleVisible()
			s.Logger().Info("Toggled", "key", key, "visible", e.IsVisible())
			return printTree(cmd.OutOrStdout(), s, "")
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "element to toggle")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
