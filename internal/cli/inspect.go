package cli

import (
	"github.com/spf13/cobra"
)

// inspectCommand prints the element tree of a scene.
func (c *CLI) inspectCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "inspect [scene.toml]",
		Short: "Print the element tree of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScreen(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), s, key)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "only print the subtree of this element")
	return cmd
}
