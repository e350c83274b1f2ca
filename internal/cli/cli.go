// Package cli implements the uitree command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	uitree "github.com/grindlemire/go-uitree"
	"github.com/grindlemire/go-uitree/internal/scene"
)

// =============================================================================
// Constants
// =============================================================================

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose   bool
	themePath string
}

// New creates a CLI logging to w at info level. The root command's -v flag
// lowers it to debug, which also shows the engine's own attach and clip logs.
func New(w io.Writer) *CLI {
	return &CLI{Logger: newLogger(w, log.InfoLevel)}
}

// Execute runs the command line in args against ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "uitree",
		Short: "Inspect and exercise element tree scenes",
		Long: `uitree loads a scene file describing a tree of UI elements and prints the
resulting layout: absolute bounds, z-order, clipping and visibility.

Editing commands apply a single operation (resize, move, toggle) before
printing, which makes it easy to check how docking, scaling and clipping
react to a change.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log engine activity at debug level")
	root.PersistentFlags().StringVar(&c.themePath, "theme", "", "theme file overriding the one named by the scene")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.toggleCommand())
	root.AddCommand(c.hitCommand())

	return root
}

// =============================================================================
// Scene Loading
// =============================================================================

// loadScreen builds the screen described by the scene file at path.
func (c *CLI) loadScreen(ctx context.Context, path string) (*uitree.Screen, error) {
	sl := startScene(ctx, path)

	f, err := scene.Load(path)
	if err != nil {
		return nil, err
	}

	opts := []uitree.ScreenOption{uitree.WithLogger(sl.Logger)}
	if c.themePath != "" {
		th, err := uitree.LoadTheme(c.themePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, uitree.WithTheme(th))
	}

	s, err := f.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", path, err)
	}
	sl.built(s)
	return s, nil
}

// lookup finds a registered element by key.
func lookup(s *uitree.Screen, key string) (*uitree.Element, error) {
	e := s.ElementByID(key)
	if e == nil {
		return nil, fmt.Errorf("no element with key %q", key)
	}
	return e, nil
}

// point converts a two-value flag into a vector.
func point(flag string, v []float64) (uitree.Vec, error) {
	if len(v) != 2 {
		return uitree.Vec{}, fmt.Errorf("--%s needs two values x,y, got %d", flag, len(v))
	}
	return uitree.V(v[0], v[1]), nil
}
