// Command uitree loads an element tree scene, optionally applies one edit,
// and prints the resulting layout.
//
//	uitree inspect scene.toml                          print the element tree
//	uitree resize scene.toml -k window --to 600,200    drag the SE handle
//	uitree move scene.toml -k window --to 0,0          move an element
//	uitree toggle scene.toml -k dialog                 flip visibility
//	uitree hit scene.toml --at 150,530                 element under a point
//
// Every command accepts -v for debug logs and --theme to swap the theme file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-uitree/internal/cli"
)

// exitInterrupted follows the shell's 128+SIGINT convention.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr).Execute(ctx, os.Args[1:])
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintln(os.Stderr, "uitree:", err)
		os.Exit(1)
	}
}
