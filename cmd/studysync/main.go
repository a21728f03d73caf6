package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"studysync/internal/ui"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newCLIApp(os.Stdin, os.Stdout, ui.SystemClock{})
	if err := app.RunContext(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nSession interrupted. See you next time!")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
