package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"t2c/internal/cli"
)

func main() {
	// The poll driver runs until process termination; cancellation on a
	// signal lets an in-flight cycle stop between requests
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
