package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trustedform/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New().Command().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tfctl:", err)
		os.Exit(1)
	}
}
