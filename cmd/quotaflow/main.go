// Command quotaflow reads a batch of quota-assignment cases and prints the
// minimum total round-up cost of each one.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var version string

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(os.Getenv).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
