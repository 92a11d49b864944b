// Package main is the entry point for the primes query tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/primes/cmd/primes/commands"
	"go.trai.ch/primes/internal/app"
	"go.trai.ch/primes/internal/core/domain"
	_ "go.trai.ch/primes/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotInteger):
			_, _ = os.Stderr.WriteString("Input must be an integer\n")
		case errors.Is(err, domain.ErrOutOfRange):
			_, _ = os.Stderr.WriteString("Input must be strictly greater than 1\n")
		default:
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}
