// Package app implements the application layer for primes.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.trai.ch/primes/internal/adapters/config"
	"go.trai.ch/primes/internal/core/domain"
	"go.trai.ch/primes/internal/core/ports"
	"go.trai.ch/primes/internal/engine/primes"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: parsing, validation and
// rendering around the oracle and the factorizer.
type App struct {
	oracle     *primes.Oracle
	factorizer *primes.Factorizer
	logger     ports.Logger
	telemetry  ports.Telemetry

	in  io.Reader
	out io.Writer
}

// New creates a new App instance reading from stdin and writing to stdout.
func New(oracle *primes.Oracle, factorizer *primes.Factorizer, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		oracle:     oracle,
		factorizer: factorizer,
		logger:     logger,
		telemetry:  telemetry,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// SetIO redirects input and output. Used by tests.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.in = in
	a.out = out
}

// SetTelemetry swaps the telemetry sink, e.g. for opt-in progress rendering.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// Telemetry returns the current telemetry sink.
func (a *App) Telemetry() ports.Telemetry {
	return a.telemetry
}

// RunOptions controls batch execution.
type RunOptions struct {
	// Parallelism bounds the number of concurrent queries; zero means one
	// per CPU.
	Parallelism int
}

// Decompose factorizes every token and prints one "<n> -> <decomposition>"
// line per input, in input order. Queries run concurrently; the shared
// cache serializes its own growth.
func (a *App) Decompose(ctx context.Context, args []string, opts RunOptions) error {
	results := make([]string, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism())
	for i, arg := range args {
		g.Go(func() error {
			n, err := domain.ParseNumber(arg)
			if err != nil {
				return err
			}
			d, err := a.factorizer.Decompose(ctx, n)
			if err != nil {
				return zerr.Wrap(err, "decomposition failed")
			}
			results[i] = fmt.Sprintf("%d -> %s", n, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range results {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Check reports primality of every token, one "<n> -> prime|composite"
// line per input, in input order.
func (a *App) Check(ctx context.Context, args []string, opts RunOptions) error {
	results := make([]string, len(args))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism())
	for i, arg := range args {
		g.Go(func() error {
			n, err := domain.ParseNumber(arg)
			if err != nil {
				return err
			}
			isPrime, err := a.oracle.IsPrime(n)
			if err != nil {
				return zerr.Wrap(err, "primality check failed")
			}
			verdict := "composite"
			if isPrime {
				verdict = "prime"
			}
			results[i] = fmt.Sprintf("%d -> %s", n, verdict)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range results {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Interactive reads one integer per line and prints its decomposition.
// A blank line, end of input or a cancelled context all terminate cleanly;
// invalid input surfaces the validation error to the caller. Scanning runs
// on its own goroutine so cancellation while waiting at an idle prompt
// takes effect immediately instead of after the next line.
func (a *App) Interactive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case raw := <-lines:
			line := strings.TrimSpace(raw)
			if line == "" {
				return nil
			}

			n, err := domain.ParseNumber(line)
			if err != nil {
				return err
			}
			d, err := a.factorizer.Decompose(ctx, n)
			if err != nil {
				return zerr.Wrap(err, "decomposition failed")
			}
			fmt.Fprintf(a.out, "%d -> %s\n", n, d)
		}
	}
}

func (o RunOptions) parallelism() int {
	if o.Parallelism > 0 {
		return o.Parallelism
	}
	return runtime.NumCPU()
}

// Components bundles the wired application pieces handed to the CLI.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *config.Settings
	Cache    ports.PrimeCache
}
