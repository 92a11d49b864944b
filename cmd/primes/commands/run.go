package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/primes/internal/adapters/telemetry/progrock"
	"go.trai.ch/primes/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [numbers...]",
		Short: "Decompose numbers into prime factors",
		Long: `Decompose the given numbers into prime factors, printing one
"<n> -> <decomposition>" line per input. With no arguments, numbers are
read from standard input, one per line, until a blank line or end of input.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, _ := cmd.Flags().GetBool("progress")
			if progress {
				rec := progrock.New()
				defer rec.Close() //nolint:errcheck // Best effort close on exit
				c.app.SetTelemetry(rec)
			}

			if len(args) == 0 {
				return c.app.Interactive(cmd.Context())
			}

			parallelism, _ := cmd.Flags().GetInt("parallelism")
			return c.app.Decompose(cmd.Context(), args, app.RunOptions{
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().BoolP("progress", "p", false, "Render sieve progress while computing")
	cmd.Flags().IntP("parallelism", "j", 0, "Number of concurrent queries in batch mode (0 = one per CPU)")
	return cmd
}
