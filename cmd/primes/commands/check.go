package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/primes/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <numbers...>",
		Short: "Check numbers for primality",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			return c.app.Check(cmd.Context(), args, app.RunOptions{
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().IntP("parallelism", "j", 0, "Number of concurrent queries (0 = one per CPU)")
	return cmd
}
