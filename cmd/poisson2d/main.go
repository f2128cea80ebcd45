// Command poisson2d benchmarks the 2D Poisson solver variants: solve a
// single problem, sweep grid sizes across all five strategies, or measure
// scalability over worker counts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "poisson2d",
	Short: "Benchmark Jacobi and Schwarz solvers for the 2D Poisson equation",
	Long: `poisson2d solves −Δu = f on the unit square with Dirichlet boundaries
and compares five execution strategies: serial, thread-parallel,
distributed, hybrid, and a distributed direct (Schwarz) variant.

Problems are given as YAML parameter files with expression-valued forcing
and boundary terms; without one, the manufactured benchmark problem
f = 8π²·sin(2πx)·sin(2πy) with known exact solution is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		var err error
		if logger, err = cfg.Build(); err != nil {
			return fmt.Errorf("build logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(solveCmd, benchCmd, scaleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "poisson2d:", err)
		os.Exit(1)
	}
}
