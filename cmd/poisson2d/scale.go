package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/poisson2d/jacobi"
	"github.com/katalvlaran/poisson2d/problem"
	"github.com/katalvlaran/poisson2d/report"
)

var (
	scaleSize    int
	scaleWorkers []int
	scaleThreads int
	scaleTol     float64
	scaleMaxIter int
	scaleCSV     string
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Measure distributed and hybrid timings across worker counts",
	RunE:  runScale,
}

func init() {
	f := scaleCmd.Flags()
	f.IntVar(&scaleSize, "size", 64, "grid side length n")
	f.IntSliceVar(&scaleWorkers, "workers-list", []int{1, 2, 4}, "rank counts to measure")
	f.IntVar(&scaleThreads, "threads", 2, "thread bands per rank for the hybrid variant")
	f.Float64Var(&scaleTol, "tol", 1e-6, "convergence tolerance")
	f.IntVar(&scaleMaxIter, "max-iter", 10000, "iteration budget per run")
	f.StringVar(&scaleCSV, "csv", "scalability.csv", "CSV output path")
}

func runScale(_ *cobra.Command, _ []string) error {
	prob := problem.Manufactured()
	set := report.NewScaleSet()

	for _, workers := range scaleWorkers {
		opts := jacobi.DefaultOptions()
		opts.Tol = scaleTol
		opts.MaxIter = scaleMaxIter
		opts.Workers = workers

		_, distT, err := timeVariant("distributed", prob, scaleSize, opts)
		if err != nil {
			return err
		}
		opts.Threads = scaleThreads
		_, hybridT, err := timeVariant("hybrid", prob, scaleSize, opts)
		if err != nil {
			return err
		}

		set.Add(report.ScaleRow{Workers: workers, Distributed: distT, Hybrid: hybridT})
	}

	if err := set.WriteTable(os.Stdout); err != nil {
		return err
	}

	f, err := os.Create(scaleCSV)
	if err != nil {
		return err
	}
	if err = set.WriteCSV(f); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Info("wrote scalability results", zap.String("csv", scaleCSV), zap.Int("size", scaleSize))

	return nil
}
