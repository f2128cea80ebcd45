package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/jacobi"
	"github.com/katalvlaran/poisson2d/problem"
	"github.com/katalvlaran/poisson2d/report"
)

var (
	benchSizes   []int
	benchWorkers int
	benchThreads int
	benchTol     float64
	benchMaxIter int
	benchCSV     string
	benchPlotDir string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run all five variants across grid sizes and tabulate the results",
	RunE:  runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntSliceVar(&benchSizes, "sizes", []int{8, 16, 32, 64}, "grid side lengths")
	f.IntVar(&benchWorkers, "workers", 4, "rank count for the distributed variants")
	f.IntVar(&benchThreads, "threads", 2, "thread bands per rank (parallel and hybrid)")
	f.Float64Var(&benchTol, "tol", 1e-6, "convergence tolerance")
	f.IntVar(&benchMaxIter, "max-iter", 10000, "iteration budget per variant")
	f.StringVar(&benchCSV, "csv", "results.csv", "CSV output path")
	f.StringVar(&benchPlotDir, "gnuplot", "", "directory to write gnuplot scripts into (optional)")
}

// timeVariant runs one strategy and reports its wall time in seconds.
// Non-convergence is logged and kept in the tally; only real errors stop
// the benchmark.
func timeVariant(method string, prob problem.Problem, n int, opts jacobi.Options) (jacobi.Result, float64, error) {
	start := time.Now()
	res, err := runVariant(method, prob, n, opts)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		return jacobi.Result{}, 0, err
	}

	logger.Debug("variant finished",
		zap.String("method", method),
		zap.Int("n", n),
		zap.Int("iterations", res.State.Iterations),
		zap.Float64("seconds", elapsed),
	)
	if res.State.MaxIterReached {
		logger.Warn("variant did not converge",
			zap.String("method", method),
			zap.Int("n", n),
			zap.Float64("residual", res.Residual),
		)
	}

	return res, elapsed, nil
}

func runBench(_ *cobra.Command, _ []string) error {
	prob := problem.Manufactured()
	acc := report.NewAccumulator()

	base := jacobi.DefaultOptions()
	base.Tol = benchTol
	base.MaxIter = benchMaxIter

	for _, n := range benchSizes {
		serialOpts := base
		parallelOpts := base
		parallelOpts.Threads = benchThreads
		distOpts := base
		distOpts.Workers = benchWorkers
		hybridOpts := distOpts
		hybridOpts.Threads = benchThreads

		serialRes, serialT, err := timeVariant("serial", prob, n, serialOpts)
		if err != nil {
			return err
		}
		_, parallelT, err := timeVariant("parallel", prob, n, parallelOpts)
		if err != nil {
			return err
		}
		_, distT, err := timeVariant("distributed", prob, n, distOpts)
		if err != nil {
			return err
		}
		_, hybridT, err := timeVariant("hybrid", prob, n, hybridOpts)
		if err != nil {
			return err
		}
		_, directT, err := timeVariant("direct", prob, n, distOpts)
		if err != nil {
			return err
		}

		l2, err := grid.L2Error(serialRes.Grid, prob.Exact)
		if err != nil {
			return err
		}
		acc.Add(report.DataRow{
			N:           n,
			Serial:      serialT,
			Parallel:    parallelT,
			Distributed: distT,
			Hybrid:      hybridT,
			Direct:      directT,
			L2Error:     l2,
		})
	}

	if err := acc.WriteTable(os.Stdout); err != nil {
		return err
	}
	if err := writeCSVFile(benchCSV, acc); err != nil {
		return err
	}
	logger.Info("wrote results", zap.String("csv", benchCSV), zap.Int("rows", acc.Len()))

	if benchPlotDir != "" {
		if err := writePlotScripts(benchPlotDir, benchCSV); err != nil {
			return err
		}
	}

	return nil
}

func writeCSVFile(path string, acc *report.Accumulator) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = acc.WriteCSV(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func writePlotScripts(dir, csvPath string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timing, err := os.Create(filepath.Join(dir, "timing_vs_n.gp"))
	if err != nil {
		return err
	}
	defer timing.Close()
	opts := report.ScriptOptions{
		Title:  "Timing vs Grid Size (n)",
		Output: filepath.Join(dir, "timing_vs_n.png"),
		LogX:   true,
		LogY:   true,
	}
	if err = report.WriteTimingScript(timing, csvPath, opts); err != nil {
		return err
	}

	errors, err := os.Create(filepath.Join(dir, "l2error_vs_n.gp"))
	if err != nil {
		return err
	}
	defer errors.Close()
	opts.Title = "L2 Error vs Grid Size (n)"
	opts.Output = filepath.Join(dir, "l2error_vs_n.png")

	return report.WriteErrorScript(errors, csvPath, opts)
}
