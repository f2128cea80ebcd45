package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/jacobi"
	"github.com/katalvlaran/poisson2d/params"
	"github.com/katalvlaran/poisson2d/problem"
	"github.com/katalvlaran/poisson2d/schwarz"
	"github.com/katalvlaran/poisson2d/vtk"
)

var (
	solveSize    int
	solveMethod  string
	solveWorkers int
	solveThreads int
	solveTol     float64
	solveMaxIter int
	solveParams  string
	solveVTK     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one Poisson problem with a chosen strategy",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.IntVar(&solveSize, "size", 64, "grid side length n")
	f.StringVar(&solveMethod, "method", "serial", "serial|parallel|distributed|hybrid|direct")
	f.IntVar(&solveWorkers, "workers", 1, "distributed rank count")
	f.IntVar(&solveThreads, "threads", 0, "thread bands per rank (0 = runtime default)")
	f.Float64Var(&solveTol, "tol", 1e-6, "convergence tolerance (overrides the parameter file)")
	f.IntVar(&solveMaxIter, "max-iter", 1000, "iteration budget (overrides the parameter file)")
	f.StringVar(&solveParams, "params", "", "YAML parameter file (default: manufactured problem)")
	f.StringVar(&solveVTK, "vtk", "", "write the solution grid to this VTK file")
}

// loadProblem resolves the parameter file (or the manufactured default)
// and applies command-line overrides for the solver knobs.
func loadProblem(cmd *cobra.Command) (problem.Problem, jacobi.Options, error) {
	prm := params.Default()
	if solveParams != "" {
		var err error
		if prm, err = params.Load(solveParams); err != nil {
			return problem.Problem{}, jacobi.Options{}, err
		}
	}
	if cmd.Flags().Changed("tol") || solveParams == "" {
		prm.Tol = solveTol
	}
	if cmd.Flags().Changed("max-iter") || solveParams == "" {
		prm.MaxIter = solveMaxIter
	}

	prob, err := prm.Compile()
	if err != nil {
		return problem.Problem{}, jacobi.Options{}, err
	}

	opts := jacobi.DefaultOptions()
	opts.Tol = prm.Tol
	opts.MaxIter = prm.MaxIter
	opts.Workers = solveWorkers
	opts.Threads = solveThreads

	return prob, opts, nil
}

// runVariant dispatches one named strategy.
func runVariant(method string, prob problem.Problem, n int, opts jacobi.Options) (jacobi.Result, error) {
	switch method {
	case "serial":
		return jacobi.Solve(prob, n, opts)
	case "parallel":
		return jacobi.SolveParallel(prob, n, opts)
	case "distributed":
		return jacobi.SolveDistributed(prob, n, opts)
	case "hybrid":
		return jacobi.SolveHybrid(prob, n, opts)
	case "direct":
		return schwarz.SolveDirect(prob, n, opts)
	default:
		return jacobi.Result{}, fmt.Errorf("unknown method %q", method)
	}
}

func runSolve(cmd *cobra.Command, _ []string) error {
	prob, opts, err := loadProblem(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := runVariant(solveMethod, prob, solveSize, opts)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	logger.Info("solve finished",
		zap.String("method", solveMethod),
		zap.Int("n", solveSize),
		zap.Int("workers", opts.Workers),
		zap.Int("iterations", res.State.Iterations),
		zap.Bool("converged", res.State.Converged),
		zap.Float64("residual", res.Residual),
		zap.Duration("elapsed", elapsed),
	)
	if res.State.MaxIterReached {
		logger.Warn("maximum iterations reached without convergence",
			zap.Int("max_iter", opts.MaxIter),
			zap.Float64("residual", res.Residual),
		)
	}
	if prob.HasExact() {
		e, err := grid.L2Error(res.Grid, prob.Exact)
		if err != nil {
			return err
		}
		logger.Info("accuracy", zap.Float64("l2_error", e))
	}
	if solveVTK != "" {
		if err := vtk.WriteFile(solveVTK, res.Grid); err != nil {
			return err
		}
		logger.Info("wrote solution", zap.String("path", solveVTK))
	}

	return nil
}
