package report

import (
	"fmt"
	"io"
)

// variantColumns maps plot labels to their 1-based CSV column, in the
// order the timing plot draws them.
var variantColumns = []struct {
	label  string
	column int
}{
	{"Serial", 2},
	{"Parallel", 3},
	{"Distributed", 4},
	{"Hybrid", 5},
	{"Direct", 6},
}

// ScriptOptions configures one generated gnuplot script.
//   - Title: plot title.
//   - Output: PNG file the script renders into.
//   - LogX, LogY: base-2 logarithmic axes, matching the doubling grid
//     sizes of the benchmark.
type ScriptOptions struct {
	Title  string
	Output string
	LogX   bool
	LogY   bool
}

// WriteTimingScript emits a gnuplot script plotting the wall time of all
// five variants against the grid size, reading the CSV produced by
// WriteCSV (the header line is skipped in the plot command).
func WriteTimingScript(w io.Writer, csvPath string, opts ScriptOptions) error {
	writeScriptHeader(w, "Time (s)", opts)
	fmt.Fprintf(w, "plot ")
	for i, v := range variantColumns {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "'%s' every ::1 using 1:%d with linespoints title '%s'", csvPath, v.column, v.label)
	}
	_, err := fmt.Fprintln(w)

	return err
}

// WriteErrorScript emits a gnuplot script plotting the L2 error column
// against the grid size.
func WriteErrorScript(w io.Writer, csvPath string, opts ScriptOptions) error {
	writeScriptHeader(w, "L2 Error", opts)
	_, err := fmt.Fprintf(w, "plot '%s' every ::1 using 1:7 with linespoints title 'L2 Error'\n", csvPath)

	return err
}

func writeScriptHeader(w io.Writer, ylabel string, opts ScriptOptions) {
	fmt.Fprintf(w, "set terminal png enhanced font 'Arial,12' size 800,600\n")
	fmt.Fprintf(w, "set output '%s'\n", opts.Output)
	fmt.Fprintf(w, "set title '%s'\n", opts.Title)
	fmt.Fprintf(w, "set xlabel 'n'\n")
	fmt.Fprintf(w, "set ylabel '%s'\n", ylabel)
	fmt.Fprintf(w, "set grid\n")
	fmt.Fprintf(w, "set key outside right\n")
	fmt.Fprintf(w, "set datafile separator ','\n")
	if opts.LogX {
		fmt.Fprintf(w, "set logscale x 2\n")
	}
	if opts.LogY {
		fmt.Fprintf(w, "set logscale y 2\n")
	}
}
