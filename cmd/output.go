package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/seeksim/seeksim/sim/trace"
)

// printTrace writes the per-step service trace to standard output.
func printTrace(tr *trace.Trace) {
	for _, s := range tr.Steps[1:] {
		served := "-"
		if s.ServedID != nil {
			served = strconv.Itoa(*s.ServedID)
		}
		fmt.Printf("Step %d: Head at %d, Moved %d, Served %s, Cumulative %d\n",
			s.Step, s.Head, s.Moved, served, s.Cumulative)
	}
}

// exportCSV writes the trace to path in the visualizer's CSV format.
func exportCSV(tr *trace.Trace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	// one time unit per cylinder of travel
	return tr.WriteCSV(f, 1.0)
}
