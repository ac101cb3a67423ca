// Derives performance metrics from a finished scheduling run: total and
// average seek, throughput, and per-step seek statistics.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/seeksim/seeksim/sim/trace"
)

// Metrics aggregates statistics about one scheduling run for final
// reporting. Useful for comparing policy efficiency.
type Metrics struct {
	TotalSeek   int     // cumulative head movement
	AverageSeek float64 // TotalSeek / request count
	Throughput  float64 // requests per unit of seek; 0 when TotalSeek is 0 (zero-seek runs are valid)
}

// ComputeMetrics derives Metrics from a finished trace.
// requestCount must be positive — an empty request set has no defined
// average and is rejected with InvalidInputError at this boundary.
func ComputeMetrics(t *trace.Trace, requestCount int) (Metrics, error) {
	if requestCount <= 0 {
		return Metrics{}, invalidInputf("request count must be positive, got %d", requestCount)
	}
	total := t.TotalSeek()
	m := Metrics{
		TotalSeek:   total,
		AverageSeek: float64(total) / float64(requestCount),
	}
	if total > 0 {
		m.Throughput = float64(requestCount) / float64(total)
	}
	return m, nil
}

// SeekStats summarizes the distribution of per-step seek distances.
type SeekStats struct {
	Mean   float64
	StdDev float64
	Max    int
}

// ComputeSeekStats computes distance statistics over every movement step
// (step 0 excluded — the head starts there without moving).
func ComputeSeekStats(t *trace.Trace) SeekStats {
	if t.Len() < 2 {
		return SeekStats{}
	}
	moves := make([]float64, 0, t.Len()-1)
	max := 0
	for _, s := range t.Steps[1:] {
		moves = append(moves, float64(s.Moved))
		if s.Moved > max {
			max = s.Moved
		}
	}
	st := SeekStats{Mean: stat.Mean(moves, nil), Max: max}
	if len(moves) > 1 {
		st.StdDev = stat.StdDev(moves, nil)
	}
	return st
}

// Print displays the metrics block at the end of a run.
func (m Metrics) Print() {
	fmt.Println("=== Run Metrics ===")
	fmt.Printf("Total head movement  : %d\n", m.TotalSeek)
	fmt.Printf("Average seek         : %.2f\n", m.AverageSeek)
	fmt.Printf("Throughput           : %.4f\n", m.Throughput)
}
