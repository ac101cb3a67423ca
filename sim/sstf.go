package sim

import (
	"github.com/seeksim/seeksim/sim/trace"
)

// scheduleSSTF repeatedly services the pending request nearest to the
// current head. Ties break toward the smaller cylinder, then the smaller ID,
// so the order is fully deterministic. O(n²), fine at simulation scale.
func scheduleSSTF(reqs []Request, cfg DiskConfig) *trace.Trace {
	st := newHeadState(cfg)
	served := make([]bool, len(reqs))
	for remaining := len(reqs); remaining > 0; remaining-- {
		best := -1
		for i := range reqs {
			if served[i] {
				continue
			}
			if best < 0 || nearer(st.head, reqs[i], reqs[best]) {
				best = i
			}
		}
		served[best] = true
		st.serve(reqs[best])
	}
	return st.tr
}

// nearer reports whether a should be serviced before b from the given head:
// smaller distance, then smaller cylinder, then smaller ID.
func nearer(head int, a, b Request) bool {
	da, db := absInt(a.Cylinder-head), absInt(b.Cylinder-head)
	if da != db {
		return da < db
	}
	if a.Cylinder != b.Cylinder {
		return a.Cylinder < b.Cylinder
	}
	return a.ID < b.ID
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
