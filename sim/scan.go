package sim

import (
	"github.com/seeksim/seeksim/sim/trace"
)

// scheduleSCAN implements the elevator algorithm: sweep in the configured
// direction servicing requests in order, run to the disk edge, then sweep
// back for the remainder.
//
// The synthetic edge visit (DiskSize-1 or 0, nil ServedID, cost charged)
// happens only when the opposite side holds requests — with nothing to
// reverse for, SCAN degenerates to LOOK and their totals agree.
func scheduleSCAN(reqs []Request, cfg DiskConfig) *trace.Trace {
	st := newHeadState(cfg)
	left, right := partition(reqs, st.head)
	if cfg.Direction == DirectionRight {
		st.serveAll(right)
		if len(left) > 0 {
			st.reposition(cfg.DiskSize - 1)
			st.serveAllReversed(left)
		}
	} else {
		st.serveAllReversed(left)
		if len(right) > 0 {
			st.reposition(0)
			st.serveAll(right)
		}
	}
	return st.tr
}

// scheduleLOOK is SCAN without the synthetic edge visit: the head reverses
// directly at the last request on the sweep side.
func scheduleLOOK(reqs []Request, cfg DiskConfig) *trace.Trace {
	st := newHeadState(cfg)
	left, right := partition(reqs, st.head)
	if cfg.Direction == DirectionRight {
		st.serveAll(right)
		st.serveAllReversed(left)
	} else {
		st.serveAllReversed(left)
		st.serveAll(right)
	}
	return st.tr
}
