package sim

import (
	"github.com/seeksim/seeksim/sim/trace"
)

// scheduleCSCAN implements circular SCAN: sweep in the configured direction,
// run to the near disk edge, wrap to the far edge, and continue the sweep in
// the same direction for the remaining requests.
//
// Both the edge visit and the wrap are synthetic steps (nil ServedID). The
// wrap always costs DiskSize-1 — the full traversal length — regardless of
// where the nearest remaining request sits. The left-moving variant mirrors
// the rightward one symmetrically. As with SCAN, an empty opposite side
// means no wrap at all.
func scheduleCSCAN(reqs []Request, cfg DiskConfig) *trace.Trace {
	st := newHeadState(cfg)
	left, right := partition(reqs, st.head)
	if cfg.Direction == DirectionRight {
		st.serveAll(right)
		if len(left) > 0 {
			st.reposition(cfg.DiskSize - 1)
			// wrap: |0 - (DiskSize-1)| is the full traversal cost
			st.reposition(0)
			st.serveAll(left)
		}
	} else {
		st.serveAllReversed(left)
		if len(right) > 0 {
			st.reposition(0)
			st.reposition(cfg.DiskSize - 1)
			st.serveAllReversed(right)
		}
	}
	return st.tr
}

// scheduleCLOOK is C-SCAN without the edge visit or the full-traversal wrap
// penalty: after the sweep it jumps straight to the far-side extreme request
// at the actual head distance, then continues in the sweep direction.
func scheduleCLOOK(reqs []Request, cfg DiskConfig) *trace.Trace {
	st := newHeadState(cfg)
	left, right := partition(reqs, st.head)
	if cfg.Direction == DirectionRight {
		st.serveAll(right)
		// the first left serve is the jump, charged at actual distance
		st.serveAll(left)
	} else {
		st.serveAllReversed(left)
		st.serveAllReversed(right)
	}
	return st.tr
}
