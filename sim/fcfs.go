package sim

import (
	"github.com/seeksim/seeksim/sim/trace"
)

// scheduleFCFS services requests in input order, unmodified.
// Cost is the sum of consecutive absolute differences from the initial head.
func scheduleFCFS(reqs []Request, cfg DiskConfig) *trace.Trace {
	st := newHeadState(cfg)
	st.serveAll(reqs)
	return st.tr
}
