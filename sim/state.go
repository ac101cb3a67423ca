package sim

import (
	"github.com/seeksim/seeksim/sim/trace"
)

// headState threads the current head position and the accumulating trace
// through a single policy loop. It is an explicit value created per run —
// no state survives or is shared between runs.
type headState struct {
	head int
	tr   *trace.Trace
}

func newHeadState(cfg DiskConfig) *headState {
	return &headState{
		head: cfg.InitialHead,
		tr:   trace.New(cfg.InitialHead),
	}
}

// serve moves the head to the request's cylinder, charging the absolute
// distance. This is the shared cost-accumulation primitive of every policy.
func (s *headState) serve(r Request) {
	id := r.ID
	s.moveTo(r.Cylinder, &id)
}

// reposition moves the head without servicing a request (the disk-edge
// bounce in SCAN, the edge visit and wrap in C-SCAN).
func (s *headState) reposition(cylinder int) {
	s.moveTo(cylinder, nil)
}

func (s *headState) moveTo(cylinder int, servedID *int) {
	moved := cylinder - s.head
	if moved < 0 {
		moved = -moved
	}
	s.head = cylinder
	s.tr.Record(cylinder, moved, servedID)
}

// serveAll services requests in slice order.
func (s *headState) serveAll(reqs []Request) {
	for _, r := range reqs {
		s.serve(r)
	}
}

// serveAllReversed services requests in reverse slice order.
func (s *headState) serveAllReversed(reqs []Request) {
	for i := len(reqs) - 1; i >= 0; i-- {
		s.serve(reqs[i])
	}
}
