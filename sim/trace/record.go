// Package trace provides the service-order output types of the scheduling
// engine. This package has no dependencies on sim — it stores pure data
// types plus a replay cursor and CSV export for visualization front ends.
package trace

// ServiceStep records one head movement in service order.
//
// Step 0 is always the initial head position (Moved 0, nil ServedID).
// Synthetic repositioning steps — the disk-edge bounce in SCAN, the edge
// visit and wrap in C-SCAN — also carry a nil ServedID: the head moved but
// no request was serviced there.
type ServiceStep struct {
	Step       int  // 0-based index in service order
	Head       int  // head position after this step
	Moved      int  // |new head - old head|; the wrap step carries the full traversal cost
	ServedID   *int // ID of the serviced request; nil for step 0 and synthetic steps
	Cumulative int  // running total of Moved up to and including this step
}

// Synthetic reports whether this step repositioned the head without
// servicing a request (excluding the step-0 starting position).
func (s ServiceStep) Synthetic() bool {
	return s.Step > 0 && s.ServedID == nil
}
