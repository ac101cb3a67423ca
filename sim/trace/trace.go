package trace

// Trace collects ServiceSteps in service order during a scheduling run.
// Steps are appended once and never reordered.
type Trace struct {
	Steps []ServiceStep
}

// New creates a Trace whose step 0 is the initial head position.
func New(initialHead int) *Trace {
	return &Trace{Steps: []ServiceStep{{Step: 0, Head: initialHead}}}
}

// Record appends a movement to the given head position. servedID is nil for
// synthetic repositioning steps. Moved and Cumulative are derived from the
// previous step, keeping TotalSeek == sum of Moved by construction.
func (t *Trace) Record(head, moved int, servedID *int) {
	prev := t.Steps[len(t.Steps)-1]
	t.Steps = append(t.Steps, ServiceStep{
		Step:       prev.Step + 1,
		Head:       head,
		Moved:      moved,
		ServedID:   servedID,
		Cumulative: prev.Cumulative + moved,
	})
}

// Len returns the number of steps, including the initial position.
func (t *Trace) Len() int {
	return len(t.Steps)
}

// TotalSeek returns the cumulative head movement over the whole run.
func (t *Trace) TotalSeek() int {
	return t.Steps[len(t.Steps)-1].Cumulative
}

// Sequence returns the visited head positions in service order,
// starting with the initial head. Synthetic positions are included.
func (t *Trace) Sequence() []int {
	seq := make([]int, len(t.Steps))
	for i, s := range t.Steps {
		seq[i] = s.Head
	}
	return seq
}

// ServedCount returns the number of steps that serviced a request.
func (t *Trace) ServedCount() int {
	n := 0
	for _, s := range t.Steps {
		if s.ServedID != nil {
			n++
		}
	}
	return n
}
