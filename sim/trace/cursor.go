package trace

// Cursor replays a finished Trace index-by-index for interactive
// visualization (play / step / back). It re-derives head position from the
// stored steps and never re-runs the engine; stepping past either end is a
// no-op rather than an error.
type Cursor struct {
	trace *Trace
	idx   int
}

// NewCursor creates a Cursor positioned at step 0.
func NewCursor(t *Trace) *Cursor {
	return &Cursor{trace: t}
}

// Current returns the step under the cursor.
func (c *Cursor) Current() ServiceStep {
	return c.trace.Steps[c.idx]
}

// Index returns the cursor's current step index.
func (c *Cursor) Index() int {
	return c.idx
}

// AtEnd reports whether the cursor sits on the final step.
func (c *Cursor) AtEnd() bool {
	return c.idx == len(c.trace.Steps)-1
}

// Next advances one step. Returns the new current step and whether the
// cursor actually moved.
func (c *Cursor) Next() (ServiceStep, bool) {
	if c.AtEnd() {
		return c.Current(), false
	}
	c.idx++
	return c.Current(), true
}

// Prev steps back one step. Returns the new current step and whether the
// cursor actually moved.
func (c *Cursor) Prev() (ServiceStep, bool) {
	if c.idx == 0 {
		return c.Current(), false
	}
	c.idx--
	return c.Current(), true
}

// Seek jumps to the given step index, clamping to the trace bounds.
// Returns the step landed on.
func (c *Cursor) Seek(idx int) ServiceStep {
	if idx < 0 {
		idx = 0
	}
	if idx > len(c.trace.Steps)-1 {
		idx = len(c.trace.Steps) - 1
	}
	c.idx = idx
	return c.Current()
}

// Reset moves the cursor back to step 0.
func (c *Cursor) Reset() {
	c.idx = 0
}
