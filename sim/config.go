package sim

// Direction is the head's sweep direction for the SCAN-family policies.
// It is a required part of DiskConfig — never defaulted inside the engine.
type Direction int

const (
	// DirectionRight sweeps toward higher cylinders.
	DirectionRight Direction = 1
	// DirectionLeft sweeps toward lower cylinders.
	DirectionLeft Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	default:
		return "invalid"
	}
}

// ParseDirection converts an integer direction value (+1 or -1) to a
// Direction. Any other value is a ConfigurationError.
func ParseDirection(v int) (Direction, error) {
	switch v {
	case 1:
		return DirectionRight, nil
	case -1:
		return DirectionLeft, nil
	default:
		return 0, configErrorf("direction must be 1 or -1, got %d", v)
	}
}

// DiskConfig groups the per-run disk parameters. Passed by value to every
// scheduling call; the engine never mutates it.
type DiskConfig struct {
	DiskSize    int       // number of cylinders; valid positions are [0, DiskSize)
	InitialHead int       // head position at step 0 (must be in [0, DiskSize))
	Direction   Direction // initial sweep direction for SCAN/C-SCAN/LOOK/C-LOOK
}

// Validate checks the configuration invariants: DiskSize > 0, a recognized
// Direction, and 0 <= InitialHead < DiskSize.
func (c DiskConfig) Validate() error {
	if c.DiskSize <= 0 {
		return configErrorf("disk size must be positive, got %d", c.DiskSize)
	}
	if c.Direction != DirectionRight && c.Direction != DirectionLeft {
		return configErrorf("direction must be DirectionRight or DirectionLeft, got %d", int(c.Direction))
	}
	if c.InitialHead < 0 || c.InitialHead >= c.DiskSize {
		return invalidInputf("head position %d outside [0, %d)", c.InitialHead, c.DiskSize)
	}
	return nil
}
