package sim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/seeksim/seeksim/sim/trace"
)

// classic textbook workload: head 53 on a 200-cylinder disk
func classicRequests() []Request {
	return RequestsFromCylinders([]int{98, 183, 37, 122, 14, 124, 65, 67})
}

func classicConfig(dir Direction) DiskConfig {
	return DiskConfig{DiskSize: 200, InitialHead: 53, Direction: dir}
}

func servedIDs(tr *trace.Trace) []int {
	var ids []int
	for _, s := range tr.Steps {
		if s.ServedID != nil {
			ids = append(ids, *s.ServedID)
		}
	}
	return ids
}

func TestSchedule_GoldenSequences(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		direction Direction
		wantSeq   []int
		wantTotal int
	}{
		{"FCFS", PolicyFCFS, DirectionRight,
			[]int{53, 98, 183, 37, 122, 14, 124, 65, 67}, 640},
		{"SSTF", PolicySSTF, DirectionRight,
			[]int{53, 65, 67, 37, 14, 98, 122, 124, 183}, 236},
		{"SCAN right", PolicySCAN, DirectionRight,
			[]int{53, 65, 67, 98, 122, 124, 183, 199, 37, 14}, 331},
		{"SCAN left", PolicySCAN, DirectionLeft,
			[]int{53, 37, 14, 0, 65, 67, 98, 122, 124, 183}, 236},
		{"C-SCAN right", PolicyCSCAN, DirectionRight,
			[]int{53, 65, 67, 98, 122, 124, 183, 199, 0, 14, 37}, 382},
		{"C-SCAN left", PolicyCSCAN, DirectionLeft,
			[]int{53, 37, 14, 0, 199, 183, 124, 122, 98, 67, 65}, 386},
		{"LOOK right", PolicyLOOK, DirectionRight,
			[]int{53, 65, 67, 98, 122, 124, 183, 37, 14}, 299},
		{"LOOK left", PolicyLOOK, DirectionLeft,
			[]int{53, 37, 14, 65, 67, 98, 122, 124, 183}, 208},
		{"C-LOOK right", PolicyCLOOK, DirectionRight,
			[]int{53, 65, 67, 98, 122, 124, 183, 14, 37}, 322},
		{"C-LOOK left", PolicyCLOOK, DirectionLeft,
			[]int{53, 37, 14, 183, 124, 122, 98, 67, 65}, 326},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Schedule(tt.policy, classicRequests(), classicConfig(tt.direction))
			if err != nil {
				t.Fatalf("Schedule failed: %v", err)
			}
			if diff := cmp.Diff(tt.wantSeq, tr.Sequence()); diff != "" {
				t.Errorf("sequence mismatch (-want +got):\n%s", diff)
			}
			if tr.TotalSeek() != tt.wantTotal {
				t.Errorf("total seek: got %d, want %d", tr.TotalSeek(), tt.wantTotal)
			}
		})
	}
}

func TestSchedule_Invariants(t *testing.T) {
	reqs := classicRequests()
	for _, p := range AllPolicies {
		for _, dir := range []Direction{DirectionRight, DirectionLeft} {
			tr, err := Schedule(p, reqs, classicConfig(dir))
			if err != nil {
				t.Fatalf("%s/%s: %v", p, dir, err)
			}

			// first element is the initial head
			if tr.Steps[0].Head != 53 || tr.Steps[0].Moved != 0 || tr.Steps[0].ServedID != nil {
				t.Errorf("%s/%s: bad initial step %+v", p, dir, tr.Steps[0])
			}

			// every request serviced exactly once
			seen := make(map[int]int)
			for _, id := range servedIDs(tr) {
				seen[id]++
			}
			if len(seen) != len(reqs) {
				t.Errorf("%s/%s: served %d distinct requests, want %d", p, dir, len(seen), len(reqs))
			}
			for id, n := range seen {
				if n != 1 {
					t.Errorf("%s/%s: request %d served %d times", p, dir, id, n)
				}
			}

			// total seek equals the sum of per-step distances
			sum := 0
			for _, s := range tr.Steps {
				sum += s.Moved
			}
			if sum != tr.TotalSeek() || sum < 0 {
				t.Errorf("%s/%s: total seek %d, sum of moves %d", p, dir, tr.TotalSeek(), sum)
			}
		}
	}
}

func TestSchedule_Idempotent(t *testing.T) {
	for _, p := range AllPolicies {
		a, err := Schedule(p, classicRequests(), classicConfig(DirectionRight))
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		b, err := Schedule(p, classicRequests(), classicConfig(DirectionRight))
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: repeated run differs (-first +second):\n%s", p, diff)
		}
	}
}

func TestSchedule_DoesNotMutateCallerSlice(t *testing.T) {
	reqs := classicRequests()
	orig := make([]Request, len(reqs))
	copy(orig, reqs)

	for _, p := range AllPolicies {
		if _, err := Schedule(p, reqs, classicConfig(DirectionRight)); err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if diff := cmp.Diff(orig, reqs); diff != "" {
			t.Fatalf("%s mutated the caller's slice:\n%s", p, diff)
		}
	}
}

func TestSSTF_TieBreaks(t *testing.T) {
	cfg := DiskConfig{DiskSize: 100, InitialHead: 50, Direction: DirectionRight}

	// equal distance: smaller cylinder wins
	tr, err := Schedule(PolicySSTF, []Request{{ID: 0, Cylinder: 55}, {ID: 1, Cylinder: 45}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Sequence(); got[1] != 45 {
		t.Errorf("equal-distance tie: got %v, want 45 first", got)
	}

	// equal cylinder: smaller ID wins
	tr, err = Schedule(PolicySSTF, []Request{{ID: 1, Cylinder: 60}, {ID: 0, Cylinder: 60}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ids := servedIDs(tr)
	if ids[0] != 0 || ids[1] != 1 {
		t.Errorf("equal-cylinder tie: got ids %v, want [0 1]", ids)
	}
}

func TestSCANMatchesLOOKWithoutReversal(t *testing.T) {
	// all requests on the sweep side: no edge visit, identical totals
	cfg := classicConfig(DirectionRight)
	reqs := RequestsFromCylinders([]int{60, 70, 120})

	scan, err := Schedule(PolicySCAN, reqs, cfg)
	if err != nil {
		t.Fatal(err)
	}
	look, err := Schedule(PolicyLOOK, reqs, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if scan.TotalSeek() != look.TotalSeek() {
		t.Errorf("no-reversal totals differ: SCAN %d, LOOK %d", scan.TotalSeek(), look.TotalSeek())
	}

	// a single left-side request forces the edge visit and the totals apart
	reqs = append(reqs, Request{ID: 3, Cylinder: 40})
	scan, err = Schedule(PolicySCAN, reqs, cfg)
	if err != nil {
		t.Fatal(err)
	}
	look, err = Schedule(PolicyLOOK, reqs, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if scan.TotalSeek() <= look.TotalSeek() {
		t.Errorf("with reversal SCAN must cost more: SCAN %d, LOOK %d", scan.TotalSeek(), look.TotalSeek())
	}
}

func TestCSCANWrapCostIsFullTraversal(t *testing.T) {
	// wrap cost stays DiskSize-1 no matter how close the left side sits to 0
	cfg := classicConfig(DirectionRight)
	for _, leftCyl := range []int{1, 25, 52} {
		tr, err := Schedule(PolicyCSCAN, RequestsFromCylinders([]int{60, leftCyl}), cfg)
		if err != nil {
			t.Fatal(err)
		}
		var wrap *trace.ServiceStep
		for i := range tr.Steps {
			if tr.Steps[i].Synthetic() && tr.Steps[i].Head == 0 {
				wrap = &tr.Steps[i]
			}
		}
		if wrap == nil {
			t.Fatalf("left %d: no wrap step in %v", leftCyl, tr.Sequence())
		}
		if wrap.Moved != cfg.DiskSize-1 {
			t.Errorf("left %d: wrap cost %d, want %d", leftCyl, wrap.Moved, cfg.DiskSize-1)
		}
	}
}

func TestSchedule_EmptyRequestList(t *testing.T) {
	for _, p := range AllPolicies {
		tr, err := Schedule(p, nil, classicConfig(DirectionRight))
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if tr.Len() != 1 || tr.TotalSeek() != 0 {
			t.Errorf("%s: empty input should yield only the initial step, got %v", p, tr.Sequence())
		}
	}
}

func TestSchedule_ValidationErrors(t *testing.T) {
	good := classicConfig(DirectionRight)

	var cfgErr *ConfigurationError
	var inputErr *InvalidInputError
	var policyErr *UnsupportedPolicyError

	_, err := Schedule(PolicyFCFS, classicRequests(), DiskConfig{DiskSize: 0, InitialHead: 0, Direction: DirectionRight})
	if !errors.As(err, &cfgErr) {
		t.Errorf("zero disk size: got %v, want ConfigurationError", err)
	}

	_, err = Schedule(PolicyFCFS, classicRequests(), DiskConfig{DiskSize: 200, InitialHead: 200, Direction: DirectionRight})
	if !errors.As(err, &inputErr) {
		t.Errorf("head out of range: got %v, want InvalidInputError", err)
	}

	_, err = Schedule(PolicyFCFS, []Request{{ID: 0, Cylinder: 500}}, good)
	if !errors.As(err, &inputErr) {
		t.Errorf("cylinder out of range: got %v, want InvalidInputError", err)
	}

	_, err = Schedule(PolicyFCFS, []Request{{ID: 3, Cylinder: 10}, {ID: 3, Cylinder: 20}}, good)
	if !errors.As(err, &inputErr) {
		t.Errorf("duplicate IDs: got %v, want InvalidInputError", err)
	}

	_, err = Schedule(Policy("ELEVATOR-2000"), classicRequests(), good)
	if !errors.As(err, &policyErr) {
		t.Errorf("unknown policy: got %v, want UnsupportedPolicyError", err)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"FCFS", PolicyFCFS},
		{"sstf", PolicySSTF},
		{"Scan", PolicySCAN},
		{"C-SCAN", PolicyCSCAN},
		{"CSCAN", PolicyCSCAN},
		{"look", PolicyLOOK},
		{"clook", PolicyCLOOK},
		{" c-look ", PolicyCLOOK},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if err != nil {
			t.Errorf("ParsePolicy(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	var policyErr *UnsupportedPolicyError
	if _, err := ParsePolicy("FIFO"); !errors.As(err, &policyErr) {
		t.Errorf("ParsePolicy(FIFO): got %v, want UnsupportedPolicyError", err)
	}
}
