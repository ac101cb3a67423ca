// Defines the Request struct that models a single pending I/O request, plus
// the parsing and random-generation helpers the CLI and HTTP layers build on.

package sim

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Request is one pending I/O request: a unique non-negative ID and the
// cylinder it targets. Immutable once created — the engine only ever copies
// request slices, never edits them.
type Request struct {
	ID       int // unique, non-negative
	Cylinder int // target position, 0 <= Cylinder < DiskSize
}

func (r Request) String() string {
	return fmt.Sprintf("Request(ID: %d, Cylinder: %d)", r.ID, r.Cylinder)
}

// RequestsFromCylinders builds a request list from raw cylinder values,
// assigning sequential IDs in input order. This is how every external
// surface (CLI input, HTTP body, scenario file) creates requests.
func RequestsFromCylinders(cylinders []int) []Request {
	reqs := make([]Request, len(cylinders))
	for i, c := range cylinders {
		reqs[i] = Request{ID: i, Cylinder: c}
	}
	return reqs
}

// ParseRequestList parses a comma-separated cylinder list ("98, 183, 37")
// into requests with sequential IDs. Whitespace around values is ignored.
func ParseRequestList(s string) ([]Request, error) {
	parts := strings.Split(s, ",")
	cylinders := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, invalidInputf("request cylinder %q is not an integer", p)
		}
		cylinders = append(cylinders, v)
	}
	if len(cylinders) == 0 {
		return nil, invalidInputf("no request cylinders given")
	}
	return RequestsFromCylinders(cylinders), nil
}

// GenerateRequests produces n random requests with cylinders uniform over
// [0, diskSize). Deterministic for a given rng state — callers obtain rng
// from a PartitionedRNG so runs are reproducible by seed.
func GenerateRequests(n, diskSize int, rng *rand.Rand) []Request {
	reqs := make([]Request, n)
	for i := range reqs {
		reqs[i] = Request{ID: i, Cylinder: rng.Intn(diskSize)}
	}
	return reqs
}

// validateRequests checks the scheduling preconditions on a request set:
// every cylinder in [0, diskSize) and no duplicate IDs.
func validateRequests(reqs []Request, diskSize int) error {
	seen := make(map[int]bool, len(reqs))
	for _, r := range reqs {
		if r.ID < 0 {
			return invalidInputf("request ID %d is negative", r.ID)
		}
		if seen[r.ID] {
			return invalidInputf("duplicate request ID %d", r.ID)
		}
		seen[r.ID] = true
		if r.Cylinder < 0 || r.Cylinder >= diskSize {
			return invalidInputf("request %d cylinder %d outside [0, %d)", r.ID, r.Cylinder, diskSize)
		}
	}
	return nil
}
