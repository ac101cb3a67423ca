package sim

import (
	"sort"
	"strings"

	"github.com/seeksim/seeksim/sim/trace"
)

// Policy identifies one of the six scheduling algorithms. The set is closed:
// unknown names are rejected with UnsupportedPolicyError at the boundary.
type Policy string

const (
	PolicyFCFS  Policy = "FCFS"
	PolicySSTF  Policy = "SSTF"
	PolicySCAN  Policy = "SCAN"
	PolicyCSCAN Policy = "C-SCAN"
	PolicyLOOK  Policy = "LOOK"
	PolicyCLOOK Policy = "C-LOOK"
)

// AllPolicies lists every policy in the fixed enumeration order used by the
// comparator's tie-break. Do not reorder.
var AllPolicies = []Policy{PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN, PolicyLOOK, PolicyCLOOK}

// validPolicies is the set of recognized policy names.
// Shared by ParsePolicy and Scenario.Validate to avoid duplication.
var validPolicies = map[Policy]bool{
	PolicyFCFS:  true,
	PolicySSTF:  true,
	PolicySCAN:  true,
	PolicyCSCAN: true,
	PolicyLOOK:  true,
	PolicyCLOOK: true,
}

// ParsePolicy converts a user-supplied algorithm name to a Policy.
// Matching is case-insensitive and accepts the hyphen-less spellings
// "CSCAN" and "CLOOK" used by older front ends.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FCFS":
		return PolicyFCFS, nil
	case "SSTF":
		return PolicySSTF, nil
	case "SCAN":
		return PolicySCAN, nil
	case "C-SCAN", "CSCAN":
		return PolicyCSCAN, nil
	case "LOOK":
		return PolicyLOOK, nil
	case "C-LOOK", "CLOOK":
		return PolicyCLOOK, nil
	default:
		return "", &UnsupportedPolicyError{Name: name}
	}
}

// Schedule computes the deterministic service order for the given policy.
//
// The returned trace starts at cfg.InitialHead (step 0); every request is
// serviced exactly once; TotalSeek equals the sum of per-step distances.
// The caller's request slice is never modified — each run works on its own
// copy. Identical inputs yield bit-identical traces.
func Schedule(policy Policy, reqs []Request, cfg DiskConfig) (*trace.Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateRequests(reqs, cfg.DiskSize); err != nil {
		return nil, err
	}

	working := make([]Request, len(reqs))
	copy(working, reqs)

	switch policy {
	case PolicyFCFS:
		return scheduleFCFS(working, cfg), nil
	case PolicySSTF:
		return scheduleSSTF(working, cfg), nil
	case PolicySCAN:
		return scheduleSCAN(working, cfg), nil
	case PolicyCSCAN:
		return scheduleCSCAN(working, cfg), nil
	case PolicyLOOK:
		return scheduleLOOK(working, cfg), nil
	case PolicyCLOOK:
		return scheduleCLOOK(working, cfg), nil
	default:
		return nil, &UnsupportedPolicyError{Name: string(policy)}
	}
}

// sortByCylinder orders requests ascending by cylinder, then by ID.
// The canonical tie order every direction-aware policy starts from.
func sortByCylinder(reqs []Request) {
	sort.SliceStable(reqs, func(i, j int) bool {
		if reqs[i].Cylinder != reqs[j].Cylinder {
			return reqs[i].Cylinder < reqs[j].Cylinder
		}
		return reqs[i].ID < reqs[j].ID
	})
}

// partition splits requests into those strictly below the head and those at
// or above it, each sorted ascending by cylinder then ID.
func partition(reqs []Request, head int) (left, right []Request) {
	for _, r := range reqs {
		if r.Cylinder < head {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	sortByCylinder(left)
	sortByCylinder(right)
	return left, right
}
