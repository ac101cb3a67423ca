// Package sim provides the core disk-head scheduling engine for seeksim.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - request.go: Request (id + cylinder), parsing, and random generation
//   - state.go: headState, the cost-accumulation primitive every policy threads through its loop
//   - scheduler.go: the Policy enumeration and the Schedule entry point
//
// # Architecture
//
// Each policy is a pure function from (requests, DiskConfig) to a
// trace.Trace: the ordered list of head positions with per-step and
// cumulative seek distances. Policies never mutate the caller's request
// slice; Schedule hands each one its own working copy. The engine is
// single-threaded per invocation and reentrant — concurrent callers need no
// locking.
//
// Policies:
//   - fcfs.go: FCFS (input order)
//   - sstf.go: SSTF (repeated nearest-cylinder selection, deterministic tie-break)
//   - scan.go: SCAN and LOOK (elevator sweeps)
//   - cscan.go: C-SCAN and C-LOOK (circular sweeps)
//
// On top of the policies sit metrics.go (per-run metrics and seek
// statistics), compare.go (run all policies, pick the cheapest), and
// scenario.go (YAML run descriptions for the CLI). The sim/trace
// sub-package holds the pure output data types, replay cursor, and CSV
// export; it has no dependency on sim.
package sim
