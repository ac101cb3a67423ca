package sim

// PolicyResult holds one policy's outcome in a comparison run.
type PolicyResult struct {
	TotalSeek   int
	AverageSeek float64
	Throughput  float64
	SeekStats   SeekStats
}

// Comparison is the result of running every policy against the same input.
type Comparison struct {
	Results map[Policy]PolicyResult
	Best    Policy // minimum TotalSeek; ties break by AllPolicies order
}

// CompareAll runs all six policies against the identical input snapshot and
// selects the cheapest. Each policy gets its own working copy (Schedule
// copies internally), so no run can observe another's mutations. The request
// set must be non-empty — the per-policy averages need a denominator.
func CompareAll(reqs []Request, cfg DiskConfig) (*Comparison, error) {
	if len(reqs) == 0 {
		return nil, invalidInputf("comparison needs at least one request")
	}

	cmp := &Comparison{Results: make(map[Policy]PolicyResult, len(AllPolicies))}
	bestSeek := -1
	for _, p := range AllPolicies {
		tr, err := Schedule(p, reqs, cfg)
		if err != nil {
			return nil, err
		}
		m, err := ComputeMetrics(tr, len(reqs))
		if err != nil {
			return nil, err
		}
		cmp.Results[p] = PolicyResult{
			TotalSeek:   m.TotalSeek,
			AverageSeek: m.AverageSeek,
			Throughput:  m.Throughput,
			SeekStats:   ComputeSeekStats(tr),
		}
		// strict < keeps the earlier policy on ties
		if bestSeek < 0 || m.TotalSeek < bestSeek {
			bestSeek = m.TotalSeek
			cmp.Best = p
		}
	}
	return cmp, nil
}
