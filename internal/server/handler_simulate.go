package server

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/seeksim/seeksim/sim"
)

// simulateRequest is the wire format shared by /simulate and /compare.
// direction is optional at this boundary only and defaults to rightward,
// matching the original tool's always-right SCAN; the engine itself
// requires an explicit direction.
type simulateRequest struct {
	DiskSize     int    `json:"disk_size"`
	Requests     []int  `json:"requests"`
	HeadPosition int    `json:"head_position"`
	Algorithm    string `json:"algorithm"`
	Direction    *int   `json:"direction,omitempty"`
}

type simulateResponse struct {
	SeekSequence    []int   `json:"seek_sequence"`
	TotalSeekTime   int     `json:"total_seek_time"`
	AverageSeekTime float64 `json:"average_seek_time"`
	Throughput      float64 `json:"throughput"`
}

// diskConfig builds the engine configuration from the wire request.
func (req *simulateRequest) diskConfig() (sim.DiskConfig, error) {
	dir := sim.DirectionRight
	if req.Direction != nil {
		var err error
		dir, err = sim.ParseDirection(*req.Direction)
		if err != nil {
			return sim.DiskConfig{}, err
		}
	}
	return sim.DiskConfig{
		DiskSize:    req.DiskSize,
		InitialHead: req.HeadPosition,
		Direction:   dir,
	}, nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var body simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(body.Requests) == 0 {
		respondError(w, http.StatusBadRequest, "requests must be non-empty")
		return
	}

	policy, err := sim.ParsePolicy(body.Algorithm)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	cfg, err := body.diskConfig()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reqs := sim.RequestsFromCylinders(body.Requests)
	tr, err := sim.Schedule(policy, reqs, cfg)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := sim.ComputeMetrics(tr, len(reqs))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, simulateResponse{
		SeekSequence:    tr.Sequence(),
		TotalSeekTime:   m.TotalSeek,
		AverageSeekTime: round(m.AverageSeek, 2),
		Throughput:      round(m.Throughput, 4),
	})
}

// round truncates x to the given number of decimal places for the wire.
func round(x float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(x*scale) / scale
}
