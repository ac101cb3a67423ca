package server

import (
	"encoding/json"
	"net/http"

	"github.com/seeksim/seeksim/sim"
)

type comparePolicyResult struct {
	TotalSeekTime int `json:"total_seek_time"`
}

type compareResponse struct {
	Comparison    map[string]comparePolicyResult `json:"comparison"`
	BestAlgorithm string                         `json:"best_algorithm"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var body simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	cfg, err := body.diskConfig()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmp, err := sim.CompareAll(sim.RequestsFromCylinders(body.Requests), cfg)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make(map[string]comparePolicyResult, len(cmp.Results))
	for p, res := range cmp.Results {
		results[string(p)] = comparePolicyResult{TotalSeekTime: res.TotalSeek}
	}
	respondJSON(w, http.StatusOK, compareResponse{
		Comparison:    results,
		BestAlgorithm: string(cmp.Best),
	})
}
