package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "cpusched API",
		Version:     "v1",
		Description: "CPU scheduling simulation: FCFS, SJF, SRT, Priority, and Round Robin timelines and metrics",
		Endpoints: []endpointInfo{
			{"/api/v1/policies", []string{"GET"}, "List supported scheduling policies"},
			{"/api/v1/simulations", []string{"POST"}, "Run one simulation for a process set and policy"},
			{"/api/v1/simulations/compare", []string{"POST"}, "Run every policy over one process set"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
