package server

import (
	"net/http"

	"github.com/me/cpusched/pkg/model"
)

type policyInfo struct {
	Policy       model.Policy `json:"policy"`
	Preemptive   bool         `json:"preemptive"`
	NeedsQuantum bool         `json:"needs_quantum"`
}

func (s *Server) handleListPolicies(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	policies := make([]policyInfo, 0, len(model.AllPolicies()))
	for _, p := range model.AllPolicies() {
		policies = append(policies, policyInfo{
			Policy:       p,
			Preemptive:   p.Preemptive(),
			NeedsQuantum: p.NeedsQuantum(),
		})
	}
	respondOK(w, reqID, map[string]any{"policies": policies})
}
