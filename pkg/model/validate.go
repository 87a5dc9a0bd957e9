package model

import "fmt"

// ValidateProcesses checks a submitted process set against the engine's
// preconditions: at least one process, non-negative arrivals, positive
// bursts, and IDs that are unique and distinct from the idle sentinel.
// Returns one FieldError per violation, or nil when the set is valid.
func ValidateProcesses(specs []ProcessSpec) []FieldError {
	if len(specs) == 0 {
		return []FieldError{{Field: "processes", Message: "at least one process is required"}}
	}

	var errs []FieldError
	seen := make(map[int]bool, len(specs))
	for i, spec := range specs {
		field := fmt.Sprintf("processes[%d]", i)
		if spec.ID == IdleID {
			errs = append(errs, FieldError{Field: field + ".id", Message: fmt.Sprintf("id %d is reserved for idle segments", IdleID)})
		}
		if seen[spec.ID] {
			errs = append(errs, FieldError{Field: field + ".id", Message: fmt.Sprintf("duplicate process id %d", spec.ID)})
		}
		seen[spec.ID] = true
		if spec.Arrival < 0 {
			errs = append(errs, FieldError{Field: field + ".arrival_time", Message: "arrival time must be >= 0"})
		}
		if spec.Burst <= 0 {
			errs = append(errs, FieldError{Field: field + ".burst_time", Message: "burst time must be > 0"})
		}
	}
	return errs
}

// NormalizeForPolicy returns specs with every priority reset to the neutral
// value 0 unless the policy is PRIORITY. The engine never infers priority
// semantics from the policy; callers apply this before invoking it. The
// input slice is not modified.
func NormalizeForPolicy(specs []ProcessSpec, policy Policy) []ProcessSpec {
	if policy == PolicyPriority {
		return specs
	}
	normalized := make([]ProcessSpec, len(specs))
	copy(normalized, specs)
	for i := range normalized {
		normalized[i].Priority = 0
	}
	return normalized
}
