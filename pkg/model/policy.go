package model

import (
	"fmt"
	"strings"
)

// Policy selects one of the supported scheduling algorithms.
type Policy string

const (
	PolicyFCFS       Policy = "FCFS"
	PolicySJF        Policy = "SJF"
	PolicySRT        Policy = "SRT"
	PolicyPriority   Policy = "PRIORITY"
	PolicyRoundRobin Policy = "RR"
)

// String returns the canonical policy name.
func (p Policy) String() string {
	return string(p)
}

// Valid reports whether p is one of the supported policies.
func (p Policy) Valid() bool {
	switch p {
	case PolicyFCFS, PolicySJF, PolicySRT, PolicyPriority, PolicyRoundRobin:
		return true
	}
	return false
}

// NeedsQuantum reports whether the policy requires a positive time quantum.
func (p Policy) NeedsQuantum() bool {
	return p == PolicyRoundRobin
}

// Preemptive reports whether the policy may suspend a running process.
func (p Policy) Preemptive() bool {
	return p == PolicySRT || p == PolicyRoundRobin
}

// AllPolicies returns the supported policies in presentation order.
func AllPolicies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicySRT, PolicyPriority, PolicyRoundRobin}
}

// ParsePolicy converts a user-supplied policy name to a Policy.
// Matching is case-insensitive and accepts common aliases.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first_come_first_serve", "firstcomefirstserve":
		return PolicyFCFS, nil
	case "sjf", "shortest_job_first", "shortestjobfirst":
		return PolicySJF, nil
	case "srt", "srtf", "shortest_remaining_time":
		return PolicySRT, nil
	case "priority", "prio":
		return PolicyPriority, nil
	case "rr", "roundrobin", "round_robin":
		return PolicyRoundRobin, nil
	}
	return "", fmt.Errorf("unknown scheduling policy %q", s)
}
