// Package engine implements the CPU-scheduling simulation core: five
// scheduling policies (FCFS, SJF, SRT, Priority, Round Robin) computed as a
// pure function over a set of process descriptors.
//
// Each run clones the caller's descriptors into an arena of mutable records
// addressed by index; pools, queues, and the "currently running" pointer all
// hold arena indices, so identity checks are plain index comparisons. The
// engine keeps no state between runs and is safe for concurrent use.
package engine

import (
	"errors"
	"fmt"

	"github.com/me/cpusched/pkg/model"
)

var (
	// ErrInvalidQuantum is returned when Round Robin is requested with a
	// non-positive time quantum.
	ErrInvalidQuantum = errors.New("round robin quantum must be positive")

	// ErrNoProcesses is returned when the input process set is empty.
	ErrNoProcesses = errors.New("at least one process is required")

	// ErrUnknownPolicy is returned for a policy the engine does not implement.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)

// record is the mutable working copy of one process for the duration of a
// single run.
type record struct {
	spec       model.ProcessSpec
	remaining  int
	completion int
	response   int // -1 until first dispatch
}

// newArena clones the caller's descriptors into working records. The
// caller's slice is never mutated.
func newArena(specs []model.ProcessSpec) []record {
	arena := make([]record, len(specs))
	for i, spec := range specs {
		arena[i] = record{
			spec:      spec,
			remaining: spec.Burst,
			response:  -1,
		}
	}
	return arena
}

// Simulate runs the requested policy over the given process set and returns
// the finished records, the merged timeline, and aggregate metrics.
//
// quantum is only consulted for RR and must be positive there; all other
// policies ignore it.
func Simulate(specs []model.ProcessSpec, policy model.Policy, quantum int) (*model.SimulationResult, error) {
	if len(specs) == 0 {
		return nil, ErrNoProcesses
	}
	if policy.NeedsQuantum() && quantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}

	arena := newArena(specs)

	var (
		order    []int
		timeline []model.Segment
	)
	switch policy {
	case model.PolicyFCFS:
		order, timeline = runFCFS(arena)
	case model.PolicySJF:
		order, timeline = runSJF(arena)
	case model.PolicySRT:
		order, timeline = runSRT(arena)
	case model.PolicyPriority:
		order, timeline = runPriority(arena)
	case model.PolicyRoundRobin:
		order, timeline = runRoundRobin(arena, quantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	timeline = mergeTimeline(timeline)

	processes := make([]model.ProcessResult, 0, len(order))
	for _, i := range order {
		processes = append(processes, finishRecord(&arena[i]))
	}

	res := &model.SimulationResult{
		Policy:    policy,
		Processes: processes,
		Timeline:  timeline,
		Metrics:   aggregate(processes, timeline),
	}
	if policy.NeedsQuantum() {
		res.Quantum = quantum
	}
	return res, nil
}

// finishRecord derives the output timing fields from a completed record.
func finishRecord(r *record) model.ProcessResult {
	turnaround := r.completion - r.spec.Arrival
	return model.ProcessResult{
		ProcessSpec: r.spec,
		Completion:  r.completion,
		Turnaround:  turnaround,
		Waiting:     turnaround - r.spec.Burst,
		Response:    r.response,
	}
}
