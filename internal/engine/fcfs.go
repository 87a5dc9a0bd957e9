package engine

import (
	"sort"

	"github.com/me/cpusched/pkg/model"
)

// runFCFS executes processes to completion in arrival order (ties keep input
// order). Returns the records in input order and the raw timeline.
func runFCFS(arena []record) ([]int, []model.Segment) {
	byArrival := make([]int, len(arena))
	for i := range byArrival {
		byArrival[i] = i
	}
	sort.SliceStable(byArrival, func(a, b int) bool {
		return arena[byArrival[a]].spec.Arrival < arena[byArrival[b]].spec.Arrival
	})

	var (
		clock    int
		timeline []model.Segment
	)
	for _, i := range byArrival {
		r := &arena[i]
		if clock < r.spec.Arrival {
			timeline = append(timeline, model.Segment{ProcessID: model.IdleID, Start: clock, End: r.spec.Arrival})
			clock = r.spec.Arrival
		}
		r.response = clock - r.spec.Arrival
		timeline = append(timeline, model.Segment{ProcessID: r.spec.ID, Start: clock, End: clock + r.spec.Burst})
		clock += r.spec.Burst
		r.remaining = 0
		r.completion = clock
	}

	// FCFS reports processes in input order.
	order := make([]int, len(arena))
	for i := range order {
		order[i] = i
	}
	return order, timeline
}
