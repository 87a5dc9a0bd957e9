package engine

import "github.com/me/cpusched/pkg/model"

// runSJF selects, among arrived processes, the one with the smallest burst
// time and runs it to completion. Ties keep pool order.
func runSJF(arena []record) ([]int, []model.Segment) {
	return runNonPreemptive(arena, func(a, b *record) bool {
		return a.spec.Burst < b.spec.Burst
	})
}

// runNonPreemptive is the shared event loop for SJF and Priority: pick the
// best available record by the strict comparison better, run it to
// completion, repeat. A strict comparison keeps the first record in pool
// order on ties. Idle gaps advance the clock to the next arrival.
// Returns records in completion order.
func runNonPreemptive(arena []record, better func(a, b *record) bool) ([]int, []model.Segment) {
	pool := make([]int, len(arena))
	for i := range pool {
		pool[i] = i
	}

	var (
		clock    int
		order    []int
		timeline []model.Segment
	)
	for len(pool) > 0 {
		pick := -1
		for _, i := range pool {
			if arena[i].spec.Arrival > clock {
				continue
			}
			if pick == -1 || better(&arena[i], &arena[pick]) {
				pick = i
			}
		}

		if pick == -1 {
			next := arena[pool[0]].spec.Arrival
			for _, i := range pool[1:] {
				if arena[i].spec.Arrival < next {
					next = arena[i].spec.Arrival
				}
			}
			timeline = append(timeline, model.Segment{ProcessID: model.IdleID, Start: clock, End: next})
			clock = next
			continue
		}

		r := &arena[pick]
		r.response = clock - r.spec.Arrival
		timeline = append(timeline, model.Segment{ProcessID: r.spec.ID, Start: clock, End: clock + r.spec.Burst})
		clock += r.spec.Burst
		r.remaining = 0
		r.completion = clock

		for n, i := range pool {
			if i == pick {
				pool = append(pool[:n], pool[n+1:]...)
				break
			}
		}
		order = append(order, pick)
	}
	return order, timeline
}
