package engine

import (
	"sort"

	"github.com/me/cpusched/pkg/model"
)

// runRoundRobin cycles a FIFO ready queue with a fixed quantum. A process
// that arrives while a slice is executing enters the queue before the
// preempted process is requeued. Returns records in completion order.
// quantum must be validated positive by the dispatcher.
func runRoundRobin(arena []record, quantum int) ([]int, []model.Segment) {
	byArrival := make([]int, len(arena))
	for i := range byArrival {
		byArrival[i] = i
	}
	sort.SliceStable(byArrival, func(a, b int) bool {
		return arena[byArrival[a]].spec.Arrival < arena[byArrival[b]].spec.Arrival
	})

	var (
		clock     int
		nextAdmit int // cursor into byArrival
		queue     []int
		order     []int
		timeline  []model.Segment
	)

	admit := func() {
		for nextAdmit < len(byArrival) && arena[byArrival[nextAdmit]].spec.Arrival <= clock {
			queue = append(queue, byArrival[nextAdmit])
			nextAdmit++
		}
	}

	for nextAdmit < len(byArrival) || len(queue) > 0 {
		admit()

		if len(queue) == 0 {
			next := arena[byArrival[nextAdmit]].spec.Arrival
			timeline = append(timeline, model.Segment{ProcessID: model.IdleID, Start: clock, End: next})
			clock = next
			continue
		}

		i := queue[0]
		queue = queue[1:]
		r := &arena[i]
		if r.response < 0 {
			r.response = clock - r.spec.Arrival
		}

		slice := quantum
		if r.remaining < slice {
			slice = r.remaining
		}
		timeline = append(timeline, model.Segment{ProcessID: r.spec.ID, Start: clock, End: clock + slice})
		clock += slice
		r.remaining -= slice

		// Arrivals during the slice enter ahead of the preempted process.
		admit()

		if r.remaining > 0 {
			queue = append(queue, i)
		} else {
			r.completion = clock
			order = append(order, i)
		}
	}
	return order, timeline
}
