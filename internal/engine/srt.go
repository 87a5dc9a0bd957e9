package engine

import (
	"math"

	"github.com/me/cpusched/pkg/model"
)

// runSRT implements Shortest Remaining Time, preemptively and event-driven:
// instead of ticking one unit at a time, each iteration jumps to the next
// decision point (selected process finishes, or a new process arrives).
// Returns records in completion order.
func runSRT(arena []record) ([]int, []model.Segment) {
	var (
		clock     int
		running   = -1 // arena index of the open segment's owner
		segStart  int
		leftCount = len(arena)
		order     []int
		timeline  []model.Segment
	)

	for leftCount > 0 {
		// Scan for the arrived record with minimum remaining time and for
		// the earliest future arrival. Strict < keeps pool order on ties.
		pick := -1
		nextArrival := math.MaxInt
		for i := range arena {
			r := &arena[i]
			if r.remaining == 0 {
				continue
			}
			if r.spec.Arrival <= clock {
				if pick == -1 || r.remaining < arena[pick].remaining {
					pick = i
				}
			} else if r.spec.Arrival < nextArrival {
				nextArrival = r.spec.Arrival
			}
		}

		if pick == -1 {
			if running != -1 {
				timeline = append(timeline, model.Segment{ProcessID: arena[running].spec.ID, Start: segStart, End: clock})
				running = -1
			}
			timeline = append(timeline, model.Segment{ProcessID: model.IdleID, Start: clock, End: nextArrival})
			clock = nextArrival
			continue
		}

		if pick != running {
			if running != -1 {
				timeline = append(timeline, model.Segment{ProcessID: arena[running].spec.ID, Start: segStart, End: clock})
			}
			running = pick
			segStart = clock
			if arena[pick].response < 0 {
				arena[pick].response = clock - arena[pick].spec.Arrival
			}
		}

		// Run until the selected process finishes or the next arrival,
		// whichever comes first.
		step := arena[pick].remaining
		if nextArrival != math.MaxInt && nextArrival-clock < step {
			step = nextArrival - clock
		}
		clock += step
		arena[pick].remaining -= step

		if arena[pick].remaining == 0 {
			timeline = append(timeline, model.Segment{ProcessID: arena[pick].spec.ID, Start: segStart, End: clock})
			arena[pick].completion = clock
			order = append(order, pick)
			leftCount--
			running = -1
		}
	}
	return order, timeline
}
