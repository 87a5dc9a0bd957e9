package engine

import "github.com/me/cpusched/pkg/model"

// runPriority selects, among arrived processes, the one with the lowest
// priority value (lower = more urgent) and runs it to completion. Ties keep
// pool order. Non-preemptive: a more urgent arrival waits for the current
// process to finish.
func runPriority(arena []record) ([]int, []model.Segment) {
	return runNonPreemptive(arena, func(a, b *record) bool {
		return a.spec.Priority < b.spec.Priority
	})
}
