package engine

import "github.com/me/cpusched/pkg/model"

// aggregate computes average timing metrics over the finished records plus
// span-derived statistics from the merged timeline. The dispatcher rejects
// empty process sets, so the averages are always well-defined here.
func aggregate(processes []model.ProcessResult, timeline []model.Segment) model.Metrics {
	var m model.Metrics

	var waiting, turnaround, response int
	for _, p := range processes {
		waiting += p.Waiting
		turnaround += p.Turnaround
		response += p.Response
	}
	n := float64(len(processes))
	m.AvgWaiting = float64(waiting) / n
	m.AvgTurnaround = float64(turnaround) / n
	m.AvgResponse = float64(response) / n

	if len(timeline) == 0 {
		return m
	}

	m.TotalTime = timeline[len(timeline)-1].End
	for _, seg := range timeline {
		if !seg.Idle() {
			m.BusyTime += seg.Duration()
		}
	}
	m.IdleTime = m.TotalTime - m.BusyTime
	m.CPUUtilization = float64(m.BusyTime) / float64(m.TotalTime) * 100
	m.Throughput = n / float64(m.TotalTime)
	return m
}
