package model

// Metrics aggregates per-run performance statistics.
// Times are arithmetic means over all processes; CPUUtilization is a
// percentage of the total observed span, including any leading idle time.
type Metrics struct {
	AvgWaiting     float64 `json:"avg_waiting_time"`
	AvgTurnaround  float64 `json:"avg_turnaround_time"`
	AvgResponse    float64 `json:"avg_response_time"`
	TotalTime      int     `json:"total_time"`
	BusyTime       int     `json:"busy_time"`
	IdleTime       int     `json:"idle_time"`
	CPUUtilization float64 `json:"cpu_utilization"`
	Throughput     float64 `json:"throughput"`
}

// SimulationResult is the complete outcome of one scheduling run.
//
// Processes are ordered by completion for SJF, SRT, PRIORITY, and RR, and in
// input order for FCFS. Timeline segments are sorted by start time, never
// overlap, and adjacent segments never share an occupant.
type SimulationResult struct {
	Policy    Policy          `json:"policy"`
	Quantum   int             `json:"quantum,omitempty"`
	Processes []ProcessResult `json:"processes"`
	Timeline  []Segment       `json:"timeline"`
	Metrics   Metrics         `json:"metrics"`
}
