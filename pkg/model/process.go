package model

// IdleID is the reserved occupant ID for timeline segments during which no
// process owns the CPU. It is never a valid ProcessSpec ID.
const IdleID = -1

// ProcessSpec describes one process as submitted by the caller.
// IDs must be unique within a single simulation run.
type ProcessSpec struct {
	ID       int `json:"id" yaml:"id"`
	Arrival  int `json:"arrival_time" yaml:"arrival"`
	Burst    int `json:"burst_time" yaml:"burst"`
	Priority int `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// ProcessResult is a finished process with all derived timing fields set.
type ProcessResult struct {
	ProcessSpec
	Completion int `json:"completion_time"`
	Turnaround int `json:"turnaround_time"`
	Waiting    int `json:"waiting_time"`
	Response   int `json:"response_time"`
}

// Segment is one contiguous interval [Start, End) of the execution timeline.
// ProcessID is IdleID when the CPU sat idle.
type Segment struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start_time"`
	End       int `json:"end_time"`
}

// Idle reports whether the segment is an idle gap.
func (s Segment) Idle() bool {
	return s.ProcessID == IdleID
}

// Duration returns the segment length in time units.
func (s Segment) Duration() int {
	return s.End - s.Start
}
