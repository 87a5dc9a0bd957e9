package engine

import "github.com/me/cpusched/pkg/model"

// mergeTimeline drops zero-length segments and coalesces adjacent segments
// with the same occupant. Simulators emit segments in non-decreasing start
// order, so a single pass suffices.
func mergeTimeline(segments []model.Segment) []model.Segment {
	merged := make([]model.Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Duration() == 0 {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].ProcessID == seg.ProcessID && merged[n-1].End == seg.Start {
			merged[n-1].End = seg.End
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}
