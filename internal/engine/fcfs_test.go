package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/me/cpusched/pkg/model"
)

func TestFCFS_Classic(t *testing.T) {
	in := specs(
		[4]int{1, 0, 5, 0},
		[4]int{2, 1, 3, 0},
		[4]int{3, 2, 8, 0},
	)
	res := mustSimulate(t, in, model.PolicyFCFS, 0)

	wantTimeline := []model.Segment{
		{ProcessID: 1, Start: 0, End: 5},
		{ProcessID: 2, Start: 5, End: 8},
		{ProcessID: 3, Start: 8, End: 16},
	}
	if diff := cmp.Diff(wantTimeline, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}

	wantWaiting := map[int]int{1: 0, 2: 4, 3: 6}
	for _, p := range res.Processes {
		if p.Waiting != wantWaiting[p.ID] {
			t.Errorf("process %d: waiting = %d, want %d", p.ID, p.Waiting, wantWaiting[p.ID])
		}
	}

	if res.Metrics.TotalTime != 16 {
		t.Errorf("total time = %d, want 16", res.Metrics.TotalTime)
	}
	if res.Metrics.CPUUtilization != 100 {
		t.Errorf("utilization = %v, want 100", res.Metrics.CPUUtilization)
	}
}

func TestFCFS_IdleGapBetweenArrivals(t *testing.T) {
	in := specs(
		[4]int{1, 0, 2, 0},
		[4]int{2, 6, 3, 0},
	)
	res := mustSimulate(t, in, model.PolicyFCFS, 0)

	want := []model.Segment{
		{ProcessID: 1, Start: 0, End: 2},
		{ProcessID: model.IdleID, Start: 2, End: 6},
		{ProcessID: 2, Start: 6, End: 9},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}

	// The process that ends the idle gap starts the moment it arrives.
	for _, p := range res.Processes {
		if p.ID == 2 && p.Response != 0 {
			t.Errorf("process 2: response = %d, want 0", p.Response)
		}
	}
}

func TestFCFS_ArrivalTiesKeepInputOrder(t *testing.T) {
	in := specs(
		[4]int{5, 0, 3, 0},
		[4]int{6, 0, 2, 0},
		[4]int{7, 0, 1, 0},
	)
	res := mustSimulate(t, in, model.PolicyFCFS, 0)

	want := []model.Segment{
		{ProcessID: 5, Start: 0, End: 3},
		{ProcessID: 6, Start: 3, End: 5},
		{ProcessID: 7, Start: 5, End: 6},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}
