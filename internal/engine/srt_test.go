package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/me/cpusched/pkg/model"
)

func TestSRT_ClassicPreemption(t *testing.T) {
	in := specs(
		[4]int{1, 0, 8, 0},
		[4]int{2, 1, 4, 0},
		[4]int{3, 2, 9, 0},
		[4]int{4, 3, 5, 0},
	)
	res := mustSimulate(t, in, model.PolicySRT, 0)

	want := []model.Segment{
		{ProcessID: 1, Start: 0, End: 1},
		{ProcessID: 2, Start: 1, End: 5},
		{ProcessID: 4, Start: 5, End: 10},
		{ProcessID: 1, Start: 10, End: 17},
		{ProcessID: 3, Start: 17, End: 26},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}

	wantOrder := []int{2, 4, 1, 3}
	for i, p := range res.Processes {
		if p.ID != wantOrder[i] {
			t.Errorf("completion order[%d] = %d, want %d", i, p.ID, wantOrder[i])
		}
	}

	wantWaiting := map[int]int{1: 9, 2: 0, 3: 15, 4: 2}
	wantResponse := map[int]int{1: 0, 2: 0, 3: 15, 4: 2}
	for _, p := range res.Processes {
		if p.Waiting != wantWaiting[p.ID] {
			t.Errorf("process %d: waiting = %d, want %d", p.ID, p.Waiting, wantWaiting[p.ID])
		}
		if p.Response != wantResponse[p.ID] {
			t.Errorf("process %d: response = %d, want %d", p.ID, p.Response, wantResponse[p.ID])
		}
	}
}

func TestSRT_ResponseSetOnFirstDispatchOnly(t *testing.T) {
	// P1 is preempted by P2 and resumed later; its response time must
	// reflect the first dispatch at t=0, not the resume.
	in := specs(
		[4]int{1, 0, 6, 0},
		[4]int{2, 2, 1, 0},
	)
	res := mustSimulate(t, in, model.PolicySRT, 0)

	for _, p := range res.Processes {
		if p.ID == 1 && p.Response != 0 {
			t.Errorf("process 1: response = %d, want 0", p.Response)
		}
	}
}

func TestSRT_NoPointlessPreemption(t *testing.T) {
	// An arrival with more remaining work than the running process must
	// not interrupt it: the timeline stays a single merged segment each.
	in := specs(
		[4]int{1, 0, 4, 0},
		[4]int{2, 1, 9, 0},
	)
	res := mustSimulate(t, in, model.PolicySRT, 0)

	want := []model.Segment{
		{ProcessID: 1, Start: 0, End: 4},
		{ProcessID: 2, Start: 4, End: 13},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestSRT_IdleGapClosesOpenSegment(t *testing.T) {
	in := specs(
		[4]int{1, 0, 3, 0},
		[4]int{2, 7, 2, 0},
	)
	res := mustSimulate(t, in, model.PolicySRT, 0)

	want := []model.Segment{
		{ProcessID: 1, Start: 0, End: 3},
		{ProcessID: model.IdleID, Start: 3, End: 7},
		{ProcessID: 2, Start: 7, End: 9},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}
