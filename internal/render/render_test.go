package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/me/cpusched/internal/engine"
	"github.com/me/cpusched/pkg/model"
)

func classicResult(t *testing.T, policy model.Policy) *model.SimulationResult {
	t.Helper()
	res, err := engine.Simulate([]model.ProcessSpec{
		{ID: 1, Arrival: 0, Burst: 5},
		{ID: 2, Arrival: 1, Burst: 3},
		{ID: 3, Arrival: 2, Burst: 8},
	}, policy, 2)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	return res
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	WriteResult(&buf, classicResult(t, model.PolicyFCFS))
	out := buf.String()

	for _, want := range []string{"FCFS", "P1", "P2", "P3", "TURNAROUND", "CPU utilization", "100.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteResult_QuantumInTitle(t *testing.T) {
	var buf bytes.Buffer
	WriteResult(&buf, classicResult(t, model.PolicyRoundRobin))
	if !strings.Contains(buf.String(), "RR (quantum 2)") {
		t.Errorf("output missing quantum title:\n%s", buf.String())
	}
}

func TestWriteGantt_IdleSegments(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, []model.Segment{
		{ProcessID: model.IdleID, Start: 0, End: 3},
		{ProcessID: 4, Start: 3, End: 7},
	})
	out := buf.String()

	if !strings.Contains(out, "idle") {
		t.Errorf("gantt missing idle label:\n%s", out)
	}
	if !strings.Contains(out, "P4") {
		t.Errorf("gantt missing process label:\n%s", out)
	}
	// Final boundary time appears on the axis.
	if !strings.Contains(out, "7") {
		t.Errorf("gantt missing end time:\n%s", out)
	}
}

func TestWriteComparison(t *testing.T) {
	var results []*model.SimulationResult
	for _, policy := range model.AllPolicies() {
		results = append(results, classicResult(t, policy))
	}

	var buf bytes.Buffer
	WriteComparison(&buf, results)
	out := buf.String()

	for _, policy := range model.AllPolicies() {
		if !strings.Contains(out, policy.String()) {
			t.Errorf("comparison missing policy %s:\n%s", policy, out)
		}
	}
}
