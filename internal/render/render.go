// Package render writes simulation results as text: an ASCII gantt chart
// plus tablewriter schedule and metrics tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/me/cpusched/pkg/model"
	"github.com/olekukonko/tablewriter"
)

// WriteResult writes the gantt chart, per-process schedule table, and
// aggregate metrics for one simulation.
func WriteResult(w io.Writer, res *model.SimulationResult) {
	title := res.Policy.String()
	if res.Policy.NeedsQuantum() {
		title = fmt.Sprintf("%s (quantum %d)", res.Policy, res.Quantum)
	}
	fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("-", len(title)))

	WriteGantt(w, res.Timeline)
	writeSchedule(w, res)
	writeMetrics(w, res.Metrics)
}

// WriteGantt renders the timeline as a bar of occupant labels with the
// segment boundary times beneath.
func WriteGantt(w io.Writer, timeline []model.Segment) {
	if len(timeline) == 0 {
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, seg := range timeline {
		label := "idle"
		if !seg.Idle() {
			label = "P" + strconv.Itoa(seg.ProcessID)
		}
		cell := fmt.Sprintf(" %-5s", label)
		bar.WriteString(cell + "|")
		axis.WriteString(fmt.Sprintf("%-*d", len(cell)+1, seg.Start))
	}
	axis.WriteString(strconv.Itoa(timeline[len(timeline)-1].End))

	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, axis.String())
	fmt.Fprintln(w)
}

func writeSchedule(w io.Writer, res *model.SimulationResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	for _, p := range res.Processes {
		table.Append([]string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Completion),
			strconv.Itoa(p.Turnaround),
			strconv.Itoa(p.Waiting),
			strconv.Itoa(p.Response),
		})
	}
	m := res.Metrics
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", m.AvgTurnaround),
		fmt.Sprintf("%.2f", m.AvgWaiting),
		fmt.Sprintf("%.2f", m.AvgResponse),
	})
	table.Render()
	fmt.Fprintln(w)
}

func writeMetrics(w io.Writer, m model.Metrics) {
	fmt.Fprintf(w, "Total time:       %d\n", m.TotalTime)
	fmt.Fprintf(w, "Busy / idle:      %d / %d\n", m.BusyTime, m.IdleTime)
	fmt.Fprintf(w, "CPU utilization:  %.2f%%\n", m.CPUUtilization)
	fmt.Fprintf(w, "Throughput:       %.3f proc/unit\n", m.Throughput)
}

// WriteComparison renders one summary row per policy.
func WriteComparison(w io.Writer, results []*model.SimulationResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround", "Avg Response", "Total Time", "Utilization"})
	for _, res := range results {
		m := res.Metrics
		table.Append([]string{
			res.Policy.String(),
			fmt.Sprintf("%.2f", m.AvgWaiting),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.AvgResponse),
			strconv.Itoa(m.TotalTime),
			fmt.Sprintf("%.2f%%", m.CPUUtilization),
		})
	}
	table.Render()
}
