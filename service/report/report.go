// Package report renders workloads, per-policy metrics, policy comparisons
// and text Gantt charts.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/viant/schedsim/model"
)

// Title prints an underlined heading.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// Processes prints a workload.
func Processes(w io.Writer, processes model.Processes) {
	rows := make([][]string, 0, len(processes))
	for _, p := range processes {
		priority := ""
		if p.Priority != nil {
			priority = strconv.Itoa(*p.Priority)
		}
		rows = append(rows, []string{
			strconv.Itoa(p.PID), p.Name, Number(p.Arrival), Number(p.Burst), priority, Number(p.Elapsed),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Name", "Arrival", "Burst", "Priority", "Elapsed"})
	table.AppendBulk(rows)
	table.Render()
}

// Metrics prints the per-process table of a run with averages in the footer
// followed by its global metrics.
func Metrics(w io.Writer, run *model.Run) {
	if run.Failed() {
		_, _ = fmt.Fprintf(w, "%s failed: %s\n", run.Policy, run.Error)
		return
	}
	starved := map[int]bool{}
	for _, pid := range run.Starved {
		starved[pid] = true
	}
	rows := make([][]string, 0, len(run.Metrics))
	for _, m := range run.Metrics {
		flag := ""
		if starved[m.PID] {
			flag = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(m.PID), Number(m.Arrival), Number(m.Burst), Number(m.LastFinish),
			Number(m.Turnaround), Number(m.Waiting), Number(m.Response), flag,
		})
	}
	g := run.Global
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Finish", "Turnaround", "Waiting", "Response", "Starved"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", g.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", g.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", g.AvgResponse),
		strconv.Itoa(len(run.Starved))})
	table.Render()

	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Metric", "Value"})
	summary.AppendBulk([][]string{
		{"Processes", strconv.Itoa(g.ProcessCount)},
		{"Makespan", Number(g.Makespan)},
		{"CPU Utilization (%)", fmt.Sprintf("%.2f", g.CPUUtilization)},
		{"Throughput", fmt.Sprintf("%.4f", g.Throughput)},
		{"Context Switches", strconv.Itoa(g.ContextSwitches)},
		{"Waiting min/max", fmt.Sprintf("%s / %s", Number(g.MinWaiting), Number(g.MaxWaiting))},
		{"Waiting stddev", fmt.Sprintf("%.4f", g.StdDevWaiting)},
		{"Idle Time", Number(g.IdleTime)},
	})
	summary.Render()
}

// Comparison prints one summary row per run.
func Comparison(w io.Writer, runs []*model.Run) {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		if run == nil {
			continue
		}
		if run.Failed() {
			rows = append(rows, []string{run.Policy, "-", "-", "-", "-", "-", "-", run.Error})
			continue
		}
		g := run.Global
		rows = append(rows, []string{
			run.Policy,
			fmt.Sprintf("%.2f", g.AvgWaiting),
			fmt.Sprintf("%.2f", g.AvgTurnaround),
			fmt.Sprintf("%.2f", g.AvgResponse),
			fmt.Sprintf("%.2f", g.CPUUtilization),
			strconv.Itoa(g.ContextSwitches),
			fmt.Sprintf("%.4f", g.Throughput),
			starvedList(run.Starved),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scheduler", "Avg Waiting", "Avg Turnaround", "Avg Response", "CPU Util (%)", "Context Switches", "Throughput", "Starved"})
	table.AppendBulk(rows)
	table.Render()
}

// Number formats a simulated time without trailing zeros.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func starvedList(pids []int) string {
	if len(pids) == 0 {
		return "none"
	}
	ret := make([]string, len(pids))
	for i, pid := range pids {
		ret[i] = strconv.Itoa(pid)
	}
	return strings.Join(ret, ",")
}
