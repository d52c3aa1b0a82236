// Package report renders scoring results as terminal tables.
package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	eventmatch "github.com/jamesainslie/go-eventmatch"
	"github.com/jamesainslie/go-eventmatch/internal/eval"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render formats a scoring result as a table with one row per event type
// and a trailing overall row.
func Render(res *eventmatch.Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("TYPE", "HITS", "MISSES", "FA1", "FA2", "F1")

	for _, key := range res.Keys {
		tr := res.PerType[key]
		t.Row(key,
			strconv.Itoa(tr.Hits),
			strconv.Itoa(tr.Misses),
			strconv.Itoa(tr.FalseAlarms1),
			strconv.Itoa(tr.FalseAlarms2),
			fmt.Sprintf("%.3f", tr.F1))
	}
	o := res.Overall
	t.Row("overall",
		strconv.Itoa(o.Hits),
		strconv.Itoa(o.Misses),
		strconv.Itoa(o.FalseAlarms1),
		strconv.Itoa(o.FalseAlarms2),
		fmt.Sprintf("%.3f", o.F1))

	title := titleStyle.Render(fmt.Sprintf(
		"Event-level agreement (%d samples, IoU >= %.2f)", res.N, res.Threshold))
	return title + "\n" + t.Render()
}

// RenderSweep formats threshold sweep results, best overall F1 first.
func RenderSweep(results []eval.SweepResult) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("THRESHOLD", "HITS", "MISSES", "FA1", "FA2", "F1")

	for _, r := range results {
		o := r.Result.Overall
		t.Row(fmt.Sprintf("%.3f", r.Threshold),
			strconv.Itoa(o.Hits),
			strconv.Itoa(o.Misses),
			strconv.Itoa(o.FalseAlarms1),
			strconv.Itoa(o.FalseAlarms2),
			fmt.Sprintf("%.3f", o.F1))
	}

	title := titleStyle.Render("IoU threshold sweep")
	return title + "\n" + t.Render()
}
