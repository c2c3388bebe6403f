package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/viant/schedsim/model"
)

const cellWidth = 8

// Gantt prints the timeline as a row of labelled cells with slice
// boundaries underneath; idle slices are labelled "idle".
func Gantt(w io.Writer, timeline *model.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if timeline.Len() == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	var labels, times strings.Builder
	labels.WriteString("|")
	for _, slice := range timeline.Slices {
		label := fmt.Sprint(slice.PID)
		if slice.IsIdle() {
			label = "idle"
		}
		labels.WriteString(center(label, cellWidth))
		labels.WriteString("|")
		times.WriteString(pad(Number(slice.Start), cellWidth+1))
	}
	times.WriteString(Number(timeline.Slices[len(timeline.Slices)-1].Finish))
	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintln(w, times.String())
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}

func pad(text string, width int) string {
	if len(text) >= width {
		return text + " "
	}
	return text + strings.Repeat(" ", width-len(text))
}
