package qa

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24")).
				Padding(0, 1)
	reportDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Report writes a summary of the results and returns true when every check
// passed.
func Report(w io.Writer, results []Result) bool {
	total := len(results)
	passed := 0
	var totalDuration time.Duration
	for _, r := range results {
		if r.Passed {
			passed++
		}
		totalDuration += r.Duration
	}

	fmt.Fprintln(w, reportTitleStyle.Render("Stop hook QA report"))
	fmt.Fprintf(w, "checks: %d  passed: %d  failed: %d  duration: %s\n",
		total, passed, total-passed, totalDuration.Round(time.Millisecond))

	if passed < total {
		fmt.Fprintln(w)
		fmt.Fprintln(w, failMark.Render("failed checks:"))
		for _, r := range results {
			if r.Passed {
				continue
			}
			fmt.Fprintln(w, ansi.Truncate(fmt.Sprintf("  %s [%s]: %s", r.Name, r.Kind, r.Details), 120, "..."))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportDimStyle.Render("slowest checks:"))
	for i, r := range slowest(results, 5) {
		mark := passMark.Render("ok")
		if !r.Passed {
			mark = failMark.Render("fail")
		}
		fmt.Fprintf(w, "  %d. %s %s (%s)\n", i+1, mark, r.Name, r.Duration.Round(time.Millisecond))
	}

	return passed == total
}

func slowest(results []Result, n int) []Result {
	out := append([]Result(nil), results...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Duration > out[j].Duration
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
