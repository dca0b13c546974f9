package bench

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Report writes a per-bucket breakdown of the results and checks each
// category against the latency, allocation, and success-rate thresholds. It
// returns true when every threshold holds.
func Report(w io.Writer, results []Result) bool {
	fmt.Fprintln(w, titleStyle.Render("Performance benchmark report"))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(
		"thresholds: max %s per call, max %s allocated, min %.0f%% success",
		time.Duration(MaxExecutionTime), formatBytes(MaxAllocBytes), MinSuccessRate*100,
	)))
	fmt.Fprintln(w)

	pass := true
	for _, category := range orderedCategories(results) {
		fmt.Fprintln(w, categoryStyle.Render(strings.ReplaceAll(category, "_", " ")))
		for _, label := range orderedLabels(results, category) {
			st := Summarize(selectResults(results, category, label))
			line := fmt.Sprintf("  %-14s n=%-3d mean=%-10s max=%-10s stddev=%-10s alloc=%s",
				label, st.Total,
				st.Mean.Round(time.Microsecond),
				st.Max.Round(time.Microsecond),
				st.Stddev.Round(time.Microsecond),
				formatBytes(st.MeanAlloc),
			)
			fmt.Fprintln(w, ansi.Truncate(line, 110, "..."))

			for _, violation := range violations(st) {
				pass = false
				fmt.Fprintln(w, warnStyle.Render("    ! "+violation))
			}
		}
		fmt.Fprintln(w)
	}

	if pass {
		fmt.Fprintln(w, okStyle.Render("All performance thresholds met"))
	} else {
		fmt.Fprintln(w, warnStyle.Render("Some performance thresholds exceeded"))
	}
	return pass
}

func violations(st Stats) []string {
	var out []string
	if st.Max > time.Duration(MaxExecutionTime) {
		out = append(out, fmt.Sprintf("max execution time %s exceeds %s",
			st.Max.Round(time.Microsecond), time.Duration(MaxExecutionTime)))
	}
	if st.MaxAlloc > MaxAllocBytes {
		out = append(out, fmt.Sprintf("max allocation %s exceeds %s",
			formatBytes(st.MaxAlloc), formatBytes(MaxAllocBytes)))
	}
	if st.SuccessRate() < MinSuccessRate {
		out = append(out, fmt.Sprintf("success rate %.1f%% below %.0f%%",
			st.SuccessRate()*100, MinSuccessRate*100))
	}
	return out
}

func orderedCategories(results []Result) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range results {
		if _, ok := seen[r.Category]; !ok {
			seen[r.Category] = struct{}{}
			out = append(out, r.Category)
		}
	}
	return out
}

func orderedLabels(results []Result, category string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range results {
		if r.Category != category {
			continue
		}
		if _, ok := seen[r.Label]; !ok {
			seen[r.Label] = struct{}{}
			out = append(out, r.Label)
		}
	}
	return out
}

func selectResults(results []Result, category, label string) []Measurement {
	var out []Measurement
	for _, r := range results {
		if r.Category == category && r.Label == label {
			out = append(out, r.Measurement)
		}
	}
	return out
}

// SlowestFirst orders a copy of the results by duration, slowest first.
func SlowestFirst(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Duration > out[j].Duration
	})
	return out
}

func formatBytes(n uint64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1fKB", float64(n)/1024)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
