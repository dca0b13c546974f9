// Package qa runs end-to-end checks of the stop-hook pipeline against
// throwaway directories and reports the outcome.
package qa

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Check is one named verification. Run returns human-readable details and a
// nil error on pass; a non-nil error is the failure reason.
type Check struct {
	Name      string
	Kind      string // "unit", "integration", or "edge"
	Essential bool   // included in quick mode
	Run       func(env *Env) (string, error)
}

// Result records one executed check.
type Result struct {
	Name     string
	Kind     string
	Passed   bool
	Details  string
	Duration time.Duration
}

// Env hands checks isolated temp directories and cleans them up afterwards.
type Env struct {
	dirs []string
}

func (e *Env) TempDir(name string) (string, error) {
	dir, err := os.MkdirTemp("", "qa_"+name+"_")
	if err != nil {
		return "", fmt.Errorf("create check dir: %w", err)
	}
	e.dirs = append(e.dirs, dir)
	return dir, nil
}

func (e *Env) Cleanup() {
	for _, dir := range e.dirs {
		_ = os.RemoveAll(dir)
	}
	e.dirs = nil
}

// Runner executes checks in order, logging progress when Verbose.
type Runner struct {
	Verbose bool
	Out     io.Writer
}

func NewRunner(out io.Writer, verbose bool) *Runner {
	return &Runner{Out: out, Verbose: verbose}
}

func (r *Runner) Run(checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, r.runOne(c))
	}
	return results
}

func (r *Runner) runOne(c Check) Result {
	env := &Env{}
	defer env.Cleanup()

	r.logf("running %s: %s", c.Kind, c.Name)
	start := time.Now()
	details, err := c.Run(env)
	elapsed := time.Since(start)

	res := Result{
		Name:     c.Name,
		Kind:     c.Kind,
		Passed:   err == nil,
		Details:  details,
		Duration: elapsed,
	}
	if err != nil {
		res.Details = err.Error()
		r.logf("%s %s (%s): %v", failMark.Render("FAIL"), c.Name, elapsed.Round(time.Millisecond), err)
	} else {
		r.logf("%s %s (%s)", passMark.Render("PASS"), c.Name, elapsed.Round(time.Millisecond))
	}
	return res
}

func (r *Runner) logf(format string, args ...any) {
	if !r.Verbose || r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, "[%s] %s\n", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}

var (
	passMark = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failMark = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// Essential filters checks down to the quick-mode subset.
func Essential(checks []Check) []Check {
	out := make([]Check, 0, len(checks))
	for _, c := range checks {
		if c.Essential {
			out = append(out, c)
		}
	}
	return out
}
