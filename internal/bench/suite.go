package bench

import (
	"errors"
	"fmt"
	"os"

	"status-trace/internal/activity"
	"status-trace/internal/fixture"
	"status-trace/internal/summary"
	"status-trace/internal/timeline"
)

// Thresholds the report checks each bucket against.
const (
	MaxExecutionTime = 100e6 // 100ms, in nanoseconds
	MaxAllocBytes    = 50 * 1024 * 1024
	MinSuccessRate   = 0.99
)

// Result is one measurement tagged with the bucket it belongs to.
type Result struct {
	Category string
	Label    string
	Measurement
}

// Suite runs every benchmark bucket Iterations times against throwaway
// directories.
type Suite struct {
	Iterations int
}

func NewSuite(iterations int) *Suite {
	if iterations < 1 {
		iterations = 1
	}
	return &Suite{Iterations: iterations}
}

// Run executes the full suite and returns every measurement taken. It fails
// only on fixture setup problems; pipeline failures are recorded in the
// measurements themselves.
func (s *Suite) Run() ([]Result, error) {
	var results []Result

	for _, size := range []fixture.SummarySize{fixture.SummarySmall, fixture.SummaryMedium, fixture.SummaryLarge} {
		ms, err := s.benchTimelineUpdate(size)
		if err != nil {
			return nil, err
		}
		results = append(results, ms...)
	}

	for _, count := range []int{10, 50, 100, 500} {
		ms, err := s.benchSessionAnalysis(count)
		if err != nil {
			return nil, err
		}
		results = append(results, ms...)
	}

	for _, grade := range []fixture.Grade{fixture.GradeSimple, fixture.GradeMedium, fixture.GradeComplex} {
		results = append(results, s.benchSummaryGeneration(grade)...)
	}

	return results, nil
}

func (s *Suite) benchTimelineUpdate(size fixture.SummarySize) ([]Result, error) {
	payload := fixture.SummaryOfSize(size)
	out := make([]Result, 0, s.Iterations)

	for i := 0; i < s.Iterations; i++ {
		dir, err := os.MkdirTemp("", "bench_timeline_")
		if err != nil {
			return nil, fmt.Errorf("create bench dir: %w", err)
		}
		m := Measure(func() error {
			return timeline.Update(dir, payload)
		})
		_ = os.RemoveAll(dir)
		out = append(out, Result{Category: "timeline_updates", Label: string(size), Measurement: m})
	}
	return out, nil
}

func (s *Suite) benchSessionAnalysis(eventCount int) ([]Result, error) {
	root, err := os.MkdirTemp("", "bench_sessions_")
	if err != nil {
		return nil, fmt.Errorf("create sessions root: %w", err)
	}
	defer os.RemoveAll(root)

	sessionID := fixture.NewSessionID("bench")
	if err := fixture.WriteSessionLog(root, sessionID, "pre_tool_use.json", fixture.ToolEvents(eventCount)); err != nil {
		return nil, err
	}

	analyzer := activity.NewAnalyzer(root)
	out := make([]Result, 0, s.Iterations)
	for i := 0; i < s.Iterations; i++ {
		m := Measure(func() error {
			rec := analyzer.Analyze(sessionID)
			if len(rec.ToolsUsed) == 0 {
				return errors.New("analysis returned no tools for populated session")
			}
			return nil
		})
		out = append(out, Result{
			Category:    "session_analysis",
			Label:       fmt.Sprintf("%d events", eventCount),
			Measurement: m,
		})
	}
	return out, nil
}

func (s *Suite) benchSummaryGeneration(grade fixture.Grade) []Result {
	rec := fixture.RecordOfGrade(grade)
	out := make([]Result, 0, s.Iterations)
	for i := 0; i < s.Iterations; i++ {
		m := Measure(func() error {
			if summary.Generate(rec) == "" {
				return errors.New("empty summary")
			}
			return nil
		})
		out = append(out, Result{Category: "summary_generation", Label: string(grade), Measurement: m})
	}
	return out
}
