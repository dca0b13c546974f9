// Package bench measures the latency and allocation cost of the
// analyze/summarize/update pipeline.
package bench

import (
	"math"
	"runtime"
	"time"
)

// Measurement is one timed call: wall-clock duration, bytes allocated during
// the call, and the call's error, if any.
type Measurement struct {
	Duration   time.Duration
	AllocBytes uint64
	Err        error
}

func (m Measurement) OK() bool { return m.Err == nil }

// Measure runs fn once, recording wall-clock time and the heap allocation
// delta around it. Allocation is read from runtime.MemStats; for the short
// single-threaded calls measured here TotalAlloc deltas are stable enough to
// compare against a threshold.
func Measure(fn func() error) Measurement {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	return Measurement{
		Duration:   elapsed,
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		Err:        err,
	}
}

// Stats summarizes the successful measurements of one benchmark bucket.
type Stats struct {
	Total     int
	Succeeded int
	Mean      time.Duration
	Min       time.Duration
	Max       time.Duration
	Stddev    time.Duration
	MeanAlloc uint64
	MaxAlloc  uint64
}

func Summarize(ms []Measurement) Stats {
	st := Stats{Total: len(ms)}
	var durations []float64
	var allocSum uint64

	for _, m := range ms {
		if !m.OK() {
			continue
		}
		st.Succeeded++
		d := m.Duration
		durations = append(durations, float64(d))
		if st.Min == 0 || d < st.Min {
			st.Min = d
		}
		if d > st.Max {
			st.Max = d
		}
		allocSum += m.AllocBytes
		if m.AllocBytes > st.MaxAlloc {
			st.MaxAlloc = m.AllocBytes
		}
	}
	if st.Succeeded == 0 {
		return st
	}

	st.Mean = time.Duration(mean(durations))
	st.MeanAlloc = allocSum / uint64(st.Succeeded)
	if len(durations) > 1 {
		st.Stddev = time.Duration(stddev(durations))
	}
	return st
}

func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
