// Package measure times runs of a function and summarises series of timings.
package measure

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Measurement of a single run.
type Measurement struct {
	Timestamp   time.Time //wall clock time when the measurement started
	start, stop time.Time
}

// Start a measurement now.
func Start() *Measurement {
	now := time.Now()
	return &Measurement{Timestamp: now, start: now}
}

// Stop the measurement. Calling Stop again moves the end.
func (m *Measurement) Stop() {
	m.stop = time.Now()
}

// Elapsed between Start and Stop, or until now if Stop wasn't called yet.
func (m *Measurement) Elapsed() time.Duration {
	if m.stop.IsZero() {
		return time.Since(m.start)
	}
	return m.stop.Sub(m.start)
}

func (m *Measurement) String() string {
	return humanize.SI(m.Elapsed().Seconds(), "s")
}

// Run f and measure it.
func Run(f func()) *Measurement {
	m := Start()
	f()
	m.Stop()
	return m
}

// Series of measurements of the same operation, each covering n calls.
type Series struct {
	Name    string
	N       uint
	samples []time.Duration
}

func (s *Series) Add(m *Measurement) {
	s.samples = append(s.samples, m.Elapsed())
}

func (s *Series) Len() int {
	return len(s.samples)
}

// Mean duration of a sample.
func (s *Series) Mean() time.Duration {
	if len(s.samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range s.samples {
		sum += v
	}
	return sum / time.Duration(len(s.samples))
}

// StdDev of the samples.
func (s *Series) StdDev() time.Duration {
	if len(s.samples) == 0 {
		return 0
	}
	avg := float64(s.Mean())
	var sum float64
	for _, v := range s.samples {
		a := float64(v) - avg
		sum += a * a
	}
	return time.Duration(math.Sqrt(sum / float64(len(s.samples))))
}

// PerOp is the mean duration divided by N.
func (s *Series) PerOp() time.Duration {
	if s.N == 0 {
		return s.Mean()
	}
	return s.Mean() / time.Duration(s.N)
}

func (s *Series) String() string {
	return fmt.Sprintf("%s: %s ops, mean %s, stddev %s, %s/op", s.Name, humanize.Comma(int64(s.N)),
		humanize.SI(s.Mean().Seconds(), "s"), humanize.SI(s.StdDev().Seconds(), "s"), humanize.SI(s.PerOp().Seconds(), "s"))
}
