package measure

import (
	"strings"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	m := Run(func() { time.Sleep(2 * time.Millisecond) })
	if e := m.Elapsed(); e < 2*time.Millisecond {
		t.Errorf("elapsed %v, want at least 2ms", e)
	}
	if m.Elapsed() != m.Elapsed() {
		t.Error("stopped measurement still moving")
	}
	if !strings.HasSuffix(m.String(), "s") {
		t.Errorf("formatted as %q", m.String())
	}
	if m.Timestamp.IsZero() {
		t.Error("no timestamp")
	}
}

func TestSeries(t *testing.T) {
	s := Series{Name: "x", N: 10}
	if s.Mean() != 0 || s.StdDev() != 0 {
		t.Error("empty series has stats")
	}
	for _, d := range []time.Duration{10, 20, 30} {
		m := Start()
		m.start = m.start.Add(-d * time.Millisecond)
		m.stop = m.start.Add(d * time.Millisecond)
		s.Add(m)
	}
	if s.Len() != 3 || s.Mean() != 20*time.Millisecond {
		t.Errorf("mean is %v, want 20ms", s.Mean())
	}
	if sd := s.StdDev(); sd < 8*time.Millisecond || sd > 9*time.Millisecond {
		t.Errorf("stddev is %v, want about 8.16ms", sd)
	}
	if s.PerOp() != 2*time.Millisecond {
		t.Errorf("per op is %v, want 2ms", s.PerOp())
	}
	if !strings.HasPrefix(s.String(), "x: 10 ops") {
		t.Errorf("formatted as %q", s.String())
	}
}
