package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAddAccumulates(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
		}()
	}
	wg.Wait()

	r := tm.Report()
	if len(r.Phases) != 1 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Count != 8 || r.Phases[0].DurationMS != 8 {
		t.Errorf("phase = %+v", r.Phases[0])
	}
	// Add-фазы не входят в total
	if r.TotalMS != 0 {
		t.Errorf("total = %v", r.TotalMS)
	}
}

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("expand")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	s := tm.Summary()
	if !strings.Contains(s, "expand") || !strings.Contains(s, "// 3 files") || !strings.Contains(s, "total") {
		t.Errorf("summary = %q", s)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Add("x", time.Second)
	tm.End(tm.Begin("y"), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Errorf("nil timer report = %+v", r)
	}
}
