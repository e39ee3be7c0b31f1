package observ

import (
	"strings"
	"testing"
)

func TestTimerPhasesInOrder(t *testing.T) {
	timer := NewTimer()
	a := timer.Begin("tokenize")
	timer.End(a, "")
	b := timer.Begin("parse")
	timer.End(b, "3 items")
	timer.End(42, "ignored")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "tokenize" || report.Phases[1].Name != "parse" {
		t.Fatalf("unexpected phase order %+v", report.Phases)
	}
	if report.Phases[1].Note != "3 items" {
		t.Fatalf("note = %q", report.Phases[1].Note)
	}
	summary := timer.Summary()
	for _, want := range []string{"timings:", "tokenize", "// 3 items", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected %q in summary:\n%s", want, summary)
		}
	}
}

func TestNilTimerIsNoop(t *testing.T) {
	var timer *Timer
	idx := timer.Begin("parse")
	timer.End(idx, "")
	if r := timer.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("nil timer reported %+v", r)
	}
}

func TestAggregate(t *testing.T) {
	a := &Report{TotalMS: 3, Phases: []PhaseReport{{Name: "tokenize", DurationMS: 1}, {Name: "parse", DurationMS: 2}}}
	b := &Report{TotalMS: 5, Phases: []PhaseReport{{Name: "parse", DurationMS: 4}, {Name: "load", DurationMS: 1}}}
	got := Aggregate(a, nil, b)
	if got.TotalMS != 8 {
		t.Fatalf("total = %v", got.TotalMS)
	}
	want := []PhaseReport{{Name: "tokenize", DurationMS: 1}, {Name: "parse", DurationMS: 6}, {Name: "load", DurationMS: 1}}
	if len(got.Phases) != len(want) {
		t.Fatalf("phases = %+v", got.Phases)
	}
	for i := range want {
		if got.Phases[i] != want[i] {
			t.Errorf("phase %d = %+v, want %+v", i, got.Phases[i], want[i])
		}
	}
}
