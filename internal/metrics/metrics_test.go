package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/chime/internal/sim"
)

func sampleReports() []sim.FrameReport {
	return []sim.FrameReport{
		{
			Frame:  1,
			Events: []sim.Event{{Kind: sim.WallX, Body: 0}, {Kind: sim.WallY, Body: 1}},
			Notes: []sim.NoteEvent{
				{Body: 0, Cause: sim.WallX, Note: "C4", Sounded: true},
				{Body: 1, Cause: sim.WallY, Note: "E4", Sounded: true},
			},
		},
		{
			Frame:  2,
			Events: []sim.Event{{Kind: sim.PairHit, Body: 0}, {Kind: sim.PairHit, Body: 1}},
			Pairs:  []sim.Pair{{I: 0, J: 1}},
			Notes: []sim.NoteEvent{
				{Body: 0, Cause: sim.PairHit, Note: "C4", Sounded: false},
				{Body: 1, Cause: sim.PairHit, Note: "G4", Sounded: true},
			},
		},
		{Frame: 3},
	}
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		metric Metric
		want   float64
	}{
		{NewHits(sim.WallX), 1},
		{NewHits(sim.WallY), 1},
		{NewHits(sim.PairHit), 1},
		{NewNotes(), 3},
		{NewSuppressed(), 1},
		{NewNoteRate(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.metric.Name(), func(t *testing.T) {
			for _, r := range sampleReports() {
				tt.metric.Observe(r)
			}
			if got := tt.metric.Value(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
			tt.metric.Reset()
			if got := tt.metric.Value(); got != 0 {
				t.Errorf("Value() after Reset = %v, want 0", got)
			}
		})
	}
}

func TestRecorderSeries(t *testing.T) {
	r := NewRecorder(2, Default()...)
	for _, rep := range sampleReports() {
		r.OnFrame(rep)
	}

	s := r.Series()
	if len(s) != 2 || s[0] != 1 || s[1] != 0 {
		t.Errorf("Series() = %v, want [1 0]", s)
	}
	if v := r.Values()["notes"]; v != 3 {
		t.Errorf("notes = %v, want 3", v)
	}

	r.Reset()
	if len(r.Series()) != 0 || r.Values()["pair_hits"] != 0 {
		t.Error("Reset should clear series and metrics")
	}
}
