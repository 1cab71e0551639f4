package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one measured step of a file's pipeline.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer measures pipeline phases of one file. Not safe for concurrent use:
// each worker owns its timer.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates an empty Timer on the wall clock.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4), now: time.Now} }

// Track starts phase name. The returned func stops it and attaches note;
// calling it again has no effect.
func (t *Timer) Track(name string) func(note string) {
	start := t.now()
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name})
	done := false
	return func(note string) {
		if done {
			return
		}
		done = true
		t.phases[idx].Dur = t.now().Sub(start)
		t.phases[idx].Note = note
	}
}

// Phases returns the recorded phases in start order. Read-only.
func (t *Timer) Phases() []Phase { return t.phases }

// PhaseReport представляет сжатую информацию о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	r := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		r.Phases[i] = PhaseReport{Name: p.Name, DurationMS: millis(p.Dur), Note: p.Note}
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned table for terminals.
func (r Report) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&sb, "  %-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  (" + p.Note + ")")
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-10s %8.2f ms\n", "total", r.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
