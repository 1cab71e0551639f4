package driver

import (
	"encoding/json"
	"fmt"

	"sable/internal/diag"
	"sable/internal/observ"
	"sable/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

func appendTimingDiagnostic(bag *diag.Bag, file source.FileID, payload timingPayload) {
	if bag == nil {
		return
	}
	if payload.Kind == "" {
		payload.Kind = "file"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s, %s", msg, payload.Path)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	span := source.Span{File: file}
	entry := diag.ReportInfo(nil, diag.ObsTimings, span, msg).WithNote(span, string(data)).Diagnostic()

	if bag.Add(entry) {
		return
	}
	// таймингам место всегда находится, даже при переполненном Bag
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
