package driver

import (
	"encoding/json"
	"fmt"

	"fncomp/internal/diag"
	"fncomp/internal/observ"
	"fncomp/internal/source"
)

type timingPayload struct {
	Kind        string               `json:"kind"`
	Path        string               `json:"path,omitempty"`
	TotalMS     float64              `json:"total_ms"`
	Phases      []observ.PhaseReport `json:"phases"`
	CacheHits   int64                `json:"cache_hits,omitempty"`
	CacheMisses int64                `json:"cache_misses,omitempty"`
}

// TimingDiagnostic summarises timer (and cache counters) as an info
// diagnostic whose note carries the JSON payload.
func TimingDiagnostic(timer *observ.Timer, cache *DiskCache, path string) diag.Diagnostic {
	report := timer.Report()
	hits, misses := cache.Stats()
	payload := timingPayload{
		Kind:        "expand",
		Path:        path,
		TotalMS:     report.TotalMS,
		Phases:      report.Phases,
		CacheHits:   hits,
		CacheMisses: misses,
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if path != "" {
		msg = fmt.Sprintf("%s: %s", msg, path)
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.NoSpan, msg)
	if data, err := json.Marshal(payload); err == nil {
		d = d.WithNote(source.NoSpan, string(data))
	}
	return d
}
