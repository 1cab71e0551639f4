package observ

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the analysis counters. Each instance registers on its own
// registry, so tests can create as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	FilesTotal      *prometheus.CounterVec
	PhaseFailures   *prometheus.CounterVec
	CheckFailures   *prometheus.CounterVec
	IssuesTotal     *prometheus.CounterVec
	PhaseDuration   *prometheus.HistogramVec
	CacheHits       prometheus.Counter
	WatcherRebuilds prometheus.Counter
}

// NewMetrics creates the analysis metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		FilesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sable_files_total",
			Help: "Analysed files by outcome.",
		}, []string{"status"}),
		PhaseFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sable_phase_failures_total",
			Help: "Files aborted in a pipeline phase.",
		}, []string{"phase"}),
		CheckFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sable_check_failures_total",
			Help: "Checks that failed on a file.",
		}, []string{"check"}),
		IssuesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sable_issues_total",
			Help: "Issues reported per check.",
		}, []string{"check"}),
		PhaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sable_phase_seconds",
			Help:    "Time spent in a pipeline phase for one file.",
			Buckets: prometheus.DefBuckets,
		}, []string{"phase"}),
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "sable_cache_hits_total",
			Help: "Files answered from the result cache.",
		}),
		WatcherRebuilds: f.NewCounter(prometheus.CounterOpts{
			Name: "sable_watcher_rebuilds_total",
			Help: "Re-analyses triggered by file system events.",
		}),
	}
}

// ObserveReport records every phase of a timer report. Nil-safe.
func (m *Metrics) ObserveReport(r Report) {
	if m == nil {
		return
	}
	for _, p := range r.Phases {
		m.PhaseDuration.WithLabelValues(p.Name).Observe(time.Duration(p.DurationMS * float64(time.Millisecond)).Seconds())
	}
}
