package observ_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sable/internal/observ"
)

func TestTimerReport(t *testing.T) {
	tm := observ.NewTimer()
	stopLex := tm.Track("lex")
	stopLex("12 tokens")
	stopLex("ignored")
	tm.Track("parse")("")

	require.Len(t, tm.Phases(), 2)
	r := tm.Report()
	require.Len(t, r.Phases, 2)
	assert.Equal(t, "lex", r.Phases[0].Name)
	assert.Equal(t, "12 tokens", r.Phases[0].Note)
	assert.Equal(t, "parse", r.Phases[1].Name)
	assert.GreaterOrEqual(t, r.TotalMS, r.Phases[0].DurationMS)

	summary := r.Summary()
	assert.Contains(t, summary, "(12 tokens)")
	assert.Contains(t, summary, "total")
	assert.Empty(t, observ.NewTimer().Report().Phases)
}

func TestMetricsObserveAndServe(t *testing.T) {
	m := observ.NewMetrics()
	m.FilesTotal.WithLabelValues("ok").Inc()
	m.ObserveReport(observ.Report{Phases: []observ.PhaseReport{{Name: "parse", DurationMS: 2}}})
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	got := map[string]int{}
	for _, mf := range families {
		got[mf.GetName()] = len(mf.GetMetric())
	}
	assert.Equal(t, 1, got["sable_files_total"])
	assert.Equal(t, 1, got["sable_phase_seconds"])

	var nilMetrics *observ.Metrics
	nilMetrics.ObserveReport(observ.Report{})

	srv := observ.NewServer("127.0.0.1:0", m)
	require.NoError(t, srv.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "sable_files_total"))
}
