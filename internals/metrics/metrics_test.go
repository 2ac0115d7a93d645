package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.Metrics)

	r.Metrics.ObserveDataset(6236, 114, 3)
	r.Metrics.ObserveQuery("listing", "ok")
	r.Metrics.ObserveCache(true)
	r.Metrics.ObserveCache(false)
	r.Metrics.ObserveCache(false)

	assert.Equal(t, 6236.0, testutil.ToFloat64(r.Metrics.DatasetAyahs))
	assert.Equal(t, 114.0, testutil.ToFloat64(r.Metrics.DatasetSurahs))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Metrics.SurahQueries.WithLabelValues("listing", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Metrics.CacheLookups.WithLabelValues("miss")))

	families, err := r.Prometheus().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["quranku_dataset_ayahs"])
	assert.True(t, names["quranku_surah_queries_total"])
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDataset(1, 1, 1)
		m.ObserveQuery("info", "ok")
		m.ObserveCache(true)
	})
}
