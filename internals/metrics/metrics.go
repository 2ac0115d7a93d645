// Package metrics holds the Prometheus collectors of the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "quranku"

// Metrics contains every collector the service updates.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	SurahQueries *prometheus.CounterVec
	CacheLookups *prometheus.CounterVec

	DatasetAyahs       prometheus.Gauge
	DatasetSurahs      prometheus.Gauge
	DatasetTranslators prometheus.Gauge
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SurahQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "surah",
				Name:      "queries_total",
				Help:      "Resolved surah queries by response kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "surah",
				Name:      "cache_lookups_total",
				Help:      "Response cache lookups (hit|miss)",
			},
			[]string{"result"},
		),
		DatasetAyahs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "ayahs",
			Help:      "Ayah rows loaded at startup",
		}),
		DatasetSurahs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "surahs",
			Help:      "Distinct surahs loaded at startup",
		}),
		DatasetTranslators: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "translators",
			Help:      "Translation columns loaded at startup",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.HTTPRequests,
		m.HTTPDuration,
		m.SurahQueries,
		m.CacheLookups,
		m.DatasetAyahs,
		m.DatasetSurahs,
		m.DatasetTranslators,
	}
}

// Registry owns a private Prometheus registry so tests can build as many as
// they need.
type Registry struct {
	prom    *prometheus.Registry
	Metrics *Metrics
}

func NewRegistry() *Registry {
	r := &Registry{
		prom:    prometheus.NewRegistry(),
		Metrics: NewMetrics(),
	}
	r.prom.MustRegister(r.Metrics.collectors()...)
	r.prom.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) Prometheus() *prometheus.Registry {
	return r.prom
}

// ObserveDataset records the size of the loaded dataset.
func (m *Metrics) ObserveDataset(ayahs, surahs, translators int) {
	if m == nil {
		return
	}
	m.DatasetAyahs.Set(float64(ayahs))
	m.DatasetSurahs.Set(float64(surahs))
	m.DatasetTranslators.Set(float64(translators))
}

func (m *Metrics) ObserveQuery(kind, outcome string) {
	if m == nil {
		return
	}
	m.SurahQueries.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
