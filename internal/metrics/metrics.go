// Package metrics exposes data-quality and session counters. Nothing is
// served over the network; the registry is read back by the diagnostics
// command.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/ademuri/music-trends/internal/catalog"
)

const namespace = "music_trends"

// Metrics is a set of collectors bound to a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	RowsLoaded          prometheus.Counter
	FieldsDefaulted     *prometheus.CounterVec
	UnparseableDates    prometheus.Counter
	UnknownGenres       prometheus.Counter
	RowsOutOfRange      prometheus.Counter
	WorkingSetSize      prometheus.Gauge
	SceneRenders        *prometheus.CounterVec
	RejectedTransitions *prometheus.CounterVec
}

// New registers a fresh set of collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		RowsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "Rows read from the source table",
		}),
		FieldsDefaulted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_defaulted_total",
			Help:      "Numeric fields that failed to parse and were set to 0",
		}, []string{"column"}),
		UnparseableDates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unparseable_dates_total",
			Help:      "Release dates that matched no known format",
		}),
		UnknownGenres: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_genres_total",
			Help:      "Rows whose primary genre resolved to Unknown",
		}),
		RowsOutOfRange: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_out_of_range_total",
			Help:      "Rows dropped by the release-year filter",
		}),
		WorkingSetSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "working_set_tracks",
			Help:      "Tracks in the working set",
		}),
		SceneRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scene_renders_total",
			Help:      "Scene renders by scene",
		}, []string{"scene"}),
		RejectedTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_transitions_total",
			Help:      "State transitions rejected as invalid",
		}, []string{"reason"}),
	}
}

// RecordCatalog adds the load diagnostics of c.
func (m *Metrics) RecordCatalog(c *catalog.Catalog) {
	d := c.Diagnostics()
	m.RowsLoaded.Add(float64(d.Rows))
	for _, col := range catalog.Columns {
		if n := d.DefaultedFields[col]; n > 0 {
			m.FieldsDefaulted.WithLabelValues(col).Add(float64(n))
		}
	}
	m.UnparseableDates.Add(float64(d.UnparseableDates))
	m.UnknownGenres.Add(float64(d.UnknownGenres))
	m.RowsOutOfRange.Add(float64(d.OutOfRange))
	m.WorkingSetSize.Set(float64(c.Len()))
}

// Sample is one gathered series.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Samples gathers every series in the registry, sorted by name and labels.
func (m *Metrics) Samples() ([]Sample, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: formatLabels(metric.GetLabel()),
				Value:  value(mf.GetType(), metric),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%s", p.GetName(), p.GetValue()))
	}
	return strings.Join(parts, ",")
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
