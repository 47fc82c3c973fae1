// Package metrics provides the Prometheus collectors of the validation service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Lookup kind label values
const (
	LookupPrefix    = "prefix"
	LookupFullMatch = "full_match"
)

// UnknownCountry labels identifiers without a checksum rule.
const UnknownCountry = "unknown"

// Metrics tracks validation outcomes and HTTP latency.
// Each instance owns its registry so servers and tests do not share state.
type Metrics struct {
	Registry *prometheus.Registry

	Validations      *prometheus.CounterVec
	StructureLookups *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered on a fresh
// registry, along with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vatin_validations_total",
			Help: "Total number of VATIN validations by country prefix and result",
		}, []string{"country", "result"}),
		StructureLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vatin_structure_lookups_total",
			Help: "Total number of structure catalog lookups by kind and outcome",
		}, []string{"kind", "found"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vatin_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
	}
}

// RecordValidation counts one validation. country is the registered prefix,
// or UnknownCountry.
func (m *Metrics) RecordValidation(country string, valid bool) {
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.Validations.WithLabelValues(country, result).Inc()
}

// RecordLookup counts one structure lookup of kind.
func (m *Metrics) RecordLookup(kind string, found bool) {
	f := "false"
	if found {
		f = "true"
	}
	m.StructureLookups.WithLabelValues(kind, f).Inc()
}

// ObserveRequest records the duration of a request to route.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(route string, start time.Time) {
	m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}
