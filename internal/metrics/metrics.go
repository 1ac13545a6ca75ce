// Package metrics counts kiosk activity on a private Prometheus registry and
// writes it in the node_exporter textfile format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the kiosk counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg            *prometheus.Registry
	resolutions    *prometheus.CounterVec
	overridesAdded prometheus.Counter
	checkIns       prometheus.Counter
}

// New registers the counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nocheckin",
			Name:      "resolutions_total",
			Help:      "Code resolutions by input source and outcome.",
		}, []string{"source", "outcome"}),
		overridesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nocheckin",
			Name:      "overrides_added_total",
			Help:      "User-entered venues persisted to the override store.",
		}),
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nocheckin",
			Name:      "checkins_total",
			Help:      "Check-ins recorded.",
		}),
	}
	m.reg.MustRegister(m.resolutions, m.overridesAdded, m.checkIns)
	return m
}

// Resolution sources.
const (
	SourceScan   = "scan"
	SourceManual = "manual"
	SourceCreate = "create"
)

// ObserveResolution counts one resolution.
func (m *Metrics) ObserveResolution(source, outcome string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(source, outcome).Inc()
}

// ObserveOverrideAdded counts one persisted override.
func (m *Metrics) ObserveOverrideAdded() {
	if m == nil {
		return
	}
	m.overridesAdded.Inc()
}

// ObserveCheckIn counts one recorded check-in.
func (m *Metrics) ObserveCheckIn() {
	if m == nil {
		return
	}
	m.checkIns.Inc()
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes the current values to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.reg)
}
