// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package labeler

import "github.com/prometheus/client_golang/prometheus"

// NewSelectionsCounter creates an unregistered counter of labeling
// decisions by source.
func NewSelectionsCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "namedloot_label_selections_total",
			Help: "Total number of labeling decisions by source",
		},
		[]string{"source"},
	)
}

// Selections is the process-wide counter used by labelers built without
// WithSelections. Use RegisterMetrics to register this with a Prometheus
// registry.
var Selections = NewSelectionsCounter()

// RegisterMetrics registers labeler metrics with the given registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Selections)
}

// Option configures a Labeler.
type Option func(*Labeler)

// WithSelections makes the labeler count its decisions on c instead of the
// process-wide Selections counter.
func WithSelections(c *prometheus.CounterVec) Option {
	return func(l *Labeler) {
		l.selections = c
	}
}

func (l *Labeler) recordSelection(src Source) {
	l.selections.WithLabelValues(src.String()).Inc()
}
