/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package telemetry exposes Prometheus counters for cipher runs and
// reconfigurations.
//
// Metrics:
//   - dxvig_transforms_total: runs by variant and direction
//   - dxvig_symbols_total: content symbols by variant, direction and class
//   - dxvig_reconfigurations_total: reconfiguration attempts by result
//
// A nil *Metrics is valid and records nothing.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "dxvig"

// Directions.
const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

// Symbol classes.
const (
	ClassSubstituted = "substituted"
	ClassPassed      = "passed"
	ClassDropped     = "dropped"
)

// Reconfiguration results.
const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
)

// Metrics holds the registered counters.
type Metrics struct {
	transformsTotal       *prometheus.CounterVec
	symbolsTotal          *prometheus.CounterVec
	reconfigurationsTotal *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg. If reg is
// nil, a fresh prometheus.Registry is used, which keeps the counters private
// to the returned Metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		transformsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "transforms_total",
				Help:      "Total number of cipher runs",
			},
			[]string{"variant", "direction"},
		),

		symbolsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "symbols_total",
				Help:      "Total number of content symbols processed, by class",
			},
			[]string{"variant", "direction", "class"},
		),

		reconfigurationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "reconfigurations_total",
				Help:      "Total number of reconfiguration attempts",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.transformsTotal,
		m.symbolsTotal,
		m.reconfigurationsTotal,
	)

	return m
}

// ObserveTransform records one run. Zero counts still touch the series so
// they show up in scrapes.
func (m *Metrics) ObserveTransform(variant string, encode bool, substituted, passed, dropped int) {
	if m == nil {
		return
	}

	direction := DirectionDecode
	if encode {
		direction = DirectionEncode
	}

	m.transformsTotal.WithLabelValues(variant, direction).Inc()
	m.symbolsTotal.WithLabelValues(variant, direction, ClassSubstituted).Add(float64(substituted))
	m.symbolsTotal.WithLabelValues(variant, direction, ClassPassed).Add(float64(passed))
	m.symbolsTotal.WithLabelValues(variant, direction, ClassDropped).Add(float64(dropped))
}

// ObserveReconfigure records one reconfiguration attempt.
func (m *Metrics) ObserveReconfigure(applied bool) {
	if m == nil {
		return
	}

	result := ResultRejected
	if applied {
		result = ResultApplied
	}
	m.reconfigurationsTotal.WithLabelValues(result).Inc()
}
