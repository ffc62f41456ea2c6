/*
   Copyright 2025 The DIRPX Authors.

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

package registry

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of one endpoint registry.
type Metrics struct {
	Replacements  prometheus.Counter
	ParseFailures prometheus.Counter
	Endpoints     prometheus.Gauge
}

// NewMetrics creates the registry collectors labelled with group and
// registers them on reg. A nil reg leaves them unregistered. Collectors
// already registered by another registry of the same group are shared.
// Any other registration failure is returned alongside usable, but
// unexported, collectors.
func NewMetrics(reg prometheus.Registerer, group string) (*Metrics, error) {
	labels := prometheus.Labels{"group": group}
	m := &Metrics{
		Replacements: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "clientcfg_endpoint_replacements_total",
			Help:        "Total number of name server sets published",
			ConstLabels: labels,
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "clientcfg_endpoint_parse_failures_total",
			Help:        "Total number of rejected name server address strings",
			ConstLabels: labels,
		}),
		Endpoints: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "clientcfg_endpoints",
			Help:        "Number of name server endpoints currently published",
			ConstLabels: labels,
		}),
	}
	if reg == nil {
		return m, nil
	}
	var errs [3]error
	m.Replacements, errs[0] = register(reg, m.Replacements)
	m.ParseFailures, errs[1] = register(reg, m.ParseFailures)
	m.Endpoints, errs[2] = register(reg, m.Endpoints)
	return m, errors.Join(errs[:]...)
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("clientcfg(registry): register metrics: %w", err)
}
