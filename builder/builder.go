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

package builder

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"dirpx.dev/clientcfg/apis"
	"dirpx.dev/clientcfg/registry"
	"dirpx.dev/clientcfg/resolver"
	"dirpx.dev/clientcfg/strategy"
)

// New returns the default apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder wires the stock registry and host strategies. It is stateless.
type builder struct{}

// BuildRegistry builds an endpoint registry that logs and reports metrics
// through deps. Endpoints of prev, if any, are carried over. Metric
// registration and migration failures are logged; the registry is still
// returned.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.EndpointRegistry, deps apis.Deps) apis.EndpointRegistry {
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	m, err := registry.NewMetrics(deps.Registerer, deps.Group)
	if err != nil {
		level.Warn(logger).Log("msg", "endpoint metrics not exported", "group", deps.Group, "err", err)
	}
	nreg := registry.New(registry.WithLogger(logger), registry.WithMetrics(m))
	if prev != nil {
		if err := nreg.Publish(prev.Endpoints()); err != nil {
			level.Warn(logger).Log("msg", "previous endpoints not migrated", "group", deps.Group, "err", err)
		}
	}
	return nreg
}

// BuildResolver builds the default host resolver chain:
// configured address, then interface scan, then loopback.
func (b *builder) BuildResolver(cfg apis.Config, deps apis.Deps) apis.HostResolver {
	return resolver.New(cfg, deps.Logger,
		strategy.NewStaticStrategy(),
		strategy.NewInterfaceStrategy(nil),
		strategy.NewLoopbackStrategy(),
	)
}
