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

package resolver

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"dirpx.dev/clientcfg/apis"
)

// UnknownHostPrefix starts the placeholder returned when no strategy handles.
const UnknownHostPrefix = "unknown-"

// New returns a HostResolver that asks each strategy in turn for the local
// address, passing cfg to every one. Nil entries are dropped. Concurrent
// ResolveHost calls are safe when the strategies are.
func New(cfg apis.Config, logger log.Logger, strategies ...apis.HostStrategy) apis.HostResolver {
	out := make([]apis.HostStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return chain{cfg: cfg, logger: logger, strats: out}
}

// chain holds the strategies in lookup order. It is never modified after New.
type chain struct {
	cfg    apis.Config
	logger log.Logger
	strats []apis.HostStrategy
}

// ResolveHost runs strategies in order until one handles. When none does,
// it returns a random placeholder so identities built from it stay
// distinct across hosts that all failed discovery.
func (r chain) ResolveHost() string {
	for _, s := range r.strats {
		if host, ok := s.TryResolveHost(r.cfg); ok && host != "" {
			return host
		}
	}
	host := UnknownHostPrefix + uuid.NewString()
	level.Warn(r.logger).Log("msg", "local address discovery failed, using placeholder", "host", host)
	return host
}
