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

package clientcfg

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/clientcfg/apis"
)

// Option customizes a ClientConfig at construction.
type Option func(*options)

type options struct {
	cfg        apis.Config
	host       apis.HostResolver
	proc       apis.ProcessIdentity
	clock      apis.Clock
	logger     log.Logger
	registerer prometheus.Registerer
	builder    apis.Builder
}

// WithConfig replaces the default settings.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithHostResolver overrides host discovery for the client identity.
func WithHostResolver(r apis.HostResolver) Option {
	return func(o *options) {
		if r != nil {
			o.host = r
		}
	}
}

// WithProcessIdentity overrides the process id source.
func WithProcessIdentity(p apis.ProcessIdentity) Option {
	return func(o *options) {
		if p != nil {
			o.proc = p
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(c apis.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets a go-kit logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers endpoint metrics on r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithBuilder swaps the builder that assembles the registry and resolver.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.builder = b
		}
	}
}
