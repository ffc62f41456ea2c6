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
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"dirpx.dev/clientcfg/apis"
)

// Option configures a registry built by New.
type Option func(*registry)

// WithLogger sets the logger used to report replacements and rejected input.
func WithLogger(logger log.Logger) Option {
	return func(r *registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(r *registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// New constructs an empty EndpointRegistry.
func New(opts ...Option) apis.EndpointRegistry {
	m, _ := NewMetrics(nil, "")
	r := &registry{
		logger:  log.NewNopLogger(),
		metrics: m,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cur.Store(&snapshot{})
	return r
}

// registry publishes immutable snapshots through an atomic pointer.
// Readers load the pointer and never lock; writers build a new snapshot
// under mu and swap it in.
type registry struct {
	// mu serializes writers so snapshots are published one at a time.
	mu sync.Mutex
	// cur is the published snapshot. Never mutate what it points to.
	cur atomic.Pointer[snapshot]

	logger  log.Logger
	metrics *Metrics
}

// snapshot is an immutable endpoint set.
type snapshot struct {
	endpoints []apis.Endpoint
}

// Replace parses raw and publishes it. Parsing happens inside the writer
// section, so two concurrent replacements are applied in lock order and a
// failed parse never touches the published set.
func (r *registry) Replace(raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	eps, err := Parse(raw)
	if err != nil {
		r.metrics.ParseFailures.Inc()
		level.Debug(r.logger).Log("msg", "rejected name server address", "input", raw, "err", err)
		return err
	}
	r.publishLocked(eps)
	return nil
}

// Publish copies endpoints, validates the copy and publishes it.
// An invalid endpoint leaves the current set untouched.
func (r *registry) Publish(endpoints []apis.Endpoint) error {
	eps := make([]apis.Endpoint, len(endpoints))
	for i, e := range endpoints {
		eps[i] = e.Clone()
	}
	if err := Validate(eps); err != nil {
		r.metrics.ParseFailures.Inc()
		level.Debug(r.logger).Log("msg", "rejected endpoints", "err", err)
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishLocked(eps)
	return nil
}

func (r *registry) publishLocked(eps []apis.Endpoint) {
	r.cur.Store(&snapshot{endpoints: eps})
	r.metrics.Replacements.Inc()
	r.metrics.Endpoints.Set(float64(len(eps)))
	level.Debug(r.logger).Log("msg", "published name server set", "count", len(eps))
}

// Endpoints returns a deep copy of the published set.
func (r *registry) Endpoints() []apis.Endpoint {
	s := r.cur.Load()
	out := make([]apis.Endpoint, len(s.endpoints))
	for i, e := range s.endpoints {
		out[i] = e.Clone()
	}
	return out
}

// Count returns the size of the published set.
func (r *registry) Count() int {
	return len(r.cur.Load().endpoints)
}

// String renders the published set in "host:port;host:port" form.
func (r *registry) String() string {
	return Format(r.cur.Load().endpoints)
}
