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

package apis

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Builder composes EndpointRegistry and HostResolver from a Config.
// Implementations may migrate state from a previous registry, or ignore it.
type Builder interface {
	// BuildRegistry constructs an EndpointRegistry. When prev is non-nil its
	// endpoints are carried over.
	BuildRegistry(cfg Config, prev EndpointRegistry, deps Deps) EndpointRegistry
	// BuildResolver constructs the HostResolver used for identity construction.
	BuildResolver(cfg Config, deps Deps) HostResolver
}

// Deps carries ambient collaborators handed to a Builder.
// Zero values are valid: a nil Logger means no logging and a nil
// Registerer leaves metrics unregistered.
type Deps struct {
	// Group labels metrics with the owning client group.
	Group      string
	Logger     log.Logger
	Registerer prometheus.Registerer
}
