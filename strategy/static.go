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

package strategy

import (
	"dirpx.dev/clientcfg/apis"
)

// NewStaticStrategy creates an apis.HostStrategy that returns the
// configured HostAddress when one is set.
func NewStaticStrategy() apis.HostStrategy {
	return &staticStrategy{}
}

// staticStrategy is the zero-cost fast path for pinned addresses.
type staticStrategy struct{}

var _ apis.HostStrategy = (*staticStrategy)(nil)

// TryResolveHost returns cfg.HostAddress if non-empty.
func (*staticStrategy) TryResolveHost(cfg apis.Config) (string, bool) {
	if cfg.HostAddress == "" {
		return "", false
	}
	return cfg.HostAddress, true
}
