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

// LoopbackAddress is returned by the loopback strategy.
const LoopbackAddress = "127.0.0.1"

// NewLoopbackStrategy creates an apis.HostStrategy that always handles
// with LoopbackAddress. Place it last in a chain.
func NewLoopbackStrategy() apis.HostStrategy {
	return loopbackStrategy{}
}

type loopbackStrategy struct{}

// TryResolveHost always returns LoopbackAddress.
func (loopbackStrategy) TryResolveHost(_ apis.Config) (string, bool) {
	return LoopbackAddress, true
}
