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

package resolver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"dirpx.dev/clientcfg/apis"
	"dirpx.dev/clientcfg/resolver"
	"dirpx.dev/clientcfg/strategy"
)

type fixed struct {
	host    string
	handled bool
	calls   *int
}

func (f fixed) TryResolveHost(apis.Config) (string, bool) {
	if f.calls != nil {
		*f.calls++
	}
	return f.host, f.handled
}

func TestResolveHost_FirstHandledWins(t *testing.T) {
	var later int
	r := resolver.New(apis.Config{}, nil,
		nil,
		fixed{host: "", handled: false},
		fixed{host: "10.0.0.9", handled: true},
		fixed{host: "10.0.0.10", handled: true, calls: &later},
	)

	assert.Equal(t, "10.0.0.9", r.ResolveHost())
	assert.Zero(t, later, "strategies after a hit must not run")
}

func TestResolveHost_EmptyHandledFallsThrough(t *testing.T) {
	r := resolver.New(apis.Config{}, nil,
		fixed{host: "", handled: true},
		strategy.NewLoopbackStrategy(),
	)
	assert.Equal(t, strategy.LoopbackAddress, r.ResolveHost())
}

func TestResolveHost_PassesConfig(t *testing.T) {
	r := resolver.New(apis.Config{HostAddress: "172.20.0.2"}, nil, strategy.NewStaticStrategy())
	assert.Equal(t, "172.20.0.2", r.ResolveHost())
}

func TestResolveHost_PlaceholderWhenNothingHandles(t *testing.T) {
	var buf bytes.Buffer
	r := resolver.New(apis.Config{}, log.NewLogfmtLogger(&buf), fixed{})

	a := r.ResolveHost()
	b := r.ResolveHost()

	assert.True(t, strings.HasPrefix(a, resolver.UnknownHostPrefix), a)
	assert.Greater(t, len(a), len(resolver.UnknownHostPrefix))
	assert.NotEqual(t, a, b)
	assert.Contains(t, buf.String(), "level=warn")
}
