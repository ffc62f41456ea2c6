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

package registry_test

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/clientcfg/registry"
)

// TestConcurrentReplaceAndRead verifies that every set a reader observes is
// exactly one of the sets the writer published, never a mixture.
func TestConcurrentReplaceAndRead(t *testing.T) {
	reg := registry.New()

	const versions = 200
	// Version v has v+1 endpoints, all sharing port v. The empty set is
	// the initial state. A torn read would mix ports or lengths.
	inputs := make([]string, versions)
	for v := range inputs {
		s := ""
		for i := 0; i <= v%8; i++ {
			if i > 0 {
				s += ";"
			}
			s += fmt.Sprintf("10.0.%d.%d:%d", v%256, i, 1000+v)
		}
		inputs[v] = s
	}

	var done atomic.Bool
	g := new(errgroup.Group)

	workers := runtime.GOMAXPROCS(0) * 4
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for !done.Load() {
				eps := reg.Endpoints()
				if len(eps) == 0 {
					continue
				}
				port := eps[0].Addresses[0].Port
				v := port - 1000
				if v < 0 || v >= versions {
					return fmt.Errorf("unknown version port %d", port)
				}
				if len(eps) != v%8+1 {
					return fmt.Errorf("version %d: got %d endpoints, want %d", v, len(eps), v%8+1)
				}
				for i, e := range eps {
					a := e.Addresses[0]
					want := fmt.Sprintf("10.0.%d.%d", v%256, i)
					if a.Port != port || a.Host != want {
						return fmt.Errorf("torn read at %d: %s:%d in version %d", i, a.Host, a.Port, v)
					}
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer done.Store(true)
		for _, in := range inputs {
			if err := reg.Replace(in); err != nil {
				return err
			}
		}
		return nil
	})

	require.NoError(t, g.Wait())
	assert.Equal(t, inputs[versions-1], reg.String())
}

// TestConcurrentWriters ensures writers serialize and the final set is one
// of the inputs in full.
func TestConcurrentWriters(t *testing.T) {
	reg := registry.New()

	inputs := []string{"a:1;a:2", "b:1;b:2;b:3", "c:1", "d:1;d:2;d:3;d:4"}
	g := new(errgroup.Group)
	for w := 0; w < runtime.GOMAXPROCS(0)*2; w++ {
		id := w
		g.Go(func() error {
			for i := 0; i < 500; i++ {
				if err := reg.Replace(inputs[(i+id)%len(inputs)]); err != nil {
					return err
				}
				// Failed replacements interleaved with good ones must be no-ops.
				if err := reg.Replace("broken"); err == nil {
					return fmt.Errorf("expected format error")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Contains(t, inputs, reg.String())
}
