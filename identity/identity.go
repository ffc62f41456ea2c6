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

// Package identity composes client identifiers from host, process and clock.
package identity

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"dirpx.dev/clientcfg/apis"
)

// Separator joins the parts of a client identifier.
const Separator = "@"

// New returns host@pid@nanos. An empty host is replaced by
// "localhost" so the identifier never starts with the separator.
func New(host apis.HostResolver, proc apis.ProcessIdentity, clock apis.Clock) string {
	h := host.ResolveHost()
	if h == "" {
		h = "localhost"
	}
	var sb strings.Builder
	sb.WriteString(h)
	sb.WriteString(Separator)
	sb.WriteString(strconv.Itoa(proc.PID()))
	sb.WriteString(Separator)
	sb.WriteString(strconv.FormatInt(clock.Nanos(), 10))
	return sb.String()
}

// Parts splits an identifier built by New. Hosts never contain the
// separator, so the last two fields are always pid and nanos.
func Parts(id string) (host, pid, nanos string, ok bool) {
	i := strings.LastIndex(id, Separator)
	if i < 0 {
		return "", "", "", false
	}
	j := strings.LastIndex(id[:i], Separator)
	if j < 0 {
		return "", "", "", false
	}
	return id[:j], id[j+1 : i], id[i+1:], true
}

// Process reports os.Getpid.
type Process struct{}

// PID returns the current process identifier.
func (Process) PID() int { return os.Getpid() }

// SystemClock returns wall-clock nanoseconds, bumped so that no two calls
// in this process return the same value.
type SystemClock struct{}

var last atomic.Int64

// Nanos returns a process-wide strictly increasing timestamp.
func (SystemClock) Nanos() int64 {
	now := time.Now().UnixNano()
	for {
		prev := last.Load()
		next := now
		if next <= prev {
			next = prev + 1
		}
		if last.CompareAndSwap(prev, next) {
			return next
		}
	}
}

// ClockFunc adapts a function to apis.Clock.
type ClockFunc func() int64

// Nanos calls f.
func (f ClockFunc) Nanos() int64 { return f() }

// HostFunc adapts a function to apis.HostResolver.
type HostFunc func() string

// ResolveHost calls f.
func (f HostFunc) ResolveHost() string { return f() }

// PIDFunc adapts a function to apis.ProcessIdentity.
type PIDFunc func() int

// PID calls f.
func (f PIDFunc) PID() int { return f() }
