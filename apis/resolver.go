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

// HostResolver supplies the local address used once to build a client identity.
// It must always return a non-empty string and must not block indefinitely.
type HostResolver interface {
	ResolveHost() string
}

// ProcessIdentity supplies the current OS process identifier.
type ProcessIdentity interface {
	PID() int
}

// Clock supplies a high-resolution timestamp in nanoseconds.
type Clock interface {
	Nanos() int64
}
