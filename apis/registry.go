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

// EndpointRegistry holds the ordered set of name server endpoints.
// Implementations must publish replacements atomically: a reader sees
// either the whole previous set or the whole new one.
type EndpointRegistry interface {
	// Replace parses raw ("host:port;host:port") and publishes the result.
	// On error the current set is left untouched.
	Replace(raw string) error
	// Publish replaces the current set with a copy of endpoints. Endpoints
	// without addresses, or with an empty host or out-of-range port, are
	// rejected and the current set is left untouched.
	Publish(endpoints []Endpoint) error
	// Endpoints returns a copy of the current set in insertion order.
	Endpoints() []Endpoint
	// Count returns the number of endpoints in the current set.
	Count() int
	// String renders the current set back into "host:port;host:port" form.
	// Every address of a multi-homed endpoint is listed.
	String() string
}
