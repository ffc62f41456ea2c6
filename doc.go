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

// Package clientcfg holds the identity and name server registry of a
// messaging client.
//
// A ClientConfig is created once per logical client, keyed by a group
// name, and is read by the producer and consumer runtimes on every remote
// call. It owns three things:
//
//   - ClientID: "host@pid@nanos", built once at construction from three
//     narrow collaborators (apis.HostResolver, apis.ProcessIdentity and
//     apis.Clock). Host discovery never fails: it falls back to loopback
//     and, if every strategy declines, to a random placeholder.
//
//   - Endpoints: the ordered set of name server endpoints. The set is
//     replaced wholesale from a "host:port;host:port" string.
//
//   - Write-once fields: the resource scope (ARN) and the access
//     credential. Empty values are rejected with ErrInvalidArgument.
//
// # Concurrency model
//
// The endpoint set lives in an immutable snapshot behind an atomic pointer.
// Readers load the pointer and copy; they never lock and never wait on a
// writer. Writers take a mutex, parse the whole input privately, and publish
// the new snapshot in one store:
//
//	cfg := clientcfg.New("G1")
//	if err := cfg.ReplaceEndpoints("10.0.0.1:9876;10.0.0.2:9876"); err != nil {
//		// errors.Is(err, clientcfg.ErrFormat); the previous set is intact
//	}
//	for _, ep := range cfg.Endpoints() {
//		_ = ep.Addresses[0]
//	}
//
// A reader therefore sees either the entire previous set or the entire new
// one. A read that starts after ReplaceEndpoints returned sees the new set.
//
// Scalars that may change after construction (service name, tracing flags,
// resource scope, credential) are published through sync/atomic values.
//
// # Sealing
//
// The resource scope and credential are meant to be set before the client
// starts. The surrounding runtime calls Seal when it starts the client;
// afterwards both setters return ErrSealed. Until then they overwrite.
//
// # Observability
//
// Logging goes through a go-kit logger (WithLogger); endpoint metrics are
// registered on a Prometheus registerer (WithRegisterer). Both are off by
// default.
package clientcfg
