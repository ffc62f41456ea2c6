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

// Config carries the static client settings. It is passed by value and
// should be treated as immutable by implementations.
type Config struct {
	// Region is the deployment region of the messaging service.
	Region string `yaml:"region"`

	// TenantID scopes the client inside a multi-tenant deployment.
	TenantID string `yaml:"tenant_id"`

	// ServiceName names the messaging service the client talks to.
	ServiceName string `yaml:"service_name"`

	// ResourceScope is the abstract resource name (ARN) applied at construction.
	// Empty leaves the field unset.
	ResourceScope string `yaml:"resource_scope"`

	// NameServerAddr is an initial "host:port;host:port" list.
	// Empty leaves the endpoint set empty.
	NameServerAddr string `yaml:"name_server_addr"`

	// HostAddress pins the local address used for the client identity,
	// skipping interface discovery.
	HostAddress string `yaml:"host_address"`

	// MessageTracing enables message trace reporting in the consuming runtime.
	MessageTracing bool `yaml:"message_tracing"`

	// RPCTracing enables RPC trace reporting in the consuming runtime.
	RPCTracing bool `yaml:"rpc_tracing"`
}
