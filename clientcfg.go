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

package clientcfg

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"dirpx.dev/clientcfg/apis"
	"dirpx.dev/clientcfg/builder"
	"dirpx.dev/clientcfg/config"
	"dirpx.dev/clientcfg/identity"
)

// ClientConfig is the identity and name server registry of one logical client.
// All methods are safe for concurrent use.
type ClientConfig struct {
	groupName string
	clientID  string
	region    string
	tenantID  string

	endpoints apis.EndpointRegistry

	// wmu orders write-once setters against Seal.
	wmu           sync.Mutex
	sealed        atomic.Bool
	resourceScope atomic.Pointer[string]
	credential    atomic.Pointer[apis.Credential]

	serviceName    atomic.Pointer[string]
	messageTracing atomic.Bool
	rpcTracing     atomic.Bool

	logger log.Logger
}

var _ apis.CredentialsProvider = (*ClientConfig)(nil)

// New builds the client identity and an empty endpoint set for groupName.
// It never fails: host discovery degrades to a placeholder, and a malformed
// Config.NameServerAddr is logged and leaves the set empty.
func New(groupName string, opts ...Option) *ClientConfig {
	o := options{
		cfg:     config.DefaultConfig(),
		proc:    identity.Process{},
		clock:   identity.SystemClock{},
		logger:  log.NewNopLogger(),
		builder: builder.New(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg.Region == "" {
		o.cfg.Region = config.DefaultRegion
	}
	if o.cfg.ServiceName == "" {
		o.cfg.ServiceName = config.DefaultServiceName
	}

	deps := apis.Deps{Group: groupName, Logger: o.logger, Registerer: o.registerer}
	if o.host == nil {
		o.host = o.builder.BuildResolver(o.cfg, deps)
		if o.host == nil {
			panic(ErrNilResolver)
		}
	}
	reg := o.builder.BuildRegistry(o.cfg, nil, deps)
	if reg == nil {
		panic(ErrNilRegistry)
	}

	c := &ClientConfig{
		groupName: groupName,
		clientID:  identity.New(o.host, o.proc, o.clock),
		region:    o.cfg.Region,
		tenantID:  o.cfg.TenantID,
		endpoints: reg,
	}
	c.logger = log.With(o.logger, "group", groupName, "client_id", c.clientID)

	scope := o.cfg.ResourceScope
	c.resourceScope.Store(&scope)
	name := o.cfg.ServiceName
	c.serviceName.Store(&name)
	c.messageTracing.Store(o.cfg.MessageTracing)
	c.rpcTracing.Store(o.cfg.RPCTracing)

	if o.cfg.NameServerAddr != "" {
		if err := c.endpoints.Replace(o.cfg.NameServerAddr); err != nil {
			level.Warn(c.logger).Log("msg", "ignoring configured name server address", "err", err)
		}
	}
	level.Debug(c.logger).Log("msg", "client config created", "endpoints", c.endpoints.Count())
	return c
}

// GroupName returns the caller-supplied group label.
func (c *ClientConfig) GroupName() string { return c.groupName }

// ClientID returns the identifier built at construction.
func (c *ClientConfig) ClientID() string { return c.clientID }

// Region returns the deployment region.
func (c *ClientConfig) Region() string { return c.region }

// TenantID returns the tenant scope, empty when unset.
func (c *ClientConfig) TenantID() string { return c.tenantID }

// ReplaceEndpoints parses raw ("host:port;host:port") and atomically
// replaces the whole endpoint set. On error the current set is kept and
// the error matches ErrFormat.
func (c *ClientConfig) ReplaceEndpoints(raw string) error {
	if err := c.endpoints.Replace(raw); err != nil {
		return err
	}
	level.Debug(c.logger).Log("msg", "name servers replaced", "addr", raw)
	return nil
}

// SetNameServerAddr is ReplaceEndpoints.
func (c *ClientConfig) SetNameServerAddr(raw string) error {
	return c.ReplaceEndpoints(raw)
}

// Endpoints returns a copy of the current endpoint set in insertion order.
func (c *ClientConfig) Endpoints() []apis.Endpoint {
	return c.endpoints.Endpoints()
}

// NameServerAddr renders the current set as "host:port;host:port".
func (c *ClientConfig) NameServerAddr() string {
	return c.endpoints.String()
}

// Registry exposes the endpoint registry to runtimes that publish
// pre-built (e.g. multi-homed) endpoints.
func (c *ClientConfig) Registry() apis.EndpointRegistry {
	return c.endpoints
}

// SetResourceScope sets the abstract resource name. Must be called before
// the client starts.
func (c *ClientConfig) SetResourceScope(arn string) error {
	if arn == "" {
		return fmt.Errorf("%w: resource scope is empty", ErrInvalidArgument)
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if c.sealed.Load() {
		return fmt.Errorf("%w: resource scope", ErrSealed)
	}
	c.resourceScope.Store(&arn)
	return nil
}

// SetArn is SetResourceScope.
func (c *ClientConfig) SetArn(arn string) error {
	return c.SetResourceScope(arn)
}

// ResourceScope returns the abstract resource name, empty when unset.
func (c *ClientConfig) ResourceScope() string {
	return *c.resourceScope.Load()
}

// Arn is ResourceScope.
func (c *ClientConfig) Arn() string {
	return c.ResourceScope()
}

// SetAccessCredential stores a copy of cred. Must be called before the
// client starts. A nil credential or one without an access key is rejected.
func (c *ClientConfig) SetAccessCredential(cred *apis.Credential) error {
	if !cred.Valid() {
		return fmt.Errorf("%w: access credential is empty", ErrInvalidArgument)
	}
	cp := *cred
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if c.sealed.Load() {
		return fmt.Errorf("%w: access credential", ErrSealed)
	}
	c.credential.Store(&cp)
	return nil
}

// AccessCredential returns a copy of the credential, or nil if unset.
func (c *ClientConfig) AccessCredential() *apis.Credential {
	cred := c.credential.Load()
	if cred == nil {
		return nil
	}
	cp := *cred
	return &cp
}

// Seal marks the client as started. Afterwards the resource scope and
// access credential can no longer change. Sealing twice is a no-op.
func (c *ClientConfig) Seal() {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if c.sealed.Swap(true) {
		return
	}
	level.Debug(c.logger).Log("msg", "client config sealed")
}

// Sealed reports whether Seal has been called.
func (c *ClientConfig) Sealed() bool {
	return c.sealed.Load()
}

// ServiceName returns the messaging service name.
func (c *ClientConfig) ServiceName() string {
	return *c.serviceName.Load()
}

// SetServiceName replaces the messaging service name.
func (c *ClientConfig) SetServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: service name is empty", ErrInvalidArgument)
	}
	c.serviceName.Store(&name)
	return nil
}

// MessageTracingEnabled reports whether message tracing is on.
func (c *ClientConfig) MessageTracingEnabled() bool {
	return c.messageTracing.Load()
}

// SetMessageTracingEnabled toggles message tracing.
func (c *ClientConfig) SetMessageTracingEnabled(enabled bool) {
	c.messageTracing.Store(enabled)
}

// RPCTracingEnabled reports whether RPC tracing is on.
func (c *ClientConfig) RPCTracingEnabled() bool {
	return c.rpcTracing.Load()
}

// SetRPCTracingEnabled toggles RPC tracing.
func (c *ClientConfig) SetRPCTracingEnabled(enabled bool) {
	c.rpcTracing.Store(enabled)
}
