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

package config

import (
	"dirpx.dev/clientcfg/apis"
)

const (
	// DefaultRegion is the region used when none is configured.
	DefaultRegion = "cn-hangzhou"
	// DefaultServiceName is the messaging service name used when none is configured.
	DefaultServiceName = "aone"
	// DefaultMessageTracing leaves message trace reporting off.
	DefaultMessageTracing = false
	// DefaultRPCTracing leaves RPC trace reporting off.
	DefaultRPCTracing = false
)

// NewConfig applies opts, in order, on top of DefaultConfig.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig returns the client settings used when nothing is configured:
// region cn-hangzhou, service aone, tracing off, no name servers.
func DefaultConfig() apis.Config {
	return apis.Config{
		Region:         DefaultRegion,
		ServiceName:    DefaultServiceName,
		MessageTracing: DefaultMessageTracing,
		RPCTracing:     DefaultRPCTracing,
	}
}

// Option adjusts one client setting.
type Option func(*apis.Config)

// WithRegion sets the Region option.
// An empty region resets to the default.
func WithRegion(region string) Option {
	return func(c *apis.Config) {
		if region == "" {
			c.Region = DefaultRegion
			return
		}
		c.Region = region
	}
}

// WithTenantID sets the TenantID option.
func WithTenantID(id string) Option {
	return func(c *apis.Config) {
		c.TenantID = id
	}
}

// WithServiceName sets the ServiceName option.
// An empty name resets to the default.
func WithServiceName(name string) Option {
	return func(c *apis.Config) {
		if name == "" {
			c.ServiceName = DefaultServiceName
			return
		}
		c.ServiceName = name
	}
}

// WithResourceScope sets the ResourceScope option.
func WithResourceScope(arn string) Option {
	return func(c *apis.Config) {
		c.ResourceScope = arn
	}
}

// WithNameServerAddr sets the NameServerAddr option.
func WithNameServerAddr(addr string) Option {
	return func(c *apis.Config) {
		c.NameServerAddr = addr
	}
}

// WithHostAddress sets the HostAddress option.
func WithHostAddress(host string) Option {
	return func(c *apis.Config) {
		c.HostAddress = host
	}
}

// WithMessageTracing sets the MessageTracing option.
func WithMessageTracing(enabled bool) Option {
	return func(c *apis.Config) {
		c.MessageTracing = enabled
	}
}

// WithRPCTracing sets the RPCTracing option.
func WithRPCTracing(enabled bool) Option {
	return func(c *apis.Config) {
		c.RPCTracing = enabled
	}
}
