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

import (
	"net"
	"strconv"
	"strings"
)

// AddressScheme tags how the hosts of an Endpoint are to be interpreted.
type AddressScheme int

const (
	// IPv4 hosts are dotted-quad literals. It is the default scheme.
	IPv4 AddressScheme = iota
	// IPv6 hosts are IPv6 literals.
	IPv6
	// DomainName hosts are DNS names resolved by the consuming runtime.
	DomainName
)

// String returns the lowercase scheme tag.
func (s AddressScheme) String() string {
	switch s {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	case DomainName:
		return "dns"
	default:
		return "unknown"
	}
}

// Address is a single host/port pair.
type Address struct {
	Host string
	Port int
}

// String renders the address in host:port form, bracketing IPv6 hosts.
func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Endpoint is one logical name server node. A multi-homed node carries
// more than one Address. Endpoints are values: never mutate one that has
// been handed to a registry.
type Endpoint struct {
	Scheme    AddressScheme
	Addresses []Address
}

// NewEndpoint builds an Endpoint owning a private copy of addrs.
func NewEndpoint(scheme AddressScheme, addrs ...Address) Endpoint {
	return Endpoint{Scheme: scheme, Addresses: append([]Address(nil), addrs...)}
}

// Clone returns a deep copy of e.
func (e Endpoint) Clone() Endpoint {
	return NewEndpoint(e.Scheme, e.Addresses...)
}

// String returns the endpoint facade, e.g. "ipv4:10.0.0.1:9876".
// Addresses of a multi-homed endpoint are joined with commas.
func (e Endpoint) String() string {
	parts := make([]string, 0, len(e.Addresses))
	for _, a := range e.Addresses {
		parts = append(parts, a.String())
	}
	return e.Scheme.String() + ":" + strings.Join(parts, ",")
}
