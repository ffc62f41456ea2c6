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

package strategy

import (
	"net"

	"dirpx.dev/clientcfg/apis"
)

// AddrsFunc lists local interface addresses. net.InterfaceAddrs is the
// production implementation.
type AddrsFunc func() ([]net.Addr, error)

// NewInterfaceStrategy creates an apis.HostStrategy that scans local
// interface addresses. A nil addrs uses net.InterfaceAddrs.
//
// Preference order:
//  1. non-loopback IPv4 outside 192.168.0.0/16
//  2. any other non-loopback IPv4
//  3. global unicast IPv6
func NewInterfaceStrategy(addrs AddrsFunc) apis.HostStrategy {
	if addrs == nil {
		addrs = net.InterfaceAddrs
	}
	return &interfaceStrategy{addrs: addrs}
}

type interfaceStrategy struct {
	addrs AddrsFunc
}

var _ apis.HostStrategy = (*interfaceStrategy)(nil)

var homeNet = &net.IPNet{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)}

// TryResolveHost picks the preferred interface address.
// Lookup errors fall through to the next strategy.
func (s *interfaceStrategy) TryResolveHost(_ apis.Config) (string, bool) {
	addrs, err := s.addrs()
	if err != nil {
		return "", false
	}

	var private, v6 net.IP
	for _, a := range addrs {
		ip := ipOf(a)
		if ip == nil || ip.IsLoopback() || ip.IsUnspecified() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			if ip.IsLinkLocalUnicast() {
				continue
			}
			if !homeNet.Contains(v4) {
				return v4.String(), true
			}
			if private == nil {
				private = v4
			}
			continue
		}
		if v6 == nil && ip.IsGlobalUnicast() {
			v6 = ip
		}
	}

	switch {
	case private != nil:
		return private.String(), true
	case v6 != nil:
		return v6.String(), true
	default:
		return "", false
	}
}

func ipOf(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		return nil
	}
}
