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

package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"dirpx.dev/clientcfg/apis"
)

const (
	// EndpointDelimiter separates endpoints in a name server list.
	EndpointDelimiter = ";"
	// HostPortSeparator separates host and port inside one endpoint.
	HostPortSeparator = ":"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("clientcfg(registry): malformed name server address")

// FormatError describes the first segment of a name server list that
// failed to parse.
type FormatError struct {
	// Input is the full string handed to Parse.
	Input string
	// Segment is the offending "host:port" segment.
	Segment string
	// Reason is a short human-readable cause.
	Reason string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: segment %q: %s: %v", ErrFormat, e.Segment, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: segment %q: %s", ErrFormat, e.Segment, e.Reason)
}

// Is reports ErrFormat as a match so callers can use errors.Is.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Parse turns "host:port;host:port" into IPv4 endpoints with one address each.
// Blank segments are skipped, so "" yields an empty set.
func Parse(raw string) ([]apis.Endpoint, error) {
	segments := strings.Split(raw, EndpointDelimiter)
	out := make([]apis.Endpoint, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		addr, err := parseAddress(raw, seg)
		if err != nil {
			return nil, err
		}
		out = append(out, apis.NewEndpoint(apis.IPv4, addr))
	}
	return out, nil
}

func parseAddress(raw, seg string) (apis.Address, error) {
	host, port, ok := strings.Cut(seg, HostPortSeparator)
	if !ok {
		return apis.Address{}, &FormatError{Input: raw, Segment: seg, Reason: "missing port"}
	}
	if strings.Contains(port, HostPortSeparator) {
		return apis.Address{}, &FormatError{Input: raw, Segment: seg, Reason: "too many separators"}
	}
	host, port = strings.TrimSpace(host), strings.TrimSpace(port)
	if reason := checkHost(host); reason != "" {
		return apis.Address{}, &FormatError{Input: raw, Segment: seg, Reason: reason}
	}
	// ParseUint rejects signs and bounds the value to 0..65535.
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return apis.Address{}, &FormatError{Input: raw, Segment: seg, Reason: "invalid port", Err: err}
	}
	return apis.Address{Host: host, Port: int(p)}, nil
}

// Validate checks pre-built endpoints against the rules Parse enforces:
// at least one address per endpoint, a non-empty host without whitespace,
// and a port in 0..65535.
func Validate(endpoints []apis.Endpoint) error {
	for _, e := range endpoints {
		if len(e.Addresses) == 0 {
			return &FormatError{Segment: e.String(), Reason: "no addresses"}
		}
		for _, a := range e.Addresses {
			if reason := checkHost(a.Host); reason != "" {
				return &FormatError{Segment: e.String(), Reason: reason}
			}
			if a.Port < 0 || a.Port > maxPort {
				return &FormatError{Segment: e.String(), Reason: "invalid port"}
			}
		}
	}
	return nil
}

const maxPort = 1<<16 - 1

func checkHost(host string) string {
	if host == "" {
		return "empty host"
	}
	if strings.ContainsFunc(host, unicode.IsSpace) {
		return "whitespace in host"
	}
	return ""
}

// Format renders endpoints back into the delimited list form.
func Format(endpoints []apis.Endpoint) string {
	var parts []string
	for _, e := range endpoints {
		for _, a := range e.Addresses {
			parts = append(parts, a.Host+HostPortSeparator+strconv.Itoa(a.Port))
		}
	}
	return strings.Join(parts, EndpointDelimiter)
}
