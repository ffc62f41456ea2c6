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
	"errors"

	"dirpx.dev/clientcfg/registry"
)

var (
	// ErrFormat is returned when a name server address string fails to parse.
	// The concrete error is a *registry.FormatError.
	ErrFormat = registry.ErrFormat
	// ErrInvalidArgument is returned when a setter receives an empty value.
	ErrInvalidArgument = errors.New("clientcfg: invalid argument")
	// ErrSealed is returned when a write-once field is set after Seal.
	ErrSealed = errors.New("clientcfg: configuration is sealed")
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("clientcfg: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("clientcfg: builder returned nil resolver")
)
