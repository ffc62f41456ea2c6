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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dirpx.dev/clientcfg/apis"
)

var (
	// ErrEmptyRegion is returned by Validate when Region is empty.
	ErrEmptyRegion = errors.New("clientcfg(config): empty region")
	// ErrEmptyServiceName is returned by Validate when ServiceName is empty.
	ErrEmptyServiceName = errors.New("clientcfg(config): empty service name")
)

// Load reads a YAML configuration file. Keys absent from the file keep
// their default values.
func Load(path string) (apis.Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("clientcfg(config): read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("clientcfg(config): parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the fields that must never be empty.
// The name server list is not checked here; the registry owns its format.
func Validate(cfg apis.Config) error {
	if cfg.Region == "" {
		return ErrEmptyRegion
	}
	if cfg.ServiceName == "" {
		return ErrEmptyServiceName
	}
	return nil
}
