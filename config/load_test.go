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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/clientcfg/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeFile(t, `
region: us-east-1
tenant_id: tenant-a
service_name: mq
resource_scope: "arn:mq:us-east-1:1234:instance/a"
name_server_addr: "10.0.0.1:9876;10.0.0.2:9876"
host_address: 192.168.1.5
message_tracing: true
rpc_tracing: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "tenant-a", cfg.TenantID)
	assert.Equal(t, "mq", cfg.ServiceName)
	assert.Equal(t, "arn:mq:us-east-1:1234:instance/a", cfg.ResourceScope)
	assert.Equal(t, "10.0.0.1:9876;10.0.0.2:9876", cfg.NameServerAddr)
	assert.Equal(t, "192.168.1.5", cfg.HostAddress)
	assert.True(t, cfg.MessageTracing)
	assert.True(t, cfg.RPCTracing)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "tenant_id: tenant-b\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tenant-b", cfg.TenantID)
	assert.Equal(t, config.DefaultRegion, cfg.Region)
	assert.Equal(t, config.DefaultServiceName, cfg.ServiceName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "region: [unterminated\n")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_ExplicitEmptyRegion(t *testing.T) {
	path := writeFile(t, "region: \"\"\n")

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrEmptyRegion)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, config.Validate(config.DefaultConfig()))

	cfg := config.DefaultConfig()
	cfg.ServiceName = ""
	assert.ErrorIs(t, config.Validate(cfg), config.ErrEmptyServiceName)
}
