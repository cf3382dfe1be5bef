/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rackview.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"listen_addr": ":8090",
		"database": {"dsn": "postgres://localhost/rackview"},
		"auth": {
			"roles": {"operator": ["add_interface"]},
			"api_keys": {"op-key": "operator"}
		}
	}`)

	cfg, err := LoadConfig(context.Background(), path, nil)
	require.NoError(t, err)
	require.Equal(t, ":8090", cfg.ListenAddr)
	require.Equal(t, "operator", cfg.Auth.APIKeys["op-key"])
}

func TestLoadConfigRequiresListenAddr(t *testing.T) {
	path := writeConfigFile(t, `{"database": {"dsn": "postgres://localhost/rackview"}}`)

	_, err := LoadConfig(context.Background(), path, nil)
	require.ErrorIs(t, err, errListenAddrRequired)
}

func TestLoadConfigRequiresDatabase(t *testing.T) {
	path := writeConfigFile(t, `{"listen_addr": ":8090"}`)

	_, err := LoadConfig(context.Background(), path, nil)
	require.ErrorIs(t, err, errDatabaseRequired)
}
