// Revenger Icons
// Copyright (c) 2025 The Revenger Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Revenger Icons.
//
// Revenger Icons is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Revenger Icons is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Revenger Icons.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
	"github.com/vinaooo/revenger-icons/pkg/config"
)

// NewTestConfig builds a config in a temp dir with the given credentials
// written to auth.toml.
func NewTestConfig(t *testing.T, creds map[string]config.CredentialEntry) *config.Instance {
	t.Helper()

	dir := t.TempDir()
	if len(creds) > 0 {
		data, err := toml.Marshal(creds)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.AuthFile), data, 0o600))
	}

	cfg, err := config.NewConfig(filepath.Join(dir, config.CfgFile), config.BaseDefaults)
	require.NoError(t, err)
	cfg.SetProjectRoot(dir)
	return cfg
}

// RemoteCreds are credentials for both remote icon services.
func RemoteCreds() map[string]config.CredentialEntry {
	return map[string]config.CredentialEntry{
		config.SteamGridDBAuthURL: {Bearer: "test-sgdb-key"},
		config.IGDBAuthURL:        {Username: "test-client-id", Password: "test-client-secret"},
	}
}
