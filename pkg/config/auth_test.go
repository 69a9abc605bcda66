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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAuthFromData_RootFormat(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://www.steamgriddb.com"]
bearer = "sgdb-key"

["https://api.igdb.com"]
username = "client-id"
password = "client-secret"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "sgdb-key", result[SteamGridDBAuthURL].Bearer)
	assert.Equal(t, "client-id", result[IGDBAuthURL].Username)
	assert.Equal(t, "client-secret", result[IGDBAuthURL].Password)
}

func TestLoadAuthFromData_CredsFormat(t *testing.T) {
	t.Parallel()

	data := []byte(`
[creds."https://www.steamgriddb.com"]
bearer = "sgdb-key"

[creds."api.igdb.com"]
username = "client-id"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "sgdb-key", result[SteamGridDBAuthURL].Bearer)
	assert.Equal(t, "client-id", result["api.igdb.com"].Username)
}

func TestLoadAuthFromData_MixedFormats(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://www.steamgriddb.com"]
bearer = "root-key"

[creds."https://api.igdb.com"]
username = "wrapped-id"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "root-key", result[SteamGridDBAuthURL].Bearer)
	assert.Equal(t, "wrapped-id", result[IGDBAuthURL].Username)
}

func TestLoadAuthFromData_EmptyData(t *testing.T) {
	t.Parallel()

	result := LoadAuthFromData([]byte(""))
	assert.Empty(t, result)
}

func TestLoadAuthFromData_InvalidTOML(t *testing.T) {
	t.Parallel()

	// Invalid TOML should not panic, just return empty
	result := LoadAuthFromData([]byte("this is not valid toml [[["))
	assert.Empty(t, result)
}

func TestIsSchemelessKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		expected bool
	}{
		{"https://www.steamgriddb.com", false},
		{"http://localhost:8080", false},
		{"api.igdb.com", true},
		{"localhost:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, isSchemelessKey(tt.key))
		})
	}
}

func TestLookupAuth_EmptyCreds(t *testing.T) {
	t.Parallel()

	assert.Nil(t, LookupAuth(nil, "https://example.com"))
	assert.Nil(t, LookupAuth(map[string]CredentialEntry{}, "https://example.com"))
}

func TestLookupAuth_InvalidURL(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"https://example.com": {Bearer: "token"},
	}

	assert.Nil(t, LookupAuth(creds, "://invalid-url"))
}

func TestLookupAuth_ExactSchemeMatch(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"https://example.com": {Username: "user", Password: "pass"},
	}

	result := LookupAuth(creds, "https://example.com")
	require.NotNil(t, result)
	assert.Equal(t, "user", result.Username)

	// Different scheme should not match
	assert.Nil(t, LookupAuth(creds, "http://example.com"))
}

func TestLookupAuth_PathPrefixMatch(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"https://www.steamgriddb.com/api/v2": {Bearer: "key"},
	}

	result := LookupAuth(creds, "https://www.steamgriddb.com/api/v2/search/autocomplete/Zelda")
	require.NotNil(t, result)
	assert.Equal(t, "key", result.Bearer)

	// Image downloads live outside the API path
	assert.Nil(t, LookupAuth(creds, "https://www.steamgriddb.com/icon/abc.png"))
}

func TestLookupAuth_CaseInsensitiveHostAndScheme(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"HTTPS://API.IGDB.COM": {Username: "id"},
	}

	result := LookupAuth(creds, "https://api.igdb.com/v4/games")
	require.NotNil(t, result)
	assert.Equal(t, "id", result.Username)
}

func TestLookupAuth_SchemelessHostMatch(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"api.igdb.com": {Username: "id"},
	}

	result := LookupAuth(creds, "https://api.igdb.com/v4/games")
	require.NotNil(t, result)
	assert.Equal(t, "id", result.Username)

	assert.Nil(t, LookupAuth(creds, "https://images.igdb.com/igdb/image/upload/t_1080p/co1.jpg"))
}

func TestLookupAuth_SchemeEntryWins(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"api.igdb.com":         {Username: "schemeless"},
		"https://api.igdb.com": {Username: "scheme"},
	}

	result := LookupAuth(creds, "https://api.igdb.com/v4/games")
	require.NotNil(t, result)
	assert.Equal(t, "scheme", result.Username)
}

func TestLookupAuth_HostMismatch(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		SteamGridDBAuthURL: {Bearer: "key"},
	}

	assert.Nil(t, LookupAuth(creds, "https://cdn2.steamgriddb.com/icon/abc.png"))
}
