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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Environment variables carrying remote service credentials.
const (
	EnvSteamGridDBKey   = "SGDB_API_KEY"
	EnvIGDBClientID     = "IGDB_CLIENT_ID"
	EnvIGDBClientSecret = "IGDB_CLIENT_SECRET"
)

var credentialEnvKeys = []string{EnvSteamGridDBKey, EnvIGDBClientID, EnvIGDBClientSecret}

// ParseEnv reads KEY=VALUE lines. Blank lines and # comments are skipped,
// and surrounding quotes are stripped from values.
func ParseEnv(data string) map[string]string {
	env := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		env[key] = strings.Trim(strings.TrimSpace(val), `'"`)
	}
	return env
}

// LoadEnv overlays credentials from the process environment and the given
// .env file onto the auth.toml entries. Values in the .env file win over
// the process environment. A missing .env file is not an error.
func (c *Instance) LoadEnv(envFile string) error {
	env := make(map[string]string)
	for _, key := range credentialEnvKeys {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}

	if envFile != "" {
		data, err := os.ReadFile(envFile) // #nosec G304 - path comes from project config
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Msgf("no env file at %s", envFile)
		case err != nil:
			return fmt.Errorf("failed to read env file: %w", err)
		default:
			log.Info().Msgf("loading env file: %s", envFile)
			maps.Copy(env, ParseEnv(string(data)))
		}
	}

	c.applyEnv(env)
	return nil
}

func (c *Instance) applyEnv(env map[string]string) {
	if key := env[EnvSteamGridDBKey]; key != "" {
		entry := c.creds[SteamGridDBAuthURL]
		entry.Bearer = key
		c.creds[SteamGridDBAuthURL] = entry
	}

	id, secret := env[EnvIGDBClientID], env[EnvIGDBClientSecret]
	if id != "" || secret != "" {
		entry := c.creds[IGDBAuthURL]
		if id != "" {
			entry.Username = id
		}
		if secret != "" {
			entry.Password = secret
		}
		c.creds[IGDBAuthURL] = entry
	}
}
