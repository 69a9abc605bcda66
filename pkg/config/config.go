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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "ICONGEN_CFG"
)

type Values struct {
	ProjectRoot  string `toml:"project_root,omitempty"`
	AssetsDir    string `toml:"assets_dir,omitempty"`
	FontPath     string `toml:"font_path,omitempty"`
	HTTP         HTTP   `toml:"http"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

type HTTP struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	AssetsDir:    AssetsDir,
	HTTP: HTTP{
		TimeoutSeconds: int(DefaultHTTPTimeout / time.Second),
	},
}

// Instance is the process configuration. It is built once at startup and
// passed to whatever needs it; nothing reads credentials from global state.
type Instance struct {
	creds    map[string]CredentialEntry
	cfgPath  string
	authPath string
	vals     Values
	defaults Values
}

// DefaultConfigPath returns the icons.toml location in the user config dir.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, CfgFile)
}

// DefaultLogDir returns the directory the rotating log file is written to.
func DefaultLogDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// NewConfig loads icons.toml and auth.toml. cfgPath may be empty, in which
// case $ICONGEN_CFG and then DefaultConfigPath are used. A missing config file
// is created with the given defaults.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(cfgPath string, defaults Values) (*Instance, error) {
	if cfgPath == "" {
		cfgPath = os.Getenv(CfgEnv)
		log.Debug().Msgf("env config path: %s", cfgPath)
	}
	if cfgPath == "" {
		cfgPath = DefaultConfigPath()
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		authPath: filepath.Join(filepath.Dir(cfgPath), AuthFile),
		vals:     defaults,
		defaults: defaults,
		creds:    make(map[string]CredentialEntry),
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals

	if _, err := os.Stat(c.authPath); err == nil {
		log.Info().Msg("loading auth file")
		authData, err := os.ReadFile(c.authPath)
		if err != nil {
			return fmt.Errorf("failed to read auth file: %w", err)
		}
		c.creds = LoadAuthFromData(authData)
		log.Info().Msgf("loaded %d auth entries", len(c.creds))
	}

	return nil
}

func (c *Instance) Save() error {
	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) ConfigPath() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.vals.DebugLogging = enabled
}

// ProjectRoot returns the Android project root, defaulting to the working
// directory.
func (c *Instance) ProjectRoot() string {
	if c.vals.ProjectRoot == "" {
		return "."
	}
	return c.vals.ProjectRoot
}

func (c *Instance) SetProjectRoot(root string) {
	c.vals.ProjectRoot = root
}

func (c *Instance) projectPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectRoot(), p)
}

// AssetsDir is the directory holding the bundled console art.
func (c *Instance) AssetsDir() string {
	if c.vals.AssetsDir == "" {
		return c.projectPath(AssetsDir)
	}
	return c.projectPath(c.vals.AssetsDir)
}

// ResDir is the Android resource directory mipmaps are written under.
func (c *Instance) ResDir() string {
	return c.projectPath(ResDir)
}

func (c *Instance) RomConfigPath() string {
	return c.projectPath(RomConfigFile)
}

func (c *Instance) EnvFilePath() string {
	return c.projectPath(filepath.Join(IconsDir, EnvFile))
}

// FontPath is an optional TTF/OTF override for generated icons.
func (c *Instance) FontPath() string {
	if c.vals.FontPath == "" {
		return ""
	}
	return c.projectPath(c.vals.FontPath)
}

func (c *Instance) HTTPTimeout() time.Duration {
	if c.vals.HTTP.TimeoutSeconds <= 0 {
		return DefaultHTTPTimeout
	}
	return time.Duration(c.vals.HTTP.TimeoutSeconds) * time.Second
}

// Creds returns a copy of the loaded credentials.
func (c *Instance) Creds() map[string]CredentialEntry {
	out := make(map[string]CredentialEntry, len(c.creds))
	for k, v := range c.creds {
		out[k] = v
	}
	return out
}

// LookupAuth finds credentials for a request URL.
func (c *Instance) LookupAuth(reqURL string) *CredentialEntry {
	return LookupAuth(c.creds, reqURL)
}
