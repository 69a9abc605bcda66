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

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/helpers"
	"github.com/vinaooo/revenger-icons/pkg/resolver"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
)

var ErrFlagConflict = errors.New("-force and -skip-downloads cannot be combined")

type Flags struct {
	Force         *string
	SkipDownloads *bool
	Config        *string
	ProjectRoot   *string
	Core          *string
	Rom           *string
	Debug         *bool
	Version       *bool
}

// SetupFlags defines the command flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Force: fs.String(
			"force",
			"",
			"use only one method: 1 steamgriddb, 2 igdb, 3 console, 4 typography",
		),
		SkipDownloads: fs.Bool(
			"skip-downloads",
			false,
			"skip the remote methods and use local art only",
		),
		Config: fs.String(
			"config",
			"",
			"path to icons.toml",
		),
		ProjectRoot: fs.String(
			"project-root",
			"",
			"Android project root (overrides project_root in icons.toml)",
		),
		Core: fs.String(
			"core",
			"",
			"core name (overrides conf_core in config.xml)",
		),
		Rom: fs.String(
			"rom",
			"",
			"ROM filename (overrides conf_rom in config.xml)",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

// Mode converts the method selection flags into a resolver mode.
func (f *Flags) Mode() (resolver.Mode, error) {
	if *f.Force == "" {
		return resolver.Mode{SkipRemote: *f.SkipDownloads}, nil
	}
	if *f.SkipDownloads {
		return resolver.Mode{}, ErrFlagConflict
	}

	m, err := scraper.ParseMethod(*f.Force)
	if err != nil {
		return resolver.Mode{}, fmt.Errorf("invalid -force value: %w", err)
	}
	return resolver.Mode{Force: m}, nil
}

// Setup loads the config, applies flag overrides and credentials from the
// environment, and initializes logging.
func (f *Flags) Setup(logDir string, writers []io.Writer) (*config.Instance, error) {
	cfg, err := config.NewConfig(*f.Config, config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if *f.ProjectRoot != "" {
		cfg.SetProjectRoot(*f.ProjectRoot)
	}
	if *f.Debug {
		cfg.SetDebugLogging(true)
	}

	err = helpers.InitLogging(logDir, cfg.DebugLogging(), writers)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	err = cfg.LoadEnv(cfg.EnvFilePath())
	if err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	log.Debug().Msgf("config: %s, project root: %s", cfg.ConfigPath(), cfg.ProjectRoot())
	return cfg, nil
}

// Identity returns the ROM identity. config.xml is only read when the
// -core and -rom flags don't already supply both values.
func (f *Flags) Identity(cfg *config.Instance) (config.RomIdentity, error) {
	id := config.RomIdentity{Core: *f.Core, Rom: *f.Rom}
	if id.Core != "" && id.Rom != "" {
		return id, nil
	}

	fromFile, err := config.ReadRomIdentity(cfg.RomConfigPath())
	if err != nil {
		return config.RomIdentity{}, err
	}
	if id.Core != "" {
		fromFile.Core = id.Core
	}
	if id.Rom != "" {
		fromFile.Rom = id.Rom
	}
	return fromFile, nil
}
