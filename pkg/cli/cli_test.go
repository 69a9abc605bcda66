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
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/mipmap"
	"github.com/vinaooo/revenger-icons/pkg/resolver"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
	testhelpers "github.com/vinaooo/revenger-icons/pkg/testing/helpers"
)

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	f := SetupFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestFlags_Mode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr error
		name    string
		args    []string
		want    resolver.Mode
	}{
		{name: "cascade", args: nil, want: resolver.Mode{}},
		{name: "skip downloads", args: []string{"-skip-downloads"}, want: resolver.Mode{SkipRemote: true}},
		{name: "force number", args: []string{"-force", "2"}, want: resolver.Mode{Force: scraper.MethodIGDB}},
		{name: "force name", args: []string{"-force", "console"}, want: resolver.Mode{Force: scraper.MethodConsole}},
		{name: "force out of range", args: []string{"-force", "5"}, wantErr: scraper.ErrInvalidMethod},
		{name: "force zero", args: []string{"-force", "0"}, wantErr: scraper.ErrInvalidMethod},
		{
			name:    "conflict",
			args:    []string{"-force", "4", "-skip-downloads"},
			wantErr: ErrFlagConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseFlags(t, tt.args...).Mode()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func writeRomConfig(t *testing.T, cfg *config.Instance, core, rom string) {
	t.Helper()
	path := cfg.RomConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	data := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="conf_core">%s</string>
    <string name="conf_rom">%s</string>
</resources>
`, core, rom)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestFlags_Identity(t *testing.T) {
	t.Parallel()

	t.Run("flags only", func(t *testing.T) {
		t.Parallel()
		cfg := testhelpers.NewTestConfig(t, nil)
		id, err := parseFlags(t, "-core", "snes9x", "-rom", "game.sfc").Identity(cfg)
		require.NoError(t, err)
		assert.Equal(t, config.RomIdentity{Core: "snes9x", Rom: "game.sfc"}, id)
	})

	t.Run("from config.xml", func(t *testing.T) {
		t.Parallel()
		cfg := testhelpers.NewTestConfig(t, nil)
		writeRomConfig(t, cfg, " genesis_plus_gx ", "Sonic.bin")
		id, err := parseFlags(t).Identity(cfg)
		require.NoError(t, err)
		assert.Equal(t, config.RomIdentity{Core: "genesis_plus_gx", Rom: "Sonic.bin"}, id)
	})

	t.Run("flag overrides config.xml", func(t *testing.T) {
		t.Parallel()
		cfg := testhelpers.NewTestConfig(t, nil)
		writeRomConfig(t, cfg, "genesis_plus_gx", "Sonic.bin")
		id, err := parseFlags(t, "-rom", "Streets.md").Identity(cfg)
		require.NoError(t, err)
		assert.Equal(t, config.RomIdentity{Core: "genesis_plus_gx", Rom: "Streets.md"}, id)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		cfg := testhelpers.NewTestConfig(t, nil)
		_, err := parseFlags(t, "-core", "snes9x").Identity(cfg)
		require.ErrorIs(t, err, config.ErrConfigurationMissing)
	})
}

//nolint:paralleltest // replaces the global logger
func TestFlags_Setup(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	dir := t.TempDir()
	root := t.TempDir()
	f := parseFlags(t,
		"-config", filepath.Join(dir, config.CfgFile),
		"-project-root", root,
		"-debug",
	)

	cfg, err := f.Setup(filepath.Join(dir, "logs"), nil)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.ProjectRoot())
	assert.True(t, cfg.DebugLogging())
	assert.FileExists(t, filepath.Join(dir, config.CfgFile))
	assert.FileExists(t, filepath.Join(dir, "logs", config.LogFile))
}

func TestRun_SkipRemote(t *testing.T) {
	t.Parallel()

	cfg := testhelpers.NewTestConfig(t, testhelpers.RemoteCreds())
	client, mock := testhelpers.NewMockClient(cfg)
	h := testhelpers.NewMemoryFS()

	report, err := Run(context.Background(),
		resolver.Deps{Config: cfg, Client: client, Fs: h.Fs},
		config.RomIdentity{Core: "snes9x", Rom: "Super Game (USA).sfc"},
		resolver.Mode{SkipRemote: true},
	)
	require.NoError(t, err)

	assert.Equal(t, scraper.MethodTypography, report.Result.Method)
	assert.Len(t, report.Written, 2*len(mipmap.Tiers))
	for _, tier := range mipmap.Tiers {
		assert.True(t, h.FileExists(filepath.Join(cfg.ResDir(), tier.Dir(), mipmap.SquareFile)))
		assert.True(t, h.FileExists(filepath.Join(cfg.ResDir(), tier.Dir(), mipmap.RoundFile)))
	}
	assert.Equal(t, 0, mock.GetTotalCallCount())
}

func TestRun_ExhaustedWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := testhelpers.NewTestConfig(t, nil)
	client, _ := testhelpers.NewMockClient(cfg)
	h := testhelpers.NewMemoryFS()

	_, err := Run(context.Background(),
		resolver.Deps{Config: cfg, Client: client, Fs: h.Fs},
		config.RomIdentity{Core: "gambatte", Rom: "Tetris.gb"},
		resolver.Mode{Force: scraper.MethodConsole},
	)
	require.ErrorIs(t, err, resolver.ErrAllStrategiesExhausted)
	assert.Equal(t, ExitExhausted, ExitCode(err))
	assert.False(t, h.FileExists(cfg.ResDir()))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitExhausted, ExitCode(fmt.Errorf("run: %w", resolver.ErrAllStrategiesExhausted)))
	assert.Equal(t, ExitFatal, ExitCode(config.ErrConfigurationMissing))
	assert.Equal(t, ExitFatal, ExitCode(errors.New("disk full")))
	assert.Equal(t, ExitFatal, ExitCode(ErrFlagConflict))
}
