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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/vinaooo/revenger-icons/pkg/cli"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/resolver"
	"github.com/vinaooo/revenger-icons/pkg/shared/httpclient"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	flags := cli.SetupFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if *flags.Version {
		_, _ = fmt.Printf("Revenger Icons v%s\n", config.AppVersion)
		return cli.ExitOK
	}

	mode, err := flags.Mode()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitFatal
	}

	cfg, err := flags.Setup(config.DefaultLogDir(), []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stderr},
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitFatal
	}

	id, err := flags.Identity(cfg)
	if err != nil {
		log.Error().Err(err).Msg("error reading rom configuration")
		return cli.ExitFatal
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = cli.Run(ctx, resolver.Deps{
		Config: cfg,
		Client: httpclient.NewClientFromConfig(cfg, nil),
		Fs:     afero.NewOsFs(),
	}, id, mode)
	switch {
	case errors.Is(err, resolver.ErrAllStrategiesExhausted):
		log.Warn().Err(err).Msg("no icon produced")
	case err != nil:
		log.Error().Err(err).Msg("error generating icons")
	}
	return cli.ExitCode(err)
}
