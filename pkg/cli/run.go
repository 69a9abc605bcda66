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

	"github.com/rs/zerolog/log"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/mipmap"
	"github.com/vinaooo/revenger-icons/pkg/resolver"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFatal     = 1
	ExitExhausted = 2
)

// Report describes a completed run.
type Report struct {
	Result  *resolver.Result
	Written []string
}

// Run resolves the icon for id and writes the launcher icon set.
func Run(
	ctx context.Context,
	deps resolver.Deps,
	id config.RomIdentity,
	mode resolver.Mode,
) (*Report, error) {
	log.Info().Msgf("generating icons for %s (core %s)", id.Rom, id.Core)

	res, err := resolver.NewStandard(deps).Resolve(ctx, id, mode)
	if err != nil {
		return nil, err
	}

	written, err := mipmap.NewEmitter(deps.Fs, deps.Config.ResDir()).Emit(ctx, res.Image)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("wrote %d icons using method %d: %s", len(written), res.Method, res.Method)
	return &Report{Result: res, Written: written}, nil
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, resolver.ErrAllStrategiesExhausted):
		return ExitExhausted
	default:
		return ExitFatal
	}
}
