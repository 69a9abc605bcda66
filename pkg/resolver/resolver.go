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

package resolver

import (
	"context"
	"errors"
	"image"

	"github.com/rs/zerolog/log"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/romname"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
	"github.com/vinaooo/revenger-icons/pkg/systemdefs"
)

// ErrAllStrategiesExhausted is returned when no strategy in the plan
// produced an icon.
var ErrAllStrategiesExhausted = errors.New("all icon strategies exhausted")

// Mode selects which strategies run. A zero Force runs the full cascade.
// Force takes precedence over SkipRemote.
type Mode struct {
	Force      scraper.Method
	SkipRemote bool
}

// PlatformScoped is implemented by strategies that can't do anything
// without a known platform. They are skipped for unknown platforms.
type PlatformScoped interface {
	RequiresPlatform() bool
}

// Result is the winning icon and what produced it.
type Result struct {
	Image    image.Image
	Name     string
	Platform string
	Method   scraper.Method
}

// Resolver tries strategies in order until one returns an icon.
type Resolver struct {
	strategies []scraper.Strategy
}

// New creates a resolver. The order of strategies is the cascade order.
func New(strategies ...scraper.Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Plan returns the strategies a mode will try, in order.
func (r *Resolver) Plan(mode Mode) []scraper.Strategy {
	if mode.Force != 0 {
		for _, s := range r.strategies {
			if s.ID() == mode.Force {
				return []scraper.Strategy{s}
			}
		}
		return nil
	}

	plan := make([]scraper.Strategy, 0, len(r.strategies))
	for _, s := range r.strategies {
		if mode.SkipRemote && s.Remote() {
			continue
		}
		plan = append(plan, s)
	}
	return plan
}

// Resolve derives the canonical name and platform for a ROM and runs the
// plan for mode, one strategy at a time.
func (r *Resolver) Resolve(ctx context.Context, id config.RomIdentity, mode Mode) (*Result, error) {
	name := romname.Normalize(id.Rom)
	platform := systemdefs.Resolve(id.Core, id.Rom)

	log.Info().
		Str("rom", id.Rom).
		Str("core", id.Core).
		Str("name", name).
		Str("platform", platform).
		Msg("resolving icon")

	q := scraper.Query{Name: name, Platform: platform}
	for _, s := range r.Plan(mode) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if scoped, ok := s.(PlatformScoped); ok && scoped.RequiresPlatform() && !systemdefs.IsKnown(platform) {
			log.Info().Msgf("skipping method %d (%s): platform unknown", s.ID(), s.Name())
			continue
		}

		log.Info().Msgf("attempting method %d: %s", s.ID(), s.Name())
		img, ok := s.Attempt(ctx, q)
		if !ok {
			log.Info().Msgf("method %d found nothing", s.ID())
			continue
		}

		log.Info().Msgf("icon resolved by method %d: %s", s.ID(), s.Name())
		return &Result{
			Image:    img,
			Name:     name,
			Platform: platform,
			Method:   s.ID(),
		}, nil
	}

	return nil, ErrAllStrategiesExhausted
}
