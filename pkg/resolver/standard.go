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
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/vinaooo/revenger-icons/pkg/artwork"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
	"github.com/vinaooo/revenger-icons/pkg/scraper/console"
	"github.com/vinaooo/revenger-icons/pkg/scraper/igdb"
	"github.com/vinaooo/revenger-icons/pkg/scraper/steamgriddb"
	"github.com/vinaooo/revenger-icons/pkg/shared/httpclient"
)

// Deps are the collaborators of the standard strategies.
type Deps struct {
	Config *config.Instance
	Client *httpclient.Client
	Fs     afero.Fs
	Clock  clockwork.Clock
}

// NewStandard builds the resolver with the standard cascade:
// SteamGridDB, IGDB, console art, then generated typography.
func NewStandard(deps Deps) *Resolver {
	return New(
		steamgriddb.New(deps.Client, deps.Config),
		igdb.NewIGDB(deps.Client, deps.Config, deps.Clock),
		console.New(deps.Fs, deps.Config.AssetsDir()),
		scraper.NewTypography(artwork.NewRenderer(deps.Config.FontPath())),
	)
}
