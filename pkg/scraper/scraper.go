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

package scraper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Method identifies an icon acquisition strategy. The numeric values are
// the ones accepted by -force.
type Method int

const (
	MethodSteamGridDB Method = iota + 1
	MethodIGDB
	MethodConsole
	MethodTypography
)

// ErrNotFound is returned by a strategy's lookup when the remote or local
// source has nothing for the query.
var ErrNotFound = errors.New("no result")

// ErrInvalidMethod is returned by ParseMethod.
var ErrInvalidMethod = errors.New("invalid method")

// Methods lists every method in cascade order.
func Methods() []Method {
	return []Method{MethodSteamGridDB, MethodIGDB, MethodConsole, MethodTypography}
}

func (m Method) String() string {
	switch m {
	case MethodSteamGridDB:
		return "steamgriddb"
	case MethodIGDB:
		return "igdb"
	case MethodConsole:
		return "console"
	case MethodTypography:
		return "typography"
	default:
		return "method(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMethod accepts the method number or name.
func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		m := Method(n)
		if m >= MethodSteamGridDB && m <= MethodTypography {
			return m, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrInvalidMethod, n)
	}
	for _, m := range Methods() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// Query is what every strategy receives: the canonical name and the
// resolved platform code.
type Query struct {
	Name     string
	Platform string
}

// Strategy is a single way of acquiring an icon. Attempt never returns an
// error: any failure is reported as not found.
type Strategy interface {
	ID() Method
	Name() string
	// Remote reports whether the strategy talks to the network.
	Remote() bool
	Attempt(ctx context.Context, q Query) (image.Image, bool)
}

// Fold runs a lookup and turns its error into a not found result, logging
// the cause.
func Fold(m Method, lookup func() (image.Image, error)) (image.Image, bool) {
	img, err := lookup()
	switch {
	case errors.Is(err, ErrNotFound):
		log.Debug().Err(err).Msgf("%s: no result", m)
		return nil, false
	case err != nil:
		log.Warn().Err(err).Msgf("%s: lookup failed", m)
		return nil, false
	case img == nil:
		log.Debug().Msgf("%s: empty result", m)
		return nil, false
	}
	return img, true
}
