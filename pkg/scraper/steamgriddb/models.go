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

package steamgriddb

// Response is the envelope every API v2 endpoint returns.
type Response[T any] struct {
	Data    []T      `json:"data"`
	Errors  []string `json:"errors,omitempty"`
	Success bool     `json:"success"`
}

// Game is an autocomplete search result.
type Game struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	ID       int      `json:"id"`
	Verified bool     `json:"verified"`
}

// Icon is a single icon asset.
type Icon struct {
	URL    string `json:"url"`
	Thumb  string `json:"thumb"`
	Mime   string `json:"mime"`
	Style  string `json:"style"`
	ID     int    `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
