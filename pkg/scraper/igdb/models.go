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

package igdb

import "time"

// Game represents a game from IGDB API
type Game struct {
	Cover *Cover `json:"cover"`
	Name  string `json:"name"`
	ID    int    `json:"id"`
}

// Cover represents cover art from IGDB. URL is protocol relative and
// points at the thumbnail size.
type Cover struct {
	ImageID string `json:"image_id"`
	URL     string `json:"url"`
	ID      int    `json:"id"`
	Height  int    `json:"height"`
	Width   int    `json:"width"`
}

// TokenResponse represents the Twitch OAuth token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// TokenInfo stores token information with expiry
type TokenInfo struct {
	ExpiresAt   time.Time
	AccessToken string
	TokenType   string
}
