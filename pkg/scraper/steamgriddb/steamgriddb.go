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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/vinaooo/revenger-icons/pkg/artwork"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
	"github.com/vinaooo/revenger-icons/pkg/shared/httpclient"
)

const (
	BaseURL  = "https://www.steamgriddb.com/api/v2"
	iconMime = "image/png"
)

var ErrMissingKey = errors.New("SteamGridDB API key not configured")

// SteamGridDB looks up a game's icon by name. The API key is attached by
// the client's auth transport.
type SteamGridDB struct {
	client  *httpclient.Client
	cfg     *config.Instance
	baseURL string
}

func New(client *httpclient.Client, cfg *config.Instance) *SteamGridDB {
	return &SteamGridDB{
		client:  client,
		cfg:     cfg,
		baseURL: BaseURL,
	}
}

func (*SteamGridDB) ID() scraper.Method { return scraper.MethodSteamGridDB }

func (*SteamGridDB) Name() string { return "SteamGridDB icon" }

func (*SteamGridDB) Remote() bool { return true }

func (s *SteamGridDB) Attempt(ctx context.Context, q scraper.Query) (image.Image, bool) {
	return scraper.Fold(s.ID(), func() (image.Image, error) {
		return s.fetch(ctx, q.Name)
	})
}

func (s *SteamGridDB) fetch(ctx context.Context, name string) (image.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", scraper.ErrNotFound)
	}
	if creds := s.cfg.LookupAuth(s.baseURL); creds == nil || creds.Bearer == "" {
		return nil, ErrMissingKey
	}

	gameID, err := s.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	iconURL, err := s.IconURL(ctx, gameID)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("game", gameID).Str("url", iconURL).Msg("downloading SteamGridDB icon")
	data, err := s.client.GetBytes(ctx, iconURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download icon: %w", err)
	}
	return artwork.DecodeRGBA(data)
}

// Search returns the ID of the best autocomplete match for name.
func (s *SteamGridDB) Search(ctx context.Context, name string) (int, error) {
	reqURL := s.baseURL + "/search/autocomplete/" + url.PathEscape(name)

	var resp Response[Game]
	if err := s.getJSON(ctx, reqURL, &resp); err != nil {
		return 0, fmt.Errorf("search failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return 0, fmt.Errorf("%w: no game matching %q", scraper.ErrNotFound, name)
	}
	return resp.Data[0].ID, nil
}

// IconURL returns the URL of the first PNG icon for a game.
func (s *SteamGridDB) IconURL(ctx context.Context, gameID int) (string, error) {
	params := url.Values{}
	params.Set("mimes", iconMime)
	reqURL := s.baseURL + "/icons/game/" + strconv.Itoa(gameID) + "?" + params.Encode()

	var resp Response[Icon]
	if err := s.getJSON(ctx, reqURL, &resp); err != nil {
		return "", fmt.Errorf("icon lookup failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: no icons for game %d", scraper.ErrNotFound, gameID)
	}
	return resp.Data[0].URL, nil
}

func (s *SteamGridDB) getJSON(ctx context.Context, reqURL string, v any) error {
	body, err := s.client.GetBytes(ctx, reqURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
