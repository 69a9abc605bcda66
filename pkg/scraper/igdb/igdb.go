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

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/vinaooo/revenger-icons/pkg/artwork"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/helpers/syncutil"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
	"github.com/vinaooo/revenger-icons/pkg/shared/httpclient"
	"golang.org/x/time/rate"
)

const (
	BaseURL  = "https://api.igdb.com/v4"
	TokenURL = "https://id.twitch.tv/oauth2/token" // #nosec G101 - Public OAuth endpoint URL, not a credential

	// IGDB allows 4 requests per second
	requestInterval = 250 * time.Millisecond
	// tokens are refreshed this long before they expire
	tokenExpirySkew = time.Minute

	thumbSize = "t_thumb"
	fullSize  = "t_1080p"
)

var ErrMissingCredentials = errors.New("IGDB requires Twitch client credentials - " +
	"set IGDB_CLIENT_ID and IGDB_CLIENT_SECRET, or username=client_id and " +
	"password=client_secret for https://api.igdb.com in auth.toml")

// IGDB finds a game's cover art and turns it into a poster icon.
type IGDB struct {
	client      *httpclient.Client
	cfg         *config.Instance
	clock       clockwork.Clock
	limiter     *rate.Limiter
	platformMap *PlatformMapper
	tokenInfo   *TokenInfo
	baseURL     string
	tokenURL    string
	mu          syncutil.Mutex
}

// NewIGDB creates a new IGDB strategy. A nil clock uses the real clock.
func NewIGDB(client *httpclient.Client, cfg *config.Instance, clock clockwork.Clock) *IGDB {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &IGDB{
		client:      client,
		cfg:         cfg,
		clock:       clock,
		limiter:     rate.NewLimiter(rate.Every(requestInterval), 1),
		platformMap: NewPlatformMapper(),
		baseURL:     BaseURL,
		tokenURL:    TokenURL,
	}
}

func (*IGDB) ID() scraper.Method { return scraper.MethodIGDB }

func (*IGDB) Name() string { return "IGDB cover poster" }

func (*IGDB) Remote() bool { return true }

func (igdb *IGDB) Attempt(ctx context.Context, q scraper.Query) (image.Image, bool) {
	return scraper.Fold(igdb.ID(), func() (image.Image, error) {
		return igdb.fetch(ctx, q)
	})
}

func (igdb *IGDB) fetch(ctx context.Context, q scraper.Query) (image.Image, error) {
	platformID, ok := igdb.platformMap.GetIGDBPlatformID(q.Platform)
	if !ok {
		return nil, fmt.Errorf("%w: no IGDB platform for %q", scraper.ErrNotFound, q.Platform)
	}

	game, err := igdb.Search(ctx, q.Name, platformID)
	if err != nil {
		return nil, err
	}
	if game.Cover == nil || game.Cover.URL == "" {
		return nil, fmt.Errorf("%w: %q has no cover", scraper.ErrNotFound, game.Name)
	}

	coverURL := CoverURL(game.Cover.URL)
	log.Debug().Str("game", game.Name).Str("url", coverURL).Msg("downloading IGDB cover")

	if err := igdb.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	data, err := igdb.client.GetBytes(ctx, coverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download cover: %w", err)
	}

	cover, err := artwork.Decode(data)
	if err != nil {
		return nil, err
	}
	return artwork.Compose(cover)
}

// Search returns the first game matching name on the given platform.
func (igdb *IGDB) Search(ctx context.Context, name string, platformID int) (*Game, error) {
	creds, err := igdb.credentials()
	if err != nil {
		return nil, err
	}

	token, err := igdb.ensureValidToken(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to get valid token: %w", err)
	}

	igdbQuery := buildSearchQuery(name, platformID)
	log.Debug().Str("query", igdbQuery).Msg("IGDB search request")

	if err := igdb.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, igdb.baseURL+"/games",
		bytes.NewBufferString(igdbQuery))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Client-ID", creds.Username)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := igdb.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		igdb.invalidateToken()
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return nil, handleHTTPError(err)
	}

	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: no game matching %q", scraper.ErrNotFound, name)
	}
	return &games[0], nil
}

func (igdb *IGDB) credentials() (*config.CredentialEntry, error) {
	creds := igdb.cfg.LookupAuth(config.IGDBAuthURL)
	if creds == nil || creds.Username == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}
	return creds, nil
}

// ensureValidToken returns a cached app access token, requesting a new one
// from Twitch when none is cached or it is close to expiry.
func (igdb *IGDB) ensureValidToken(ctx context.Context, creds *config.CredentialEntry) (string, error) {
	igdb.mu.Lock()
	defer igdb.mu.Unlock()

	if igdb.tokenInfo != nil && igdb.clock.Now().Before(igdb.tokenInfo.ExpiresAt.Add(-tokenExpirySkew)) {
		return igdb.tokenInfo.AccessToken, nil
	}

	params := url.Values{}
	params.Set("client_id", creds.Username)
	params.Set("client_secret", creds.Password)
	params.Set("grant_type", "client_credentials")

	resp, err := igdb.client.Post(ctx, igdb.tokenURL, "application/x-www-form-urlencoded",
		strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("token response has no access token")
	}

	igdb.tokenInfo = &TokenInfo{
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   igdb.clock.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
		TokenType:   tokenResp.TokenType,
	}

	log.Info().Msg("obtained IGDB access token")
	return tokenResp.AccessToken, nil
}

func (igdb *IGDB) invalidateToken() {
	igdb.mu.Lock()
	igdb.tokenInfo = nil
	igdb.mu.Unlock()
}

var queryEscaper = strings.NewReplacer(`\`, "", `"`, "")

// buildSearchQuery builds an IGDB query for the first game matching name
// on a platform. Quotes are dropped from the name so it can't end the
// search string early.
func buildSearchQuery(gameName string, platformID int) string {
	return fmt.Sprintf(`search "%s"; fields name, cover.url; where platforms = (%d); limit 1;`,
		queryEscaper.Replace(gameName), platformID)
}

// CoverURL turns a protocol relative thumbnail URL into an absolute URL for
// the full size image.
func CoverURL(raw string) string {
	u := strings.ReplaceAll(raw, thumbSize, fullSize)
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

func handleHTTPError(err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	switch statusErr.StatusCode {
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited by IGDB: %w", err)
	case http.StatusUnauthorized:
		return fmt.Errorf("authentication failed, check Twitch credentials: %w", err)
	case http.StatusForbidden:
		return fmt.Errorf("access forbidden, check API permissions: %w", err)
	default:
		return err
	}
}

// RequiresPlatform reports that searches are always scoped to a platform.
func (*IGDB) RequiresPlatform() bool { return true }
