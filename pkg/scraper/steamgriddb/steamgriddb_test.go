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
	"image"
	"image/color"
	"net/http"
	"regexp"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
	testhelpers "github.com/vinaooo/revenger-icons/pkg/testing/helpers"
)

const (
	searchPattern = `^https://www\.steamgriddb\.com/api/v2/search/autocomplete/`
	iconsPattern  = `^https://www\.steamgriddb\.com/api/v2/icons/game/\d+`
	iconURL       = "https://cdn2.steamgriddb.com/icon/abc123.png"
)

func newTestSGDB(t *testing.T) (*SteamGridDB, *httpmock.MockTransport) {
	t.Helper()
	cfg := testhelpers.NewTestConfig(t, testhelpers.RemoteCreds())
	client, mock := testhelpers.NewMockClient(cfg)
	return New(client, cfg), mock
}

func TestAttempt_Success(t *testing.T) {
	t.Parallel()

	s, mock := newTestSGDB(t)

	var searchAuth, searchPath string
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		func(req *http.Request) (*http.Response, error) {
			searchAuth = req.Header.Get("Authorization")
			searchPath = req.URL.EscapedPath()
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"success": true,
				"data":    []map[string]any{{"id": 4242, "name": "Super Game"}, {"id": 1, "name": "Other"}},
			})
		})

	var iconQuery string
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(iconsPattern),
		func(req *http.Request) (*http.Response, error) {
			iconQuery = req.URL.Query().Get("mimes")
			assert.Equal(t, "/api/v2/icons/game/4242", req.URL.Path)
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"success": true,
				"data":    []map[string]any{{"id": 9, "url": iconURL, "mime": "image/png"}},
			})
		})

	var iconAuth string
	mock.RegisterResponder(http.MethodGet, iconURL, func(req *http.Request) (*http.Response, error) {
		iconAuth = req.Header.Get("Authorization")
		return httpmock.NewBytesResponse(http.StatusOK, testhelpers.MustPalettedPNG(256, 256, color.White)), nil
	})

	img, ok := s.Attempt(context.Background(), scraper.Query{Name: "Super Game: Part 2", Platform: "snes"})
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
	assert.IsType(t, &image.RGBA{}, img)

	assert.Equal(t, "Bearer test-sgdb-key", searchAuth)
	assert.Equal(t, "/api/v2/search/autocomplete/Super%20Game:%20Part%202", searchPath)
	assert.Equal(t, "image/png", iconQuery)
	assert.Empty(t, iconAuth, "image CDN download is unauthenticated")
	assert.Equal(t, 3, mock.GetTotalCallCount())
}

func TestAttempt_NoSearchMatch(t *testing.T) {
	t.Parallel()

	s, mock := newTestSGDB(t)
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[]}`))
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(iconsPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[]}`))

	_, ok := s.Attempt(context.Background(), scraper.Query{Name: "Nothing"})
	assert.False(t, ok)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestAttempt_NoIcons(t *testing.T) {
	t.Parallel()

	s, mock := newTestSGDB(t)
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[{"id":7}]}`))
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(iconsPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[]}`))

	_, ok := s.Attempt(context.Background(), scraper.Query{Name: "Iconless"})
	assert.False(t, ok)
	assert.Equal(t, 2, mock.GetTotalCallCount())
}

func TestAttempt_Unauthorized(t *testing.T) {
	t.Parallel()

	s, mock := newTestSGDB(t)
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"success":false,"errors":["bad key"]}`))

	_, ok := s.Attempt(context.Background(), scraper.Query{Name: "Super Game"})
	assert.False(t, ok)
}

func TestAttempt_MalformedJSON(t *testing.T) {
	t.Parallel()

	s, mock := newTestSGDB(t)
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		httpmock.NewStringResponder(http.StatusOK, `<html>`))

	_, ok := s.Attempt(context.Background(), scraper.Query{Name: "Super Game"})
	assert.False(t, ok)
}

func TestAttempt_UndecodableIcon(t *testing.T) {
	t.Parallel()

	s, mock := newTestSGDB(t)
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[{"id":7}]}`))
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(iconsPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[{"id":1,"url":"`+iconURL+`"}]}`))
	mock.RegisterResponder(http.MethodGet, iconURL, httpmock.NewStringResponder(http.StatusOK, "not a png"))

	_, ok := s.Attempt(context.Background(), scraper.Query{Name: "Super Game"})
	assert.False(t, ok)
	assert.Equal(t, 3, mock.GetTotalCallCount())
}

func TestAttempt_MissingKeySkipsNetwork(t *testing.T) {
	t.Parallel()

	cfg := testhelpers.NewTestConfig(t, nil)
	client, mock := testhelpers.NewMockClient(cfg)
	mock.RegisterRegexpResponder(http.MethodGet, regexp.MustCompile(searchPattern),
		httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":[{"id":7}]}`))

	_, ok := New(client, cfg).Attempt(context.Background(), scraper.Query{Name: "Super Game"})
	assert.False(t, ok)
	assert.Equal(t, 0, mock.GetTotalCallCount())
}

func TestStrategyInfo(t *testing.T) {
	t.Parallel()

	s, _ := newTestSGDB(t)
	assert.Equal(t, scraper.MethodSteamGridDB, s.ID())
	assert.True(t, s.Remote())
	assert.NotEmpty(t, s.Name())
}
