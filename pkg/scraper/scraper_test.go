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
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinaooo/revenger-icons/pkg/artwork"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Method
		wantErr  bool
	}{
		{"1", MethodSteamGridDB, false},
		{"2", MethodIGDB, false},
		{"3", MethodConsole, false},
		{"4", MethodTypography, false},
		{" console ", MethodConsole, false},
		{"IGDB", MethodIGDB, false},
		{"0", 0, true},
		{"5", 0, true},
		{"-1", 0, true},
		{"cover", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			m, err := ParseMethod(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestMethodString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "steamgriddb", MethodSteamGridDB.String())
	assert.Equal(t, "typography", MethodTypography.String())
	assert.Equal(t, "method(9)", Method(9).String())
	assert.Equal(t, []Method{1, 2, 3, 4}, Methods())
}

func TestFold(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	got, ok := Fold(MethodConsole, func() (image.Image, error) { return img, nil })
	assert.True(t, ok)
	assert.Same(t, img, got)

	_, ok = Fold(MethodConsole, func() (image.Image, error) { return nil, ErrNotFound })
	assert.False(t, ok)

	_, ok = Fold(MethodIGDB, func() (image.Image, error) { return img, errors.New("boom") })
	assert.False(t, ok)

	_, ok = Fold(MethodIGDB, func() (image.Image, error) { return nil, nil })
	assert.False(t, ok)
}

func TestTypography(t *testing.T) {
	t.Parallel()

	s := NewTypography(artwork.NewRenderer(""))

	assert.Equal(t, MethodTypography, s.ID())
	assert.False(t, s.Remote())

	img, ok := s.Attempt(context.Background(), Query{Name: "Super Game"})
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, artwork.Size, artwork.Size), img.Bounds())
}
