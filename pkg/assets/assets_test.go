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

package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinaooo/revenger-icons/pkg/systemdefs"
)

func TestGetSystemMetadata(t *testing.T) {
	t.Parallel()

	for _, id := range systemdefs.AllSystems() {
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			meta, err := GetSystemMetadata(id)
			require.NoError(t, err)
			assert.Equal(t, id, meta.ID)
			assert.NotEmpty(t, meta.Name)
		})
	}
}

func TestGetSystemMetadata_ConsoleArt(t *testing.T) {
	t.Parallel()

	meta, err := GetSystemMetadata(systemdefs.SystemSNES)
	require.NoError(t, err)
	assert.Equal(t, "nintendo_super_nintendo_entertainment_system_sns_001.png", meta.ConsoleArt)

	meta, err = GetSystemMetadata(systemdefs.SystemGameCube)
	require.NoError(t, err)
	assert.Empty(t, meta.ConsoleArt)
}

func TestGetSystemMetadata_Unknown(t *testing.T) {
	t.Parallel()

	_, err := GetSystemMetadata(systemdefs.SystemUnknown)
	require.Error(t, err)
}
