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
	"github.com/vinaooo/revenger-icons/pkg/systemdefs"
)

// PlatformMapper maps platform codes to IGDB platform IDs. Game Boy has
// no entry, so it is never searched on IGDB.
type PlatformMapper struct {
	igdbPlatformMap map[string]int
}

// NewPlatformMapper creates a new platform mapper with IGDB mappings
func NewPlatformMapper() *PlatformMapper {
	return &PlatformMapper{
		igdbPlatformMap: map[string]int{
			systemdefs.SystemMasterSystem: 64,
			systemdefs.SystemMegaDrive:    29,
			systemdefs.SystemNES:          18,
			systemdefs.SystemSNES:         19,
			systemdefs.SystemNintendo64:   4,
			systemdefs.SystemGameCube:     21,
			systemdefs.SystemGBA:          24,
			systemdefs.SystemNDS:          20,
			systemdefs.System3DS:          37,
			systemdefs.SystemPSX:          7,
			systemdefs.SystemPS2:          8,
			systemdefs.SystemPSP:          38,
		},
	}
}

// GetIGDBPlatformID returns the IGDB platform ID for a platform code.
func (pm *PlatformMapper) GetIGDBPlatformID(systemID string) (int, bool) {
	platformID, exists := pm.igdbPlatformMap[systemID]
	return platformID, exists
}
