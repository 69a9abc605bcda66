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

package systemdefs

import (
	"path/filepath"
	"strings"
)

// The Systems list contains the platform codes an icon can be resolved for.
// These IDs select bundled console art and scope remote cover searches.
// Unknown is a valid terminal value rather than an error.

const (
	SystemMasterSystem = "mastersystem"
	SystemMegaDrive    = "megadrive"
	SystemNES          = "nes"
	SystemSNES         = "snes"
	SystemNintendo64   = "n64"
	SystemGameCube     = "gamecube"
	SystemGBA          = "gba"
	SystemNDS          = "nds"
	System3DS          = "3ds"
	SystemPSX          = "ps1"
	SystemPS2          = "ps2"
	SystemPSP          = "psp"
	SystemGameboy      = "gb"
	SystemUnknown      = "unknown"
)

// AllSystems returns every known platform code, excluding SystemUnknown.
func AllSystems() []string {
	return []string{
		SystemMasterSystem,
		SystemMegaDrive,
		SystemNES,
		SystemSNES,
		SystemNintendo64,
		SystemGameCube,
		SystemGBA,
		SystemNDS,
		System3DS,
		SystemPSX,
		SystemPS2,
		SystemPSP,
		SystemGameboy,
	}
}

// IsKnown reports whether id is one of AllSystems.
func IsKnown(id string) bool {
	for _, s := range AllSystems() {
		if s == id {
			return true
		}
	}
	return false
}

// sharedExtension is used by both Mega Drive and PlayStation dumps.
const sharedExtension = "bin"

var extensionSystems = map[string]string{
	"3ds": System3DS,
	"sfc": SystemSNES,
	"smc": SystemSNES,
	"md":  SystemMegaDrive,
	"bin": SystemMegaDrive,
	"gen": SystemMegaDrive,
	"sms": SystemMasterSystem,
	"nes": SystemNES,
	"n64": SystemNintendo64,
	"z64": SystemNintendo64,
	"gba": SystemGBA,
	"nds": SystemNDS,
}

// psxCoreHints mark a libretro core as a PlayStation emulator when a .bin
// file needs disambiguating.
var psxCoreHints = []string{"pcsx", "duck"}

type coreMapping struct {
	substr string
	system string
}

// coreSystems is checked in order and the first substring match wins, so
// more specific cores must come before ones they contain.
var coreSystems = []coreMapping{
	{"citra", System3DS},
	{"snes9x", SystemSNES},
	{"genesis_plus_gx", SystemMegaDrive},
	{"picodrive", SystemMegaDrive},
	{"gambatte", SystemGameboy},
	{"gearsystem", SystemMasterSystem},
	{"mupen64plus", SystemNintendo64},
	{"mgba", SystemGBA},
	{"melonds", SystemNDS},
	{"pcsx_rearmed", SystemPSX},
	{"duckstation", SystemPSX},
	{"play", SystemPS2},
	{"pcsx2", SystemPS2},
	{"ppsspp", SystemPSP},
	{"dolphin", SystemGameCube},
}

var coreSuffixes = []string{"_libretro_android", "_libretro"}

// Resolve maps a libretro core identifier and ROM filename to a platform
// code. Extension evidence wins over the core identifier, except for .bin
// which is PlayStation when the core looks like a PlayStation emulator and
// Mega Drive otherwise. Returns SystemUnknown when nothing matches.
func Resolve(coreID, romFilename string) string {
	core := strings.ToLower(coreID)

	if system, ok := systemFromExtension(core, romFilename); ok {
		return system
	}

	if system, ok := systemFromCore(core); ok {
		return system
	}

	return SystemUnknown
}

// Extension returns the lower-cased text after the last dot in a filename,
// or an empty string if there is none.
func Extension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

func systemFromExtension(core, romFilename string) (string, bool) {
	ext := Extension(romFilename)
	system, ok := extensionSystems[ext]
	if !ok {
		return "", false
	}

	if ext == sharedExtension {
		for _, hint := range psxCoreHints {
			if strings.Contains(core, hint) {
				return SystemPSX, true
			}
		}
	}

	return system, true
}

func systemFromCore(core string) (string, bool) {
	for _, suffix := range coreSuffixes {
		core = strings.ReplaceAll(core, suffix, "")
	}
	if core == "" {
		return "", false
	}

	for _, m := range coreSystems {
		if strings.Contains(core, m.substr) {
			return m.system, true
		}
	}

	return "", false
}
