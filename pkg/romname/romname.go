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

// Package romname turns ROM filenames into the display names used to search
// remote metadata services and to label generated icons.
package romname

import (
	"regexp"
	"strings"
)

// Extensions is the allow-list of ROM and container extensions stripped from
// the end of a filename. Matching is case-insensitive.
var Extensions = []string{
	"iso", "zip", "7z", "rar",
	"sfc", "smc",
	"gba", "gbc", "gb",
	"nes",
	"n64", "z64", "v64",
	"rvz", "gcm",
	"chd", "bin", "cue",
	"apk",
	"sms", "md", "gen",
	"nds", "3ds",
}

var (
	tagsRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	extRe  = regexp.MustCompile(`(?i)\.(` + strings.Join(Extensions, "|") + `)$`)
)

// Normalize returns the canonical name for a raw ROM filename: release tags
// in () and [] are removed, a trailing ROM extension is stripped and " - "
// subtitle separators become ": ".
//
//	"Super Game (USA) [v1.1].sfc" → "Super Game"
//	"Saga - The Return (EU).zip"  → "Saga: The Return"
//
// The steps are repeated until the name stops changing, so the result is
// always a fixed point and Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	s := raw
	for {
		next := normalizeOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	s = tagsRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = extRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " - ", ": ")
}
