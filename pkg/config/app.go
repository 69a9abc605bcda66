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

package config

import "time"

var AppVersion = "DEVELOPMENT"

const (
	AppName            = "revenger-icons"
	LogFile            = "icongen.log"
	CfgFile            = "icons.toml"
	AuthFile           = "auth.toml"
	EnvFile            = ".env"
	DefaultHTTPTimeout = 30 * time.Second
)

// Project layout, relative to the project root.
const (
	ResDir        = "app/src/main/res"
	RomConfigFile = "app/src/main/res/values/config.xml"
	IconsDir      = "icons"
	AssetsDir     = "icons/images"
)
