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
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed systems/*
var Systems embed.FS

type SystemMetadata struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	// ConsoleArt is the bundled console image filename, empty if the system
	// has no bundled art.
	ConsoleArt string `json:"consoleArt"`
}

func GetSystemMetadata(system string) (SystemMetadata, error) {
	var metadata SystemMetadata

	data, err := Systems.ReadFile("systems/" + system + ".json")
	if err != nil {
		return metadata, fmt.Errorf("failed to read system metadata file: %w", err)
	}

	err = json.Unmarshal(data, &metadata)
	if err != nil {
		return metadata, fmt.Errorf("failed to unmarshal system metadata: %w", err)
	}
	return metadata, nil
}
