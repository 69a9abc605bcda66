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

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrConfigurationMissing is returned when config.xml is absent or lacks
// the core or ROM entry.
var ErrConfigurationMissing = errors.New("rom configuration missing")

// Resource names read from values/config.xml.
const (
	ResCoreName = "conf_core"
	ResRomName  = "conf_rom"
)

// RomIdentity is the core and ROM filename the app is packaged with.
type RomIdentity struct {
	Core string `validate:"required"`
	Rom  string `validate:"required"`
}

type androidResources struct {
	XMLName xml.Name         `xml:"resources"`
	Strings []androidStrings `xml:"string"`
}

type androidStrings struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks both fields are present.
func (r RomIdentity) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigurationMissing, err)
	}
	return nil
}

// ParseRomIdentity extracts the core and ROM entries from Android string
// resources XML.
func ParseRomIdentity(data []byte) (RomIdentity, error) {
	var res androidResources
	if err := xml.Unmarshal(data, &res); err != nil {
		return RomIdentity{}, fmt.Errorf("failed to parse rom configuration: %w", err)
	}

	var id RomIdentity
	for _, s := range res.Strings {
		switch s.Name {
		case ResCoreName:
			id.Core = strings.TrimSpace(s.Value)
		case ResRomName:
			id.Rom = strings.TrimSpace(s.Value)
		}
	}

	if err := id.Validate(); err != nil {
		return RomIdentity{}, err
	}
	return id, nil
}

// ReadRomIdentity loads the ROM identity from a config.xml file.
func ReadRomIdentity(path string) (RomIdentity, error) {
	data, err := os.ReadFile(path) // #nosec G304 - project file
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RomIdentity{}, fmt.Errorf("%w: %s", ErrConfigurationMissing, path)
		}
		return RomIdentity{}, fmt.Errorf("failed to read rom configuration: %w", err)
	}
	return ParseRomIdentity(data)
}
