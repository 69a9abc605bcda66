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

package console

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/vinaooo/revenger-icons/pkg/artwork"
	"github.com/vinaooo/revenger-icons/pkg/assets"
	"github.com/vinaooo/revenger-icons/pkg/scraper"
)

// Console returns the bundled console art for a platform. The art is used
// at whatever size it was shipped.
type Console struct {
	fs  afero.Fs
	dir string
}

func New(fs afero.Fs, dir string) *Console {
	return &Console{fs: fs, dir: dir}
}

func (*Console) ID() scraper.Method { return scraper.MethodConsole }

func (*Console) Name() string { return "Bundled console art" }

func (*Console) Remote() bool { return false }

func (c *Console) Attempt(_ context.Context, q scraper.Query) (image.Image, bool) {
	return scraper.Fold(c.ID(), func() (image.Image, error) {
		return c.fetch(q.Platform)
	})
}

// ArtPath returns where the console art for a platform should be found.
func (c *Console) ArtPath(platform string) (string, error) {
	meta, err := assets.GetSystemMetadata(platform)
	if err != nil {
		return "", fmt.Errorf("%w: no metadata for %q", scraper.ErrNotFound, platform)
	}
	if meta.ConsoleArt == "" {
		return "", fmt.Errorf("%w: %s has no bundled art", scraper.ErrNotFound, meta.Name)
	}
	return filepath.Join(c.dir, meta.ConsoleArt), nil
}

func (c *Console) fetch(platform string) (image.Image, error) {
	path, err := c.ArtPath(platform)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(c.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", scraper.ErrNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read console art: %w", err)
	}

	return artwork.DecodeRGBA(data)
}

func (*Console) RequiresPlatform() bool { return true }
