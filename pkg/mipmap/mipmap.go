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

// Package mipmap writes a resolved icon as the Android launcher icon set.
package mipmap

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/vinaooo/revenger-icons/pkg/artwork"
	"golang.org/x/sync/errgroup"
)

const (
	SquareFile = "ic_launcher.png"
	RoundFile  = "ic_launcher_round.png"
)

// Tier is one launcher icon density.
type Tier struct {
	Name string
	Size int
}

// Dir is the resource directory the tier is written to.
func (t Tier) Dir() string {
	return "mipmap-" + t.Name
}

// Tiers are the launcher icon densities, smallest first.
var Tiers = []Tier{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Icon is the pair of rasters for one tier.
type Icon struct {
	Square *image.RGBA
	Round  *image.RGBA
	Tier   Tier
}

// Render resizes img for a tier and derives the round variant.
func Render(img image.Image, tier Tier) Icon {
	square := artwork.Resize(img, tier.Size)
	return Icon{
		Tier:   tier,
		Square: square,
		Round:  artwork.Round(square),
	}
}

// Emitter writes launcher icons under an Android res directory.
type Emitter struct {
	fs     afero.Fs
	resDir string
}

func NewEmitter(fs afero.Fs, resDir string) *Emitter {
	return &Emitter{fs: fs, resDir: resDir}
}

// Emit renders and writes every tier. Tiers are independent and are
// processed concurrently. It returns the written paths.
func (e *Emitter) Emit(ctx context.Context, img image.Image) ([]string, error) {
	paths := make([][]string, len(Tiers))

	g, ctx := errgroup.WithContext(ctx)
	for i, tier := range Tiers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			icon := Render(img, tier)
			dir := filepath.Join(e.resDir, tier.Dir())

			square, err := e.writePNG(dir, SquareFile, icon.Square)
			if err != nil {
				return err
			}
			round, err := e.writePNG(dir, RoundFile, icon.Round)
			if err != nil {
				return err
			}
			paths[i] = []string{square, round}
			log.Debug().Msgf("wrote %s icons (%dpx)", tier.Name, tier.Size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	written := make([]string, 0, 2*len(Tiers))
	for _, p := range paths {
		written = append(written, p...)
	}
	return written, nil
}

// writePNG encodes to a temp file next to the target and renames it into
// place, so a failed run never leaves a truncated icon.
func (e *Emitter) writePNG(dir, name string, img image.Image) (string, error) {
	if err := e.fs.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	target := filepath.Join(dir, name)
	tmp := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")

	f, err := e.fs.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	encErr := artwork.EncodePNG(f, img)
	closeErr := f.Close()
	if encErr != nil || closeErr != nil {
		if removeErr := e.fs.Remove(tmp); removeErr != nil {
			log.Warn().Err(removeErr).Msgf("error removing temp file: %s", tmp)
		}
		if encErr != nil {
			return "", encErr
		}
		return "", fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	if err := e.fs.Rename(tmp, target); err != nil {
		if removeErr := e.fs.Remove(tmp); removeErr != nil {
			log.Warn().Err(removeErr).Msgf("error removing temp file: %s", tmp)
		}
		return "", fmt.Errorf("failed to move icon into place: %w", err)
	}
	return target, nil
}
