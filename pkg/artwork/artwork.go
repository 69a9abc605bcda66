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

// Package artwork holds the raster operations behind every icon: decoding
// downloaded art, the generated typography icon, the poster composite used
// for cover art, resizing and the round launcher mask.
package artwork

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"io"

	_ "golang.org/x/image/webp" // register decoder
)

// Size is the edge length of every generated or composited icon.
const Size = 512

var ErrEmptyImage = errors.New("image has no pixels")

// Decode decodes PNG, JPEG, GIF or WebP data.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", format, ErrEmptyImage)
	}
	return img, nil
}

// DecodeRGBA decodes data like Decode and converts the result to an RGBA
// raster at its original size.
func DecodeRGBA(data []byte) (*image.RGBA, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an RGBA raster anchored at the origin. An RGBA
// already anchored at the origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
