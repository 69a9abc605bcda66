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

package artwork

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
)

const (
	// posterBlurSigma is the standard deviation of the backdrop blur.
	posterBlurSigma    = 15.0
	posterOverlayAlpha = 77
)

// bild's Gaussian kernel is exp(-x²/4r), a variance of 2r, so the radius it
// takes for a given sigma is sigma²/2.
const posterBlurRadius = posterBlurSigma * posterBlurSigma / 2

// Compose builds the poster composite of src: a blurred, darkened copy
// filling the square behind a centred copy scaled to fit.
func Compose(src image.Image) (*image.RGBA, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	canvas := posterBackground(src)

	fw, fh := fitLongEdge(b.Dx(), b.Dy(), Size)
	fg := transform.Resize(src, fw, fh, transform.Lanczos)
	offset := image.Pt((Size-fw)/2, (Size-fh)/2)
	xdraw.Draw(canvas, fg.Bounds().Add(offset), fg, image.Point{}, xdraw.Over)

	return canvas, nil
}

func posterBackground(src image.Image) *image.RGBA {
	b := src.Bounds()
	bw, bh := fitShortEdge(b.Dx(), b.Dy(), Size)
	scaled := transform.Resize(src, bw, bh, transform.Lanczos)

	left := (bw - Size) / 2
	top := (bh - Size) / 2
	cropped := ToRGBA(transform.Crop(scaled, image.Rect(left, top, left+Size, top+Size)))

	bg := ToRGBA(blur.Gaussian(cropped, posterBlurRadius))
	overlay := image.NewUniform(color.NRGBA{A: posterOverlayAlpha})
	xdraw.Draw(bg, bg.Bounds(), overlay, image.Point{}, xdraw.Over)
	return bg
}

// fitShortEdge scales (w, h) so the shorter edge equals edge.
func fitShortEdge(w, h, edge int) (int, int) {
	if w < h {
		return edge, max(edge, h*edge/w)
	}
	return max(edge, w*edge/h), edge
}

// fitLongEdge scales (w, h) so the longer edge equals edge.
func fitLongEdge(w, h, edge int) (int, int) {
	if w >= h {
		return edge, max(1, h*edge/w)
	}
	return max(1, w*edge/h), edge
}
