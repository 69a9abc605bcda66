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
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// EllipseMask returns an alpha mask of the ellipse inscribed in r, with
// anti-aliased edges.
func EllipseMask(r image.Rectangle) *image.Alpha {
	w, h := float32(r.Dx()), float32(r.Dy())
	cx, cy := w/2, h/2
	ox, oy := cx*kappa, cy*kappa

	var z vector.Rasterizer
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(cx, 0)
	z.CubeTo(cx+ox, 0, w, cy-oy, w, cy)
	z.CubeTo(w, cy+oy, cx+ox, h, cx, h)
	z.CubeTo(cx-ox, h, 0, cy+oy, 0, cy)
	z.CubeTo(0, cy-oy, cx-ox, 0, cx, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Round clips img to its inscribed ellipse, leaving the corners transparent.
func Round(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(out, out.Bounds(), img, b.Min, EllipseMask(b), image.Point{}, draw.Src)
	return out
}
