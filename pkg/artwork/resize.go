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

	"github.com/anthonynsimon/bild/transform"
)

// Resize scales img to size x size with a Lanczos filter. Aspect is not
// preserved.
func Resize(img image.Image, size int) *image.RGBA {
	return transform.Resize(img, size, size, transform.Lanczos)
}
