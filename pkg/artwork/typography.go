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
	"crypto/md5" //nolint:gosec // colour selection only, not security
	"image"
	"image/color"
	"image/draw"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Palette is the fixed set of typography icon backgrounds.
var Palette = [10]color.RGBA{
	{0x3F, 0x51, 0xB5, 0xFF},
	{0xE9, 0x1E, 0x63, 0xFF},
	{0x21, 0x96, 0xF3, 0xFF},
	{0x4C, 0xAF, 0x50, 0xFF},
	{0xFF, 0x57, 0x22, 0xFF},
	{0xFF, 0x98, 0x00, 0xFF},
	{0x9C, 0x27, 0xB0, 0xFF},
	{0x00, 0x96, 0x88, 0xFF},
	{0xFF, 0xEB, 0x3B, 0xFF},
	{0x03, 0xA9, 0xF4, 0xFF},
}

// lightPaletteIndex is the one background bright enough to need dark text.
const lightPaletteIndex = 8

var (
	textLight = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	textDark  = color.RGBA{0x21, 0x21, 0x21, 0xFF}
)

const (
	maxInitials   = 3
	fallbackGlyph = "?"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// ColorIndex picks the palette entry for a name from the first byte of its
// MD5 digest.
func ColorIndex(name string) int {
	sum := md5.Sum([]byte(name)) //nolint:gosec // see import
	return int(sum[0]) % len(Palette)
}

// TextColor is the initials colour drawn on the given palette entry.
func TextColor(index int) color.RGBA {
	if index == lightPaletteIndex {
		return textDark
	}
	return textLight
}

// Initials takes the first character of up to three words, upper-cased.
// A name without words yields "?".
func Initials(name string) string {
	words := wordRe.FindAllString(name, maxInitials)
	if len(words) == 0 {
		return fallbackGlyph
	}
	var first []byte
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		first = utf8.AppendRune(first, r)
	}
	return cases.Upper(language.Und).String(string(first))
}

// FontSize is the face size for the given initials: 60% of the canvas for
// one or two characters, 45% for three.
func FontSize(initials string) float64 {
	if utf8.RuneCountInString(initials) > 2 {
		return float64(Size * 45 / 100)
	}
	return float64(Size * 60 / 100)
}

// Renderer draws typography icons. It is safe for concurrent use.
type Renderer struct {
	font *opentype.Font
}

var defaultFont = mustParseFont(gobold.TTF)

func mustParseFont(data []byte) *opentype.Font {
	f, err := opentype.Parse(data)
	if err != nil {
		panic(err)
	}
	return f
}

// NewRenderer loads a TTF/OTF font from fontPath. An empty path, or a font
// that can't be read, falls back to the bundled Go Bold.
func NewRenderer(fontPath string) *Renderer {
	if fontPath == "" {
		return &Renderer{font: defaultFont}
	}
	data, err := os.ReadFile(fontPath) // #nosec G304 - user configured font
	if err != nil {
		log.Warn().Err(err).Msgf("failed to read font %s, using bundled font", fontPath)
		return &Renderer{font: defaultFont}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Warn().Err(err).Msgf("invalid font %s, using bundled font", fontPath)
		return &Renderer{font: defaultFont}
	}
	return &Renderer{font: f}
}

// Render draws the initials of name centred on a solid palette square.
// Background colour and initials depend only on name.
func (r *Renderer) Render(name string) *image.RGBA {
	idx := ColorIndex(name)
	initials := Initials(name)

	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Palette[idx]), image.Point{}, draw.Src)

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    FontSize(initials),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create font face")
		return img
	}
	defer func() {
		if closeErr := face.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("error closing font face")
		}
	}()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(TextColor(idx)),
		Face: face,
		Dot:  centerDot(face, initials),
	}
	d.DrawString(initials)

	return img
}

// centerDot places the baseline so the ink bounds, not the line box, sit in
// the middle of the canvas.
func centerDot(face font.Face, s string) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, s)

	inkW := (bounds.Max.X - bounds.Min.X).Ceil()
	inkH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (Size-inkW)/2 - bounds.Min.X.Floor()
	y := (Size-inkH)/2 - bounds.Min.Y.Floor()
	return fixed.P(x, y)
}
