// Package heatmap maps grid values onto perceptually uniform color palettes
// so the front end only has to paint table cells.
package heatmap

import (
	"fmt"
	"math"
)

type rgb struct {
	r, g, b uint8
}

// Palette is an ordered set of color stops, interpolated linearly between
// neighbors. Stops are assumed evenly spaced over [0, 1].
type Palette []rgb

// Cividis and Magma carry the anchor colors of the matplotlib palettes of
// the same names, sampled at 0, 0.25, 0.5, 0.75 and 1.
var (
	Cividis = Palette{
		{0x00, 0x20, 0x4d},
		{0x31, 0x44, 0x6b},
		{0x66, 0x69, 0x70},
		{0x95, 0x8f, 0x78},
		{0xff, 0xea, 0x46},
	}
	Magma = Palette{
		{0x00, 0x00, 0x04},
		{0x51, 0x12, 0x7c},
		{0xb7, 0x37, 0x79},
		{0xfc, 0x89, 0x61},
		{0xfc, 0xfd, 0xbf},
	}
)

// At returns the palette color at position t in [0, 1] as a "#rrggbb" hex
// string. t is clamped; NaN falls to the low end.
func (p Palette) At(t float64) string {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	pos := t * float64(len(p)-1)
	lo := int(math.Floor(pos))
	if lo >= len(p)-1 {
		lo = len(p) - 2
	}
	frac := pos - float64(lo)

	a, b := p[lo], p[lo+1]
	return fmt.Sprintf("#%02x%02x%02x",
		lerp(a.r, b.r, frac),
		lerp(a.g, b.g, frac),
		lerp(a.b, b.b, frac))
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Colorize normalizes values over the grid's own min/max and returns a hex
// color per cell. A flat grid maps every cell to the palette midpoint.
func Colorize(values [][]float64, p Palette) [][]string {
	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range values {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	span := max - min

	colors := make([][]string, len(values))
	for i, row := range values {
		colors[i] = make([]string, len(row))
		for j, v := range row {
			t := 0.5
			if span > 0 {
				t = (v - min) / span
			}
			colors[i][j] = p.At(t)
		}
	}
	return colors
}

// Luminance reports the relative luminance of a palette position, used to
// pick a readable annotation color on top of a cell.
func (p Palette) Luminance(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	pos := t * float64(len(p)-1)
	lo := int(math.Floor(pos))
	if lo >= len(p)-1 {
		lo = len(p) - 2
	}
	frac := pos - float64(lo)
	a, b := p[lo], p[lo+1]
	r := float64(lerp(a.r, b.r, frac))
	g := float64(lerp(a.g, b.g, frac))
	bl := float64(lerp(a.b, b.b, frac))
	return (0.2126*r + 0.7152*g + 0.0722*bl) / 255.0
}
