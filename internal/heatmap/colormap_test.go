package heatmap

import (
	"math"
	"testing"
)

func TestPaletteEndpoints(t *testing.T) {
	if got := Cividis.At(0); got != "#00204d" {
		t.Fatalf("cividis low end = %s", got)
	}
	if got := Cividis.At(1); got != "#ffea46" {
		t.Fatalf("cividis high end = %s", got)
	}
	if got := Magma.At(0); got != "#000004" {
		t.Fatalf("magma low end = %s", got)
	}
	if got := Magma.At(1); got != "#fcfdbf" {
		t.Fatalf("magma high end = %s", got)
	}
}

func TestPaletteClamps(t *testing.T) {
	if Cividis.At(-3) != Cividis.At(0) {
		t.Fatal("values below 0 should clamp to the low end")
	}
	if Cividis.At(7) != Cividis.At(1) {
		t.Fatal("values above 1 should clamp to the high end")
	}
	if Cividis.At(math.NaN()) != Cividis.At(0) {
		t.Fatal("NaN should fall to the low end")
	}
}

func TestPaletteMidStops(t *testing.T) {
	// t=0.5 lands exactly on the third anchor of a five-stop palette.
	if got := Cividis.At(0.5); got != "#666970" {
		t.Fatalf("cividis midpoint = %s", got)
	}
	if got := Magma.At(0.25); got != "#51127c" {
		t.Fatalf("magma quarter stop = %s", got)
	}
}

func TestColorize(t *testing.T) {
	values := [][]float64{
		{0, 5},
		{10, 5},
	}
	colors := Colorize(values, Magma)

	if len(colors) != 2 || len(colors[0]) != 2 {
		t.Fatalf("color grid shape mismatch: %v", colors)
	}
	if colors[0][0] != Magma.At(0) {
		t.Fatalf("min cell should map to palette low end, got %s", colors[0][0])
	}
	if colors[1][0] != Magma.At(1) {
		t.Fatalf("max cell should map to palette high end, got %s", colors[1][0])
	}
	if colors[0][1] != Magma.At(0.5) {
		t.Fatalf("mid cell should map to palette midpoint, got %s", colors[0][1])
	}
}

func TestColorizeFlatGrid(t *testing.T) {
	values := [][]float64{{3, 3}, {3, 3}}
	colors := Colorize(values, Cividis)

	want := Cividis.At(0.5)
	for i := range colors {
		for j := range colors[i] {
			if colors[i][j] != want {
				t.Fatalf("flat grid cell [%d][%d] = %s, want midpoint %s", i, j, colors[i][j], want)
			}
		}
	}
}

func TestLuminanceOrdering(t *testing.T) {
	// Both palettes run dark to light.
	if Magma.Luminance(0) >= Magma.Luminance(1) {
		t.Fatal("magma luminance should increase across the palette")
	}
	if Cividis.Luminance(0) >= Cividis.Luminance(1) {
		t.Fatal("cividis luminance should increase across the palette")
	}
}
