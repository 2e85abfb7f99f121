// Package leaf draws the autumn leaf logo and exports it
// as a multi-resolution icon.
package leaf

import (
	"image"
	"image/color"
	"io"

	"github.com/benoitkugler/leaficon/icon"
	"github.com/benoitkugler/leaficon/polypath"
	"github.com/benoitkugler/leaficon/raster"
	"github.com/pkg/errors"
)

const (
	// CanvasSize is the width and height of the drawing surface, in pixels.
	CanvasSize = 256

	// OutputPath is where the command line tool writes the icon.
	OutputPath = "logo.ico"
)

// Points is the outline of the leaf, clockwise from the top tip.
var Points = []image.Point{
	{128, 20}, // top tip
	{150, 80},
	{210, 60}, // right top tip
	{170, 110},
	{220, 160}, // right mid tip
	{150, 160},
	{160, 240}, // stem bottom
	{140, 240},
	{128, 200}, // stem top
	{116, 240},
	{96, 240},
	{106, 160},
	{36, 160}, // left mid tip
	{86, 110},
	{46, 60}, // left top tip
	{106, 80},
}

// Fill is the autumn red (#D94E41) of the leaf.
var Fill = color.RGBA{R: 0xD9, G: 0x4E, B: 0x41, A: 0xFF}

// Sizes are the icon entries, in pixels.
var Sizes = append([]int(nil), icon.DefaultSizes...)

// Path returns the closed outline of the leaf.
func Path() polypath.Path {
	return polypath.Polygon(Points)
}

// Draw returns a new transparent canvas with the leaf filled on it.
func Draw() *image.RGBA {
	img := raster.NewCanvas(CanvasSize, CanvasSize)
	raster.FillPolygon(img, Path(), Fill, polypath.NonZero)
	return img
}

// Generate draws the leaf and writes it to `w` as an ICO file.
func Generate(w io.Writer) error {
	return errors.Wrap(icon.Encode(w, Draw(), Sizes), "leaf")
}

// GenerateFile draws the leaf and saves it as an ICO file.
func GenerateFile(name string) error {
	return errors.Wrap(icon.WriteFile(name, Draw(), Sizes), "leaf")
}
