// Implements a raster backend to fill polygonal paths,
// by wrapping rasterx.
package raster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/leaficon/polypath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ polypath.Filler = (*Renderer)(nil) // assert interface conformance

// Renderer paints onto an RGBA image with hard edges: a pixel is
// painted when its center is inside the path, under the current
// fill rule, and left untouched otherwise.
//
// rasterx scans the path into a coverage mask, which selects the
// candidate pixels; the center test then decides each of them.
type Renderer struct {
	dst    *image.RGBA
	mask   *image.Alpha
	filler *rasterx.Filler

	path    polypath.Path // copy of the points sent to the filler
	rule    polypath.FillRule
	src     color.Color
	uniform *image.Uniform
}

// NewRenderer returns a renderer drawing on the whole `dst` image.
func NewRenderer(dst *image.RGBA) *Renderer {
	b := dst.Bounds()
	mask := image.NewAlpha(b)
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), mask, b)
	return &Renderer{
		dst:     dst,
		mask:    mask,
		filler:  rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		src:     color.Transparent,
		uniform: image.NewUniform(color.Transparent),
	}
}

// NewCanvas returns a fully transparent image of the given size.
func NewCanvas(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// FillPolygon fills the inside of `p` on `dst` with `c`.
func FillPolygon(dst *image.RGBA, p polypath.Path, c color.Color, rule polypath.FillRule) {
	p.FillTo(NewRenderer(dst), c, rule)
}

func (rd *Renderer) Clear() {
	rd.filler.Clear()
	rd.path.Clear()
	for i := range rd.mask.Pix {
		rd.mask.Pix[i] = 0
	}
}

// SetWinding records the fill rule. The rasterx scanner only
// knows the non-zero rule, so the even-odd rule is applied by the
// center test in Draw.
func (rd *Renderer) SetWinding(useNonZeroWinding bool) {
	rd.rule = polypath.EvenOdd
	if useNonZeroWinding {
		rd.rule = polypath.NonZero
	}
	rd.filler.SetWinding(useNonZeroWinding)
}

func (rd *Renderer) SetColor(c color.Color) {
	rd.src = c
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.path.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.path.Line(b)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.path.Stop(closeLoop)
}

// Draw composites the current color over every pixel whose center
// is inside the accumulated path.
func (rd *Renderer) Draw() {
	rd.filler.SetColor(color.Opaque)
	rd.filler.Draw()

	// binarize the coverage: a pixel with no coverage at all cannot
	// have its center inside
	b := rd.mask.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := rd.mask.PixOffset(x, y)
			if rd.mask.Pix[i] == 0 {
				continue
			}
			if rd.path.Interior(float64(x)+0.5, float64(y)+0.5, rd.rule) {
				rd.mask.Pix[i] = 0xff
			} else {
				rd.mask.Pix[i] = 0
			}
		}
	}

	rd.uniform.C = rd.src
	draw.DrawMask(rd.dst, b, rd.uniform, image.Point{}, rd.mask, b.Min, draw.Over)
}
