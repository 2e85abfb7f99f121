package polypath

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// FillRule selects how overlapping sub-paths decide
// which points are inside.
type FillRule uint8

const (
	NonZero FillRule = iota // default, as in SVG
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "<unknown FillRule>"
	}
}

// Drawer receives the points of a path and paints them.
// It does not need to know where the points come from.
type Drawer interface {
	// Clear resets the internal state, before a new path is painted.
	Clear()

	// Start begins a new sub-path at `a`.
	Start(a fixed.Point26_6)

	// Line adds a segment from the current point to `b`.
	Line(b fixed.Point26_6)

	// Stop ends the current sub-path, joining it back to its start
	// point when `closeLoop` is true.
	Stop(closeLoop bool)

	// SetColor sets the paint used by the next Draw.
	SetColor(c color.Color)

	// Draw paints the accumulated path.
	Draw()
}

// Filler is a Drawer painting the inside of closed paths.
type Filler interface {
	Drawer

	// SetWinding selects the non-zero rule when true,
	// and the even-odd rule otherwise.
	SetWinding(useNonZeroWinding bool)
}

// FillTo replays the path on `f` and fills it with `c`.
// No outline is drawn.
func (p Path) FillTo(f Filler, c color.Color, rule FillRule) {
	f.Clear()
	f.SetWinding(rule == NonZero)

	for _, op := range p {
		op.drawTo(f)
	}
	f.Stop(false)

	f.SetColor(c)
	f.Draw()
	f.SetWinding(true) // default is true
}
