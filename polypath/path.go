// Implements an abstract representation of
// closed polygonal paths, which can then be consumed
// by painting drivers.
package polypath

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Operation groups the different path commands
type Operation interface {
	// add itself on the driver `d`
	drawTo(d Drawer)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

// starts a new sub-path at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(fixed.Point26_6(op))
}

func (op LineTo) drawTo(d Drawer) {
	d.Line(fixed.Point26_6(op))
}

func (op Close) drawTo(d Drawer) {
	d.Stop(true)
}

// Path describes a sequence of basic operations, which should not be nil
type Path []Operation

// Polygon returns the closed path going through `pts`.
// Less than two points do not enclose anything and yield an empty path.
func Polygon(pts []image.Point) Path {
	if len(pts) < 2 {
		return Path{}
	}
	p := make(Path, 0, len(pts)+1)
	p.Start(fixed.P(pts[0].X, pts[0].Y))
	for _, pt := range pts[1:] {
		p.Line(fixed.P(pt.X, pt.Y))
	}
	p.Stop(true)
	return p
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new sub-path at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current sub-path.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Bounds returns the smallest rectangle containing every point of the path.
// An empty path has zero bounds.
func (p Path) Bounds() fixed.Rectangle26_6 {
	var (
		out  fixed.Rectangle26_6
		seen bool
	)
	for _, op := range p {
		var pt fixed.Point26_6
		switch op := op.(type) {
		case MoveTo:
			pt = fixed.Point26_6(op)
		case LineTo:
			pt = fixed.Point26_6(op)
		default:
			continue
		}
		if !seen {
			out = fixed.Rectangle26_6{Min: pt, Max: pt}
			seen = true
			continue
		}
		// Rectangle26_6.Union drops degenerate rectangles, so grow by hand
		if pt.X < out.Min.X {
			out.Min.X = pt.X
		}
		if pt.Y < out.Min.Y {
			out.Min.Y = pt.Y
		}
		if pt.X > out.Max.X {
			out.Max.X = pt.X
		}
		if pt.Y > out.Max.Y {
			out.Max.Y = pt.Y
		}
	}
	return out
}
