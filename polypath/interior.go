package polypath

import "golang.org/x/image/math/fixed"

// Interior returns true if the point (x,y) is inside the path, using
// the given fill rule. Every sub-path is implicitly closed.
// Points exactly on an edge may be reported either way.
func (p Path) Interior(x, y float64, rule FillRule) bool {
	winding := 0
	for _, poly := range p.subPaths() {
		n := len(poly)
		for i := range poly {
			x0, y0 := toFloat(poly[i])
			x1, y1 := toFloat(poly[(i+1)%n])
			if y0 <= y {
				if y1 > y && cross(x0, y0, x1, y1, x, y) > 0 {
					winding++ // upward crossing, point on the left
				}
			} else if y1 <= y && cross(x0, y0, x1, y1, x, y) < 0 {
				winding-- // downward crossing, point on the right
			}
		}
	}
	if rule == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// subPaths splits the path into its vertex lists
func (p Path) subPaths() [][]fixed.Point26_6 {
	var (
		out [][]fixed.Point26_6
		cur []fixed.Point26_6
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			flush()
			cur = append(cur, fixed.Point26_6(op))
		case LineTo:
			cur = append(cur, fixed.Point26_6(op))
		case Close:
			flush()
		}
	}
	flush()
	return out
}

func toFloat(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// cross is positive when (x,y) lies on the left of the segment (x0,y0)-(x1,y1)
func cross(x0, y0, x1, y1, x, y float64) float64 {
	return (x1-x0)*(y-y0) - (x-x0)*(y1-y0)
}
