// path.go

package svgpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Path accumulates SVG path commands in a text buffer. Every command method
// appends one complete command and returns the same *Path for chaining;
// String renders the data accumulated so far.
//
// Like the strings.Builder it wraps, a Path must not be copied after first
// use. Each Path belongs to a single call chain.
type Path struct {
	buf strings.Builder
}

// New creates an empty Path.
func New() *Path {
	return &Path{}
}

// String returns the path data accumulated so far. Calling it mid-chain is
// fine: it does not affect later commands, and repeated calls return
// identical output.
func (p *Path) String() string {
	return p.buf.String()
}

// MoveTo moves the current point to (x, y), starting a new subpath.
func (p *Path) MoveTo(x, y float32) *Path {
	fmt.Fprintf(&p.buf, "M %s %s", ftoa(x), ftoa(y))
	return p
}

// MoveBy moves the current point by (dx, dy), starting a new subpath.
func (p *Path) MoveBy(dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "m %s %s", ftoa(dx), ftoa(dy))
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	fmt.Fprintf(&p.buf, "L %s %s", ftoa(x), ftoa(y))
	return p
}

// LineBy draws a line of extent (dx, dy) from the current point.
func (p *Path) LineBy(dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "l %s %s", ftoa(dx), ftoa(dy))
	return p
}

// HorizontalLineTo draws a horizontal line from the current point to the
// given x coordinate.
func (p *Path) HorizontalLineTo(x float32) *Path {
	fmt.Fprintf(&p.buf, "H %s", ftoa(x))
	return p
}

// HorizontalLineBy draws a horizontal line of length dx from the current
// point.
func (p *Path) HorizontalLineBy(dx float32) *Path {
	fmt.Fprintf(&p.buf, "h %s", ftoa(dx))
	return p
}

// VerticalLineTo draws a vertical line from the current point to the given
// y coordinate.
func (p *Path) VerticalLineTo(y float32) *Path {
	fmt.Fprintf(&p.buf, "V %s", ftoa(y))
	return p
}

// VerticalLineBy draws a vertical line of length dy from the current point.
func (p *Path) VerticalLineBy(dy float32) *Path {
	fmt.Fprintf(&p.buf, "v %s", ftoa(dy))
	return p
}

// Close closes the current subpath with a line back to its initial point.
func (p *Path) Close() *Path {
	p.buf.WriteByte('Z')
	return p
}

// CubicBezierTo draws a cubic Bezier curve from the current point to (x, y)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicBezierTo(x1, y1, x2, y2, x, y float32) *Path {
	fmt.Fprintf(&p.buf, "C %s %s, %s %s, %s %s",
		ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), ftoa(x), ftoa(y))
	return p
}

// CubicBezierBy draws a cubic Bezier curve to the point (dx, dy) away from
// the current point, with control points (dx1, dy1) and (dx2, dy2) relative
// to the current point.
func (p *Path) CubicBezierBy(dx1, dy1, dx2, dy2, dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "c %s %s, %s %s, %s %s",
		ftoa(dx1), ftoa(dy1), ftoa(dx2), ftoa(dy2), ftoa(dx), ftoa(dy))
	return p
}

// SmoothCubicBezierTo draws a cubic Bezier curve from the current point to
// (x, y) with second control point (x2, y2). The first control point is the
// reflection of the previous cubic curve's second control point.
func (p *Path) SmoothCubicBezierTo(x2, y2, x, y float32) *Path {
	fmt.Fprintf(&p.buf, "S %s %s, %s %s", ftoa(x2), ftoa(y2), ftoa(x), ftoa(y))
	return p
}

// SmoothCubicBezierBy is the relative form of SmoothCubicBezierTo.
func (p *Path) SmoothCubicBezierBy(dx2, dy2, dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "s %s %s, %s %s", ftoa(dx2), ftoa(dy2), ftoa(dx), ftoa(dy))
	return p
}

// QuadraticBezierTo draws a quadratic Bezier curve from the current point to
// (x, y) with control point (x1, y1).
func (p *Path) QuadraticBezierTo(x1, y1, x, y float32) *Path {
	fmt.Fprintf(&p.buf, "Q %s %s, %s %s", ftoa(x1), ftoa(y1), ftoa(x), ftoa(y))
	return p
}

// QuadraticBezierBy draws a quadratic Bezier curve to the point (dx, dy)
// away from the current point, with control point (dx1, dy1) relative to
// the current point.
func (p *Path) QuadraticBezierBy(dx1, dy1, dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "q %s %s, %s %s", ftoa(dx1), ftoa(dy1), ftoa(dx), ftoa(dy))
	return p
}

// SmoothQuadraticBezierTo draws a quadratic Bezier curve from the current
// point to (x, y). The control point is the reflection of the previous
// quadratic curve's control point.
func (p *Path) SmoothQuadraticBezierTo(x, y float32) *Path {
	fmt.Fprintf(&p.buf, "T %s %s", ftoa(x), ftoa(y))
	return p
}

// SmoothQuadraticBezierBy is the relative form of SmoothQuadraticBezierTo.
func (p *Path) SmoothQuadraticBezierBy(dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "t %s %s", ftoa(dx), ftoa(dy))
	return p
}

// EllipticalArcTo draws an elliptical arc from the current point to (x, y).
// The ellipse has radii rx and ry, with its x-axis rotated by xrot degrees.
// Two radii and two endpoints leave up to four candidate arcs; the largeArc
// and sweep flags select which one is drawn.
func (p *Path) EllipticalArcTo(rx, ry, xrot float32, largeArc, sweep bool, x, y float32) *Path {
	fmt.Fprintf(&p.buf, "A %s %s %s %s %s %s %s",
		ftoa(rx), ftoa(ry), ftoa(xrot), flag(largeArc), flag(sweep), ftoa(x), ftoa(y))
	return p
}

// EllipticalArcBy draws an elliptical arc from the current point to the
// point (dx, dy) away. See EllipticalArcTo for the flag semantics.
func (p *Path) EllipticalArcBy(rx, ry, xrot float32, largeArc, sweep bool, dx, dy float32) *Path {
	fmt.Fprintf(&p.buf, "a %s %s %s %s %s %s %s",
		ftoa(rx), ftoa(ry), ftoa(xrot), flag(largeArc), flag(sweep), ftoa(dx), ftoa(dy))
	return p
}

// ftoa renders a coordinate as the shortest decimal string that parses back
// to the same float32. The 'f' format avoids exponent notation, which some
// SVG 1.1 consumers reject in path data.
func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// flag renders an arc flag as the digit "1" or "0".
func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
