// shapes.go

package svgpath

import (
	"log/slog"

	"github.com/chewxy/math32"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier curve.
const kappa = 0.5522847498

// Rect appends a closed rectangle with top-left corner (x, y).
func (p *Path) Rect(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundRect appends a closed rectangle with corners rounded at radius r.
// The radius is clamped to half the shorter side.
func (p *Path) RoundRect(x, y, w, h, r float32) *Path {
	r = math32.Min(r, math32.Min(w, h)/2)
	k := kappa * r

	return p.MoveTo(x+r, y).
		LineTo(x+w-r, y).
		CubicBezierTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r).
		LineTo(x+w, y+h-r).
		CubicBezierTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h).
		LineTo(x+r, y+h).
		CubicBezierTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r).
		LineTo(x, y+r).
		CubicBezierTo(x, y+r-k, x+r-k, y, x+r, y).
		Close()
}

// Circle appends a closed circle.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse appends a closed ellipse built from four cubic Bezier quadrants.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	kx := kappa * rx
	ky := kappa * ry

	return p.MoveTo(cx+rx, cy).
		CubicBezierTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicBezierTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicBezierTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubicBezierTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close()
}

// Polygon appends a closed regular polygon with the first vertex at the top.
// Fewer than 3 sides leaves the path unchanged.
func (p *Path) Polygon(cx, cy, radius float32, sides int) *Path {
	if sides < 3 {
		Logger().Warn("svgpath: Polygon needs at least 3 sides",
			slog.Int("sides", sides))
		return p
	}

	angleStep := 2 * math32.Pi / float32(sides)
	startAngle := float32(-math32.Pi / 2)

	for i := 0; i < sides; i++ {
		angle := startAngle + float32(i)*angleStep
		x := cx + radius*math32.Cos(angle)
		y := cy + radius*math32.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}

// Star appends a closed star with the given number of points, alternating
// between the outer and inner radius. Fewer than 3 points leaves the path
// unchanged.
func (p *Path) Star(cx, cy, outerRadius, innerRadius float32, points int) *Path {
	if points < 3 {
		Logger().Warn("svgpath: Star needs at least 3 points",
			slog.Int("points", points))
		return p
	}

	angleStep := math32.Pi / float32(points)
	startAngle := float32(-math32.Pi / 2)

	for i := 0; i < points*2; i++ {
		angle := startAngle + float32(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math32.Cos(angle)
		y := cy + r*math32.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}
