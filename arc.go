// arc.go

package svgpath

import (
	"log/slog"

	"github.com/chewxy/math32"
)

// PartialCircle creates a Path drawing the circular arc that begins
// startAngle radians around the circle with the given center and radius and
// spans arcAngle radians. Angles follow SVG's y-down convention: increasing
// angles move counterclockwise on screen, and a negative arcAngle draws
// clockwise (sweep flag set).
//
// A single arc command cannot span more than half a circle unambiguously
// under the large-arc/sweep flag scheme, so spans wider than pi radians are
// emitted as two arc commands.
func PartialCircle(cx, cy, r, startAngle, arcAngle float32) *Path {
	p := New().MoveTo(
		cx+r*math32.Cos(startAngle),
		cy-r*math32.Sin(startAngle),
	)

	sweep := arcAngle < 0
	mid := startAngle + math32.Copysign(math32.Min(math32.Abs(arcAngle), math32.Pi), arcAngle)
	p.EllipticalArcTo(r, r, 0, false, sweep,
		cx+r*math32.Cos(mid), cy-r*math32.Sin(mid))

	if math32.Abs(arcAngle) > math32.Pi {
		Logger().Debug("svgpath: arc span exceeds half circle, splitting",
			slog.Float64("arcAngle", float64(arcAngle)))
		end := startAngle + arcAngle
		p.EllipticalArcTo(r, r, 0, false, sweep,
			cx+r*math32.Cos(end), cy-r*math32.Sin(end))
	}

	return p
}
