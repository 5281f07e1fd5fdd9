// shapes_test.go

package svgpath

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	s := New().Rect(0, 0, 10, 10).String()
	assert.Equal(t, "M 0 0L 10 0L 10 10L 0 10Z", s)
}

func TestRect_AppendsToChain(t *testing.T) {
	s := New().MoveTo(1, 1).Rect(0, 0, 2, 2).String()
	assert.True(t, strings.HasPrefix(s, "M 1 1M 0 0"))
}

func TestRoundRect_CommandSequence(t *testing.T) {
	cmds := splitCommands(t, New().RoundRect(0, 0, 100, 50, 10).String())

	var letters strings.Builder
	for _, c := range cmds {
		letters.WriteByte(c[0])
	}
	assert.Equal(t, "MLCLCLCLCZ", letters.String())

	move := args(t, cmds[0])
	assert.InDelta(t, 10, move[0], tol)
	assert.InDelta(t, 0, move[1], tol)
}

func TestRoundRect_ClampsRadius(t *testing.T) {
	// Radius larger than half the shorter side clamps to it.
	cmds := splitCommands(t, New().RoundRect(0, 0, 10, 10, 20).String())
	move := args(t, cmds[0])
	assert.InDelta(t, 5, move[0], tol)
}

func TestCircle(t *testing.T) {
	cmds := splitCommands(t, New().Circle(50, 50, 25).String())
	require.Len(t, cmds, 6) // move, four quadrants, close
	assert.Equal(t, byte('M'), cmds[0][0])
	for _, c := range cmds[1:5] {
		assert.Equal(t, byte('C'), c[0])
	}
	assert.Equal(t, "Z", cmds[5])

	// Starts at the rightmost point.
	move := args(t, cmds[0])
	assert.InDelta(t, 75, move[0], tol)
	assert.InDelta(t, 50, move[1], tol)
}

func TestEllipse_QuadrantEndpoints(t *testing.T) {
	cmds := splitCommands(t, New().Ellipse(0, 0, 30, 20).String())
	require.Len(t, cmds, 6)

	// Endpoints of the four quadrant curves are the axis extremes.
	wants := [][2]float32{{0, 20}, {-30, 0}, {0, -20}, {30, 0}}
	for i, want := range wants {
		a := args(t, cmds[i+1])
		require.Len(t, a, 6)
		assert.InDelta(t, want[0], a[4], tol)
		assert.InDelta(t, want[1], a[5], tol)
	}
}

func TestPolygon(t *testing.T) {
	cmds := splitCommands(t, New().Polygon(50, 50, 25, 5).String())
	require.Len(t, cmds, 6) // move, four lines, close
	assert.Equal(t, "Z", cmds[5])

	// First vertex is at the top.
	move := args(t, cmds[0])
	assert.InDelta(t, 50, move[0], tol)
	assert.InDelta(t, 25, move[1], tol)
}

func TestPolygon_TooFewSides(t *testing.T) {
	p := New().MoveTo(1, 2)
	before := p.String()
	q := p.Polygon(0, 0, 10, 2)
	assert.Same(t, p, q)
	assert.Equal(t, before, p.String())
}

func TestStar(t *testing.T) {
	cmds := splitCommands(t, New().Star(0, 0, 30, 15, 5).String())
	require.Len(t, cmds, 11) // move, nine lines, close

	// Vertices alternate between the outer and inner radius.
	move := args(t, cmds[0])
	assert.InDelta(t, 30, math32.Hypot(move[0], move[1]), tol)
	inner := args(t, cmds[1])
	assert.InDelta(t, 15, math32.Hypot(inner[0], inner[1]), tol)
}

func TestStar_TooFewPoints(t *testing.T) {
	p := New()
	p.Star(0, 0, 10, 5, 1)
	assert.Equal(t, "", p.String())
}
