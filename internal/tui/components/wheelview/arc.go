package wheelview

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// sector rim thickness in braille dots
	rimThickness = 3
	// spokes start at this fraction of the radius so the hub stays open
	spokeInnerRatio = 0.3
)

// drawSector draws one wedge: the rim arc spanning [startDeg, endDeg]
// plus a radial spoke at the leading boundary.
// screen coords: 0°=right(3 o'clock), 90°=down(6 o'clock), 270°=up(12 o'clock)
func drawSector(canvas *drawille.Canvas, centerX, centerY, radius float64, startDeg, endDeg float64) {
	for t := range rimThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}
		midpointCircleArc(canvas, int(centerX), int(centerY), r, startDeg, endDeg)
	}
	drawSpoke(canvas, centerX, centerY, radius, startDeg)
}

// drawSpoke draws the radial boundary line at the given angle, from the
// hub edge out to the rim.
func drawSpoke(canvas *drawille.Canvas, centerX, centerY, radius float64, angleDeg float64) {
	var (
		rad   = angleDeg * math.Pi / 180
		cos   = math.Cos(rad)
		sin   = math.Sin(rad)
		inner = radius * spokeInnerRatio
		outer = radius - 1
	)

	// step by half-dots so the line has no gaps
	steps := int((outer - inner) * 2)
	for i := 0; i <= steps; i++ {
		r := inner + (outer-inner)*float64(i)/float64(steps)
		x := int(math.Round(centerX + cos*r))
		y := int(math.Round(centerY + sin*r))
		canvas.Set(x, y)
	}
}

// midpointCircleArc draws an arc using the midpoint circle algorithm.
// integer arithmetic keeps the rim free of floating-point gaps.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func midpointCircleArc(canvas *drawille.Canvas, cx, cy, radius int, startDeg, endDeg float64) {
	x := radius
	y := 0
	d := 1 - radius // decision parameter

	for x >= y {
		drawOctantPoints(canvas, cx, cy, x, y, startDeg, endDeg)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// drawOctantPoints draws the 8 symmetric circle points that fall within
// the angle range.
func drawOctantPoints(canvas *drawille.Canvas, cx, cy, x, y int, startDeg, endDeg float64) {
	points := [][2]int{
		{cx + x, cy - y},
		{cx + y, cy - x},
		{cx - y, cy - x},
		{cx - x, cy - y},
		{cx - x, cy + y},
		{cx - y, cy + x},
		{cx + y, cy + x},
		{cx + x, cy + y},
	}

	for _, p := range points {
		if isInArcRange(cx, cy, p[0], p[1], startDeg, endDeg) {
			canvas.Set(p[0], p[1])
		}
	}
}

// isInArcRange checks whether a point's angle from the center falls in
// [startDeg, endDeg]. startDeg is in [0, 360); endDeg may exceed 360 when
// the sector wraps past 12 o'clock.
func isInArcRange(cx, cy, px, py int, startDeg, endDeg float64) bool {
	// in screen coords Y grows downward, so (py-cy) is used directly
	dx := float64(px - cx)
	dy := float64(py - cy)

	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	if endDeg > 360 {
		// wrapped sector: in range when past start OR before the wrapped end
		return angle >= startDeg || angle <= endDeg-360
	}
	return angle >= startDeg && angle <= endDeg
}
