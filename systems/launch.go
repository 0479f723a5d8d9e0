// Package systems contains ECS systems and the launch math for the planes.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// HeadingOffset rotates atan2's "east = 0°" into the sprite's "up = 0°".
const HeadingOffset = 90.0

// Launch converts a drag vector into a velocity and a heading in degrees.
// velocity = drag / scale, heading = atan2(drag.y, drag.x) in degrees + 90.
// A zero drag yields zero velocity and a 90° heading.
func Launch(drag r2.Vec, scale float64) (velocity r2.Vec, heading float64) {
	velocity = r2.Vec{X: drag.X / scale, Y: drag.Y / scale}
	heading = math.Atan2(drag.Y, drag.X)*180/math.Pi + HeadingOffset
	return velocity, heading
}
