package core

import "errors"

// ErrZeroVelocity is returned when a velocity component is zero and the
// trajectory slope is undefined.
var ErrZeroVelocity = errors.New("velocity has a zero component")

// PredictIntercept returns the y coordinate at which a ball at pos moving
// with vel crosses the vertical line x = targetX. side is the side of the
// field the target line belongs to.
//
// At most one reflection off the top or bottom edge is modelled. When the
// ball would need to bounce more than once before arriving, the result is an
// approximation and may lie outside the field.
func PredictIntercept(pos Point, vel Velocity, targetX float64, side Side) (float64, error) {
	if vel.DX == 0 || vel.DY == 0 {
		return 0, ErrZeroVelocity
	}

	slope := float64(vel.DY) / float64(vel.DX)

	contact := horizontalContactPoint(pos, vel, slope)
	if bouncesBefore(contact.X, targetX, side) {
		return verticalContactPoint(targetX, contact, -slope).Y, nil
	}
	return verticalContactPoint(targetX, pos, slope).Y, nil
}

// horizontalContactPoint is where the unreflected line meets the top or
// bottom edge, whichever the ball is heading for.
func horizontalContactPoint(pos Point, vel Velocity, slope float64) Point {
	y := 0.0
	if vel.DY > 0 {
		y = FieldHeight
	}
	x := (y-pos.Y)/slope + pos.X
	return Point{X: x, Y: y}
}

func verticalContactPoint(targetX float64, from Point, slope float64) Point {
	y := slope*(targetX-from.X) + from.Y
	return Point{X: targetX, Y: y}
}

func bouncesBefore(contactX, targetX float64, side Side) bool {
	if side == Right {
		return contactX < targetX
	}
	return contactX > targetX
}
