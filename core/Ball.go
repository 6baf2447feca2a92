package core

import "math/rand"

// Outcome reports what happened to the ball during one tick.
type Outcome struct {
	WallBounce   bool
	PaddleBounce bool
	Exited       bool
	// Scorer is only meaningful when Exited is set.
	Scorer Side
}

type Ball struct {
	GameObject
	Velocity Velocity

	rng *rand.Rand
}

// NewBall returns a ball centred on the field moving down and to the right.
func NewBall(rng *rand.Rand) *Ball {
	b := &Ball{
		GameObject: GameObject{Width: BallSize, Height: BallSize},
		Velocity:   Velocity{DX: BallSpeed, DY: BallSpeed},
		rng:        rng,
	}
	b.SetCenter(Point{X: FieldWidth / 2, Y: FieldHeight / 2})
	return b
}

// Advance moves the ball one tick. When the ball leaves the field sideways
// the outcome names the side that scores and paddle collisions are not
// checked; the caller is expected to Reset the ball.
func (b *Ball) Advance(left, right *Paddle) Outcome {
	var out Outcome

	b.Move(float64(b.Velocity.DX), float64(b.Velocity.DY))

	if (b.Top() <= 0 && b.Velocity.DY < 0) || (b.Bottom() >= FieldHeight && b.Velocity.DY > 0) {
		b.Velocity.DY = -b.Velocity.DY
		out.WallBounce = true
	}

	if b.Left() <= 0 || b.Right() >= FieldWidth {
		out.Exited = true
		out.Scorer = Right
		if b.Right() >= FieldWidth {
			out.Scorer = Left
		}
		return out
	}

	if b.hits(left) || b.hits(right) {
		b.Velocity.DX = -b.Velocity.DX
		out.PaddleBounce = true
	}
	return out
}

// hits reports a collision with p while the ball is still heading towards it,
// so a ball overlapping a paddle for several ticks is reflected only once.
func (b *Ball) hits(p *Paddle) bool {
	if p == nil || !b.Intersects(p.GameObject) {
		return false
	}
	if p.Side == Left {
		return b.Velocity.DX < 0
	}
	return b.Velocity.DX > 0
}

// Reset centres the ball and picks a new random sign for each velocity
// component. Magnitudes are unchanged.
func (b *Ball) Reset() {
	b.SetCenter(Point{X: FieldWidth / 2, Y: FieldHeight / 2})
	b.Velocity.DX *= b.randomSign()
	b.Velocity.DY *= b.randomSign()
}

func (b *Ball) randomSign() int {
	if b.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

func (b *Ball) Draw(s Surface) {
	s.FillEllipse(b.GameObject, ColorWhite)
}
