package core

// Point is a position on the field.
type Point struct {
	X, Y float64
}

// Velocity is the per-tick displacement of the ball.
type Velocity struct {
	DX, DY int
}

// GameObject is an axis-aligned box on the field. X, Y is the top-left corner.
type GameObject struct {
	X, Y          float64
	Width, Height float64
}

func (o GameObject) Left() float64   { return o.X }
func (o GameObject) Right() float64  { return o.X + o.Width }
func (o GameObject) Top() float64    { return o.Y }
func (o GameObject) Bottom() float64 { return o.Y + o.Height }

func (o GameObject) TopLeft() Point {
	return Point{X: o.X, Y: o.Y}
}

func (o GameObject) Center() Point {
	return Point{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
}

func (o *GameObject) SetCenter(p Point) {
	o.X = p.X - o.Width/2
	o.Y = p.Y - o.Height/2
}

func (o *GameObject) SetBottom(y float64) {
	o.Y = y - o.Height
}

func (o *GameObject) Move(dx, dy float64) {
	o.X += dx
	o.Y += dy
}

// Intersects reports whether the two boxes overlap. Boxes that only share an
// edge do not intersect.
func (o GameObject) Intersects(other GameObject) bool {
	if o.X >= other.Right() || other.X >= o.Right() {
		return false
	}
	if o.Y >= other.Bottom() || other.Y >= o.Bottom() {
		return false
	}
	return true
}
