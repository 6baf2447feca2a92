package core

import "image/color"

const (
	FieldWidth  = 900
	FieldHeight = 500

	BorderWidth = 4

	BallSize  = 15
	BallSpeed = 7

	PaddleWidth  = 5
	PaddleHeight = 60
	PaddleSpeed  = 6
	PaddleMargin = 10

	// AutoTriggerRatio is how far across the field, measured from the far
	// side, the ball must travel before the automatic paddle starts tracking it.
	AutoTriggerRatio = 0.65

	TicksPerSecond = 60
)

var (
	LeftPaddleStart  = Point{X: 40, Y: 250}
	RightPaddleStart = Point{X: 860, Y: 250}
)

var (
	ColorRetroBlue = color.RGBA{R: 44, G: 78, B: 114, A: 255}
	ColorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorRed       = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// Side is the half of the field a paddle or score belongs to.
type Side int

const (
	Left Side = iota
	Right
)

var sideName = map[Side]string{
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	return sideName[s]
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// SideOf classifies a horizontal coordinate against the field centre.
func SideOf(x float64) Side {
	if x < FieldWidth/2 {
		return Left
	}
	return Right
}

// Border is the dividing line drawn down the middle of the field.
type Border struct {
	GameObject
}

func NewBorder() *Border {
	return &Border{
		GameObject: GameObject{
			X:      FieldWidth/2 - BorderWidth/2,
			Y:      0,
			Width:  BorderWidth,
			Height: FieldHeight,
		},
	}
}

func (b *Border) Draw(s Surface) {
	s.FillRect(b.GameObject, ColorWhite)
}
