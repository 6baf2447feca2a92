package core

type Paddle struct {
	GameObject
	Speed float64
	Side  Side
}

// NewPaddle places a paddle with its top-left corner at topLeft. The side is
// fixed from the starting position.
func NewPaddle(topLeft Point) *Paddle {
	return &Paddle{
		GameObject: GameObject{
			X:      topLeft.X,
			Y:      topLeft.Y,
			Width:  PaddleWidth,
			Height: PaddleHeight,
		},
		Speed: PaddleSpeed,
		Side:  SideOf(topLeft.X),
	}
}

func (p *Paddle) upperBound() float64 {
	return PaddleMargin
}

func (p *Paddle) lowerBound() float64 {
	return FieldHeight - PaddleMargin - p.Height
}

// NearEdge is the x coordinate of the face the ball strikes.
func (p *Paddle) NearEdge() float64 {
	if p.Side == Left {
		return p.Right()
	}
	return p.Left()
}

// MoveManual moves the paddle from the held bindings. Both checks look at the
// position the paddle had at the start of the tick; a step never crosses the
// bound it was checked against.
func (p *Paddle) MoveManual(in Input, b Bindings) {
	top := p.Top()
	if in.Pressed(b.Up) && top > p.upperBound() {
		p.Y = max(p.Y-p.Speed, p.upperBound())
	}
	if in.Pressed(b.Down) && top < p.lowerBound() {
		p.Y = min(p.Y+p.Speed, p.lowerBound())
	}
}

// MoveAuto steps the paddle towards the predicted intercept when the ball is
// approaching and past the trigger line, otherwise towards the field centre.
func (p *Paddle) MoveAuto(ball *Ball) {
	target := p.Target(ball)

	if p.Top() < target {
		p.Y = min(p.Top()+p.Speed, target, p.lowerBound())
	}
	if p.Bottom() > target {
		p.SetBottom(max(p.Bottom()-p.Speed, target, p.upperBound()+p.Height))
	}
}

// Target is the y coordinate the automatic controller steers towards.
func (p *Paddle) Target(ball *Ball) float64 {
	if !p.tracking(ball) {
		return FieldHeight / 2
	}
	y, err := PredictIntercept(ball.TopLeft(), ball.Velocity, p.NearEdge(), p.Side)
	if err != nil {
		return FieldHeight / 2
	}
	return y
}

func (p *Paddle) tracking(ball *Ball) bool {
	trigger := FieldWidth * AutoTriggerRatio
	if p.Side == Right {
		return ball.Velocity.DX > 0 && ball.X > trigger
	}
	return ball.Velocity.DX < 0 && ball.X < FieldWidth-trigger
}

func (p *Paddle) Draw(s Surface) {
	s.DrawSprite(SpritePaddle, p.GameObject)
}
