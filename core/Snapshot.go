package core

import "fmt"

// Snapshot is the observable state of a match at the end of a tick.
type Snapshot struct {
	BallX, BallY   int
	LeftX, LeftY   int
	LeftScore      int
	RightX, RightY int
	RightScore     int
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		BallX:      int(m.Ball.X),
		BallY:      int(m.Ball.Y),
		LeftX:      int(m.Left.X),
		LeftY:      int(m.Left.Y),
		LeftScore:  m.Score.Left,
		RightX:     int(m.Right.X),
		RightY:     int(m.Right.Y),
		RightScore: m.Score.Right,
	}
}

//ballX, ballY, player1X, player1Y, player1Score, player2X, player2Y, player2Score
func (s Snapshot) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d", s.BallX, s.BallY,
		s.LeftX, s.LeftY, s.LeftScore, s.RightX, s.RightY, s.RightScore)
}
