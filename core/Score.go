package core

import "strconv"

// Score holds the points of both sides. It only ever grows.
type Score struct {
	Left, Right int
}

func (s *Score) Add(side Side) {
	if side == Left {
		s.Left += 1
	} else {
		s.Right += 1
	}
}

func (s Score) Of(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// ScoreBoard draws the two score numerals near the top of the field.
type ScoreBoard struct {
	score *Score
}

func NewScoreBoard(score *Score) *ScoreBoard {
	return &ScoreBoard{score: score}
}

func (sb *ScoreBoard) Draw(s Surface) {
	s.DrawText(strconv.Itoa(sb.score.Left), Point{X: FieldWidth / 4, Y: 10}, ColorWhite)
	s.DrawText(strconv.Itoa(sb.score.Right), Point{X: FieldWidth / 4 * 3, Y: 10}, ColorWhite)
}
