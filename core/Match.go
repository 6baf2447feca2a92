package core

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"pong/logger"

	"github.com/google/uuid"
)

// Match owns all state of one running game: the ball, both paddles and the
// score. The left paddle follows the keyboard, the right one is automatic.
type Match struct {
	ID       uuid.UUID
	Ball     *Ball
	Left     *Paddle
	Right    *Paddle
	Score    Score
	Bindings Bindings

	TickInterval time.Duration
	Ticks        int

	drawables []Drawable
}

func NewMatch(bindings Bindings, rng *rand.Rand) *Match {
	m := &Match{
		ID:           uuid.New(),
		Ball:         NewBall(rng),
		Left:         NewPaddle(LeftPaddleStart),
		Right:        NewPaddle(RightPaddleStart),
		Bindings:     bindings,
		TickInterval: time.Second / TicksPerSecond,
	}
	m.drawables = []Drawable{
		NewBorder(),
		NewScoreBoard(&m.Score),
		m.Left,
		m.Right,
		m.Ball,
	}
	return m
}

// Tick advances the match by one step.
func (m *Match) Tick(in Input) Outcome {
	m.Ticks++

	m.Left.MoveManual(in, m.Bindings)

	out := m.Ball.Advance(m.Left, m.Right)
	if out.Exited {
		m.Score.Add(out.Scorer)
		logger.Log.Info(fmt.Sprintf(logger.ScoreMsg, out.Scorer, m.Score.Left, m.Score.Right))
		logger.Log.Debug(fmt.Sprintf(logger.SnapshotMsg, m.Snapshot()))
		m.Ball.Reset()
	}

	m.Right.MoveAuto(m.Ball)
	return out
}

// Draw renders the whole field onto s.
func (m *Match) Draw(s Surface) {
	s.Fill(ColorRetroBlue)
	for _, d := range m.drawables {
		d.Draw(s)
	}
}

// Run ticks the match at a fixed rate and calls render after every tick.
// It returns when in reports a quit request, when ctx is done or when render
// fails. Quit requests are only honoured between ticks.
func (m *Match) Run(ctx context.Context, in Input, render func(*Match) error) error {
	ticker := time.NewTicker(m.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if in.QuitRequested() {
			logger.Log.Info(logger.QuitRequestedMsg)
			return nil
		}

		m.Tick(in)
		if err := render(m); err != nil {
			return fmt.Errorf("render tick %d: %w", m.Ticks, err)
		}
	}
}
