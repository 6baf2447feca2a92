package terminal

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"pong/core"
	"pong/logger"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(90, 50)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestRenderPlacesObjects(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	term := NewWithScreen(screen)
	m := core.NewMatch(core.DefaultBindings(), rand.New(rand.NewSource(1)))

	require.NoError(t, term.Render(m))

	assert.Equal(t, rune(PaddleSymbol), runeAt(screen, 4, 25), "left paddle")
	assert.Equal(t, rune(PaddleSymbol), runeAt(screen, 4, 30), "left paddle spans its height")
	assert.Equal(t, rune(PaddleSymbol), runeAt(screen, 86, 25), "right paddle")
	assert.Equal(t, rune(BallSymbol), runeAt(screen, 45, 25), "ball")
	assert.Equal(t, rune(BorderSymbol), runeAt(screen, 44, 10), "border")
	assert.Equal(t, rune(BallSymbol), runeAt(screen, 21, 1), "left score glyph")
	assert.Equal(t, rune(BallSymbol), runeAt(screen, 66, 1), "right score glyph")
	assert.Equal(t, ' ', runeAt(screen, 10, 40), "empty field")
}

func TestKeyStateFirstPressBridgesRepeatDelay(t *testing.T) {
	now := time.Unix(0, 0)
	ks := newKeyState(func() time.Time { return now })

	assert.False(t, ks.Pressed(core.KeyW))
	assert.False(t, ks.Pressed(core.KeyUnknown))

	ks.Press(core.KeyW)
	assert.True(t, ks.Pressed(core.KeyW))

	// A typical terminal waits a few hundred milliseconds before repeating.
	now = now.Add(400 * time.Millisecond)
	assert.True(t, ks.Pressed(core.KeyW), "Key stays held until auto repeat starts")

	now = now.Add(FirstHoldWindow)
	assert.False(t, ks.Pressed(core.KeyW), "Key is released when no repeat arrives")
}

func TestKeyStateRepeatsUseShortWindow(t *testing.T) {
	now := time.Unix(0, 0)
	ks := newKeyState(func() time.Time { return now })

	ks.Press(core.KeyW)
	now = now.Add(400 * time.Millisecond)
	ks.Press(core.KeyW)

	now = now.Add(RepeatHoldWindow - time.Millisecond)
	assert.True(t, ks.Pressed(core.KeyW))

	now = now.Add(time.Millisecond)
	assert.False(t, ks.Pressed(core.KeyW), "Key is released soon after repeats stop")
}

func TestKeyStateNewKeyReleasesPrevious(t *testing.T) {
	now := time.Unix(0, 0)
	ks := newKeyState(func() time.Time { return now })

	ks.Press(core.KeyW)
	now = now.Add(10 * time.Millisecond)
	ks.Press(core.KeyS)

	assert.False(t, ks.Pressed(core.KeyW), "Only the last pressed key auto repeats")
	assert.True(t, ks.Pressed(core.KeyS))

	now = now.Add(RepeatHoldWindow)
	assert.True(t, ks.Pressed(core.KeyS), "A different key starts with the long window")
}

func TestKeyStateQuit(t *testing.T) {
	ks := newKeyState(time.Now)

	assert.False(t, ks.QuitRequested())
	ks.RequestQuit()
	assert.True(t, ks.QuitRequested())
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want core.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.KeyW},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), core.KeyW},
		{tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), core.Key5},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.KeyUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.KeyDown},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.KeyReturn},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), core.KeyF1},
		{tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), core.KeyF12},
		{tcell.NewEventKey(tcell.KeyF13, 0, tcell.ModNone), core.KeyUnknown},
		{tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), core.KeyPageUp},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), core.KeyPageDown},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), core.KeyHome},
		{tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), core.KeyDelete},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), core.KeyBackspace},
		{tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), core.KeyComma},
		{tcell.NewEventKey(tcell.KeyRune, ';', tcell.ModNone), core.KeySemicolon},
		{tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModShift), core.KeyUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keyFromEvent(tt.ev), tt.ev.Name())
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newSimScreen(t)
	term := NewWithScreen(screen)

	m := core.NewMatch(core.DefaultBindings(), rand.New(rand.NewSource(1)))
	m.TickInterval = time.Millisecond

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, term.Run(ctx, m), "Escape should end the match cleanly")
}

func TestRunRestoresConsoleEcho(t *testing.T) {
	logger.Log.SetConsole(true)
	defer logger.Log.SetConsole(false)

	screen := newSimScreen(t)
	term := NewWithScreen(screen)

	m := core.NewMatch(core.DefaultBindings(), rand.New(rand.NewSource(1)))
	m.TickInterval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_ = term.Run(ctx, m)

	assert.True(t, logger.Log.Console(), "Console echo is back once the screen is released")
}

func TestRunStopsOnContext(t *testing.T) {
	screen := newSimScreen(t)
	term := NewWithScreen(screen)

	m := core.NewMatch(core.DefaultBindings(), rand.New(rand.NewSource(1)))
	m.TickInterval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, term.Run(ctx, m), context.DeadlineExceeded)
	assert.Positive(t, m.Ticks)
}

func TestRunFollowsHeldKeys(t *testing.T) {
	screen := newSimScreen(t)
	term := NewWithScreen(screen)

	m := core.NewMatch(core.DefaultBindings(), rand.New(rand.NewSource(1)))
	m.TickInterval = time.Millisecond
	term.keys.Press(core.KeyW)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_ = term.Run(ctx, m)

	assert.Less(t, m.Left.Y, core.LeftPaddleStart.Y, "Left paddle should have moved up")
}

func TestCellsFromChar(t *testing.T) {
	one := cellsFromChar('1')
	assert.Contains(t, one, [2]int{1, 0})
	assert.Contains(t, one, [2]int{0, 4})
	assert.NotContains(t, one, [2]int{0, 0})
	assert.Len(t, cellsFromChar('8'), 13)
	assert.Nil(t, cellsFromChar('x'))
}
