package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pong/core"
	"pong/logger"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const BorderSymbol = 0x2590 // 中線

// Terminals only report presses and auto repeat, never releases, so a key
// counts as held for a while after its last event. The first event has to
// bridge the delay before auto repeat starts, which means a single tap moves
// the paddle for FirstHoldWindow. Later repeats arrive every few tens of
// milliseconds and use the shorter RepeatHoldWindow.
const (
	FirstHoldWindow  = 500 * time.Millisecond
	RepeatHoldWindow = 120 * time.Millisecond
)

type Terminal struct {
	screen tcell.Screen
	keys   *keyState
}

// New opens the real terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an already initialised screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)

	return &Terminal{
		screen: screen,
		keys:   newKeyState(time.Now),
	}
}

// Run plays m until Escape or Ctrl-C is pressed or ctx is done. The screen
// is released on return.
func (t *Terminal) Run(ctx context.Context, m *core.Match) error {
	console := logger.Log.Console()
	logger.Log.SetConsole(false)
	defer logger.Log.SetConsole(console)
	defer t.screen.Fini()

	go t.listen()

	return m.Run(ctx, t.keys, t.Render)
}

// listen forwards key events to the key state until the screen is closed.
func (t *Terminal) listen() {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				t.keys.RequestQuit()
				continue
			}
			if k := keyFromEvent(ev); k != core.KeyUnknown {
				t.keys.Press(k)
			}
		}
	}
}

// keyFromEvent maps a tcell key event onto a core key. Terminals report
// neither modifier keys nor keypad keys apart from the main ones.
func keyFromEvent(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyEnter:
		return core.KeyReturn
	case tcell.KeyTab:
		return core.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace
	case tcell.KeyDelete:
		return core.KeyDelete
	case tcell.KeyInsert:
		return core.KeyInsert
	case tcell.KeyHome:
		return core.KeyHome
	case tcell.KeyEnd:
		return core.KeyEnd
	case tcell.KeyPgUp:
		return core.KeyPageUp
	case tcell.KeyPgDn:
		return core.KeyPageDown
	case tcell.KeyPause:
		return core.KeyPause
	case tcell.KeyPrint:
		return core.KeyPrint
	case tcell.KeyRune:
		return core.KeyForRune(ev.Rune())
	}
	if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
		return core.KeyF1 + core.Key(ev.Key()-tcell.KeyF1)
	}
	return core.KeyUnknown
}

// Render draws the match and shows the frame.
func (t *Terminal) Render(m *core.Match) error {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	m.Draw(newCellSurface(t.screen, cols, rows))
	t.screen.Show()
	return nil
}

// keyState is the core.Input of the terminal. It is written by the event
// goroutine and read by the tick goroutine. Only the last pressed key is
// tracked since terminals only auto repeat that one.
type keyState struct {
	mu        sync.Mutex
	key       core.Key
	seen      time.Time
	repeating bool
	quit      bool
	now       func() time.Time
}

func newKeyState(now func() time.Time) *keyState {
	return &keyState{now: now}
}

func (ks *keyState) Press(k core.Key) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.now()
	ks.repeating = ks.key == k && now.Sub(ks.seen) < FirstHoldWindow
	ks.key = k
	ks.seen = now
}

func (ks *keyState) RequestQuit() {
	ks.mu.Lock()
	ks.quit = true
	ks.mu.Unlock()
}

func (ks *keyState) Pressed(k core.Key) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if k == core.KeyUnknown || ks.key != k {
		return false
	}
	window := FirstHoldWindow
	if ks.repeating {
		window = RepeatHoldWindow
	}
	return ks.now().Sub(ks.seen) < window
}

func (ks *keyState) QuitRequested() bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return ks.quit
}
