package window

import (
	"errors"
	"fmt"

	"pong/core"
	"pong/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const Title = "Pong Game!"

// Window runs a match in a desktop window at the field's native size.
type Window struct {
	match    *core.Match
	keyboard *Keyboard
	face     font.Face
	sprites  map[core.Sprite]*ebiten.Image
}

// New loads the font and sprites named in cfg. A missing asset is an error.
func New(m *core.Match, cfg *core.Config) (*Window, error) {
	face, err := LoadFont(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	logger.Log.Info(fmt.Sprintf(logger.AssetLoadedMsg, cfg.FontPath))

	paddle, err := LoadSprite(cfg.PaddleSprite)
	if err != nil {
		return nil, err
	}
	logger.Log.Info(fmt.Sprintf(logger.AssetLoadedMsg, cfg.PaddleSprite))

	return &Window{
		match:    m,
		keyboard: NewKeyboard(),
		face:     face,
		sprites: map[core.Sprite]*ebiten.Image{
			core.SpritePaddle: paddle,
		},
	}, nil
}

// Run blocks until the window is closed or Escape is pressed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(core.FieldWidth, core.FieldHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(core.TicksPerSecond)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (w *Window) Update() error {
	if w.keyboard.QuitRequested() {
		logger.Log.Info(logger.QuitRequestedMsg)
		return ebiten.Termination
	}
	w.match.Tick(w.keyboard)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.match.Draw(&surface{
		screen:  screen,
		face:    w.face,
		sprites: w.sprites,
	})
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.FieldWidth, core.FieldHeight
}
