package terminal

import (
	"image/color"
	"math"

	"pong/core"

	"github.com/gdamore/tcell"
)

// cellSurface maps field coordinates onto terminal cells.
type cellSurface struct {
	screen     tcell.Screen
	cols, rows int
	background tcell.Color
}

func newCellSurface(screen tcell.Screen, cols, rows int) *cellSurface {
	return &cellSurface{
		screen:     screen,
		cols:       cols,
		rows:       rows,
		background: tcell.ColorBlack,
	}
}

func toTcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (s *cellSurface) col(x float64) int {
	return int(math.Floor(x * float64(s.cols) / core.FieldWidth))
}

func (s *cellSurface) row(y float64) int {
	return int(math.Floor(y * float64(s.rows) / core.FieldHeight))
}

// cells returns the cell span covered by r, at least one cell wide and high.
func (s *cellSurface) cells(r core.GameObject) (col, row, width, height int) {
	col, row = s.col(r.Left()), s.row(r.Top())
	width = int(math.Ceil(r.Right()*float64(s.cols)/core.FieldWidth)) - col
	height = int(math.Ceil(r.Bottom()*float64(s.rows)/core.FieldHeight)) - row
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return col, row, width, height
}

func (s *cellSurface) Fill(c color.Color) {
	s.background = toTcellColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.background))
}

func (s *cellSurface) FillRect(r core.GameObject, c color.Color) {
	col, row, width, height := s.cells(r)
	s.print(row, col, width, height, BorderSymbol, toTcellColor(c))
}

func (s *cellSurface) FillEllipse(r core.GameObject, c color.Color) {
	center := r.Center()
	s.print(s.row(center.Y), s.col(center.X), 1, 1, BallSymbol, toTcellColor(c))
}

func (s *cellSurface) DrawSprite(sprite core.Sprite, r core.GameObject) {
	col, row, width, height := s.cells(r)
	switch sprite {
	case core.SpritePaddle:
		s.print(row, col, width, height, PaddleSymbol, toTcellColor(core.ColorRed))
	}
}

func (s *cellSurface) DrawText(text string, midTop core.Point, c color.Color) {
	s.drawLetters(s.col(midTop.X), s.row(midTop.Y), text, toTcellColor(c))
}

func (s *cellSurface) print(row, col, width, height int, ch rune, fg tcell.Color) {
	style := tcell.StyleDefault.Background(s.background).Foreground(fg)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			s.screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

// drawLetters draws word centred on x with its top row at y, each
// character as a glyph of ball symbols.
func (s *cellSurface) drawLetters(x int, y int, word string, fg tcell.Color) {
	letterNum := len(word)
	if letterNum == 0 {
		return
	}
	totalLen := letterNum*glyphWidth + (letterNum - 1)
	startX := x - totalLen/2

	style := tcell.StyleDefault.Background(s.background).Foreground(fg)
	for i, letter := range word {
		offsetX := startX + i*(glyphWidth+1)
		for _, cell := range cellsFromChar(letter) {
			s.screen.SetContent(offsetX+cell[0], y+cell[1], BallSymbol, nil, style)
		}
	}
}
