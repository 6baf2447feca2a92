package window

import (
	"image/color"

	"pong/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type surface struct {
	screen  *ebiten.Image
	face    font.Face
	sprites map[core.Sprite]*ebiten.Image
}

func (s *surface) Fill(c color.Color) {
	s.screen.Fill(c)
}

func (s *surface) FillRect(r core.GameObject, c color.Color) {
	vector.DrawFilledRect(s.screen,
		float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height),
		c, false)
}

func (s *surface) FillEllipse(r core.GameObject, c color.Color) {
	center := r.Center()
	vector.DrawFilledCircle(s.screen,
		float32(center.X), float32(center.Y),
		float32(r.Width/2),
		c, true)
}

func (s *surface) DrawSprite(sprite core.Sprite, r core.GameObject) {
	img := s.sprites[sprite]
	if img == nil {
		return
	}
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(bounds.Dx()), r.Height/float64(bounds.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	s.screen.DrawImage(img, op)
}

func (s *surface) DrawText(str string, midTop core.Point, c color.Color) {
	bounds := text.BoundString(s.face, str)
	x := int(midTop.X) - bounds.Dx()/2 - bounds.Min.X
	y := int(midTop.Y) - bounds.Min.Y
	text.Draw(s.screen, str, s.face, x, y, c)
}
