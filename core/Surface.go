package core

import "image/color"

// Sprite names an image the front end loads at startup.
type Sprite int

const (
	SpritePaddle Sprite = iota
)

// Surface is the drawing target of a front end. Presenting the finished
// frame is left to the front end.
type Surface interface {
	Fill(c color.Color)
	FillRect(r GameObject, c color.Color)
	FillEllipse(r GameObject, c color.Color)
	DrawSprite(sprite Sprite, r GameObject)
	// DrawText draws text with its top edge centred on midTop.
	DrawText(text string, midTop Point, c color.Color)
}

// Drawable is anything that renders itself onto a Surface.
type Drawable interface {
	Draw(s Surface)
}
