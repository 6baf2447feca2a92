package window

import (
	"pong/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[core.Key]ebiten.Key{
	core.KeyA: ebiten.KeyA,
	core.KeyB: ebiten.KeyB,
	core.KeyC: ebiten.KeyC,
	core.KeyD: ebiten.KeyD,
	core.KeyE: ebiten.KeyE,
	core.KeyF: ebiten.KeyF,
	core.KeyG: ebiten.KeyG,
	core.KeyH: ebiten.KeyH,
	core.KeyI: ebiten.KeyI,
	core.KeyJ: ebiten.KeyJ,
	core.KeyK: ebiten.KeyK,
	core.KeyL: ebiten.KeyL,
	core.KeyM: ebiten.KeyM,
	core.KeyN: ebiten.KeyN,
	core.KeyO: ebiten.KeyO,
	core.KeyP: ebiten.KeyP,
	core.KeyQ: ebiten.KeyQ,
	core.KeyR: ebiten.KeyR,
	core.KeyS: ebiten.KeyS,
	core.KeyT: ebiten.KeyT,
	core.KeyU: ebiten.KeyU,
	core.KeyV: ebiten.KeyV,
	core.KeyW: ebiten.KeyW,
	core.KeyX: ebiten.KeyX,
	core.KeyY: ebiten.KeyY,
	core.KeyZ: ebiten.KeyZ,

	core.Key0: ebiten.KeyDigit0,
	core.Key1: ebiten.KeyDigit1,
	core.Key2: ebiten.KeyDigit2,
	core.Key3: ebiten.KeyDigit3,
	core.Key4: ebiten.KeyDigit4,
	core.Key5: ebiten.KeyDigit5,
	core.Key6: ebiten.KeyDigit6,
	core.Key7: ebiten.KeyDigit7,
	core.Key8: ebiten.KeyDigit8,
	core.Key9: ebiten.KeyDigit9,

	core.KeyUp:     ebiten.KeyArrowUp,
	core.KeyDown:   ebiten.KeyArrowDown,
	core.KeyLeft:   ebiten.KeyArrowLeft,
	core.KeyRight:  ebiten.KeyArrowRight,
	core.KeySpace:  ebiten.KeySpace,
	core.KeyReturn: ebiten.KeyEnter,
	core.KeyEscape: ebiten.KeyEscape,
	core.KeyTab:    ebiten.KeyTab,

	core.KeyBackspace: ebiten.KeyBackspace,
	core.KeyDelete:    ebiten.KeyDelete,
	core.KeyInsert:    ebiten.KeyInsert,
	core.KeyHome:      ebiten.KeyHome,
	core.KeyEnd:       ebiten.KeyEnd,
	core.KeyPageUp:    ebiten.KeyPageUp,
	core.KeyPageDown:  ebiten.KeyPageDown,
	core.KeyPause:     ebiten.KeyPause,
	core.KeyPrint:     ebiten.KeyPrintScreen,

	core.KeyF1:  ebiten.KeyF1,
	core.KeyF2:  ebiten.KeyF2,
	core.KeyF3:  ebiten.KeyF3,
	core.KeyF4:  ebiten.KeyF4,
	core.KeyF5:  ebiten.KeyF5,
	core.KeyF6:  ebiten.KeyF6,
	core.KeyF7:  ebiten.KeyF7,
	core.KeyF8:  ebiten.KeyF8,
	core.KeyF9:  ebiten.KeyF9,
	core.KeyF10: ebiten.KeyF10,
	core.KeyF11: ebiten.KeyF11,
	core.KeyF12: ebiten.KeyF12,

	core.KeyKP0:        ebiten.KeyNumpad0,
	core.KeyKP1:        ebiten.KeyNumpad1,
	core.KeyKP2:        ebiten.KeyNumpad2,
	core.KeyKP3:        ebiten.KeyNumpad3,
	core.KeyKP4:        ebiten.KeyNumpad4,
	core.KeyKP5:        ebiten.KeyNumpad5,
	core.KeyKP6:        ebiten.KeyNumpad6,
	core.KeyKP7:        ebiten.KeyNumpad7,
	core.KeyKP8:        ebiten.KeyNumpad8,
	core.KeyKP9:        ebiten.KeyNumpad9,
	core.KeyKPPeriod:   ebiten.KeyNumpadDecimal,
	core.KeyKPDivide:   ebiten.KeyNumpadDivide,
	core.KeyKPMultiply: ebiten.KeyNumpadMultiply,
	core.KeyKPMinus:    ebiten.KeyNumpadSubtract,
	core.KeyKPPlus:     ebiten.KeyNumpadAdd,
	core.KeyKPEnter:    ebiten.KeyNumpadEnter,
	core.KeyKPEquals:   ebiten.KeyNumpadEqual,

	core.KeyComma:        ebiten.KeyComma,
	core.KeyPeriod:       ebiten.KeyPeriod,
	core.KeySlash:        ebiten.KeySlash,
	core.KeySemicolon:    ebiten.KeySemicolon,
	core.KeyMinus:        ebiten.KeyMinus,
	core.KeyEquals:       ebiten.KeyEqual,
	core.KeyQuote:        ebiten.KeyQuote,
	core.KeyBackslash:    ebiten.KeyBackslash,
	core.KeyLeftBracket:  ebiten.KeyBracketLeft,
	core.KeyRightBracket: ebiten.KeyBracketRight,
	core.KeyBackquote:    ebiten.KeyBackquote,

	core.KeyLShift:     ebiten.KeyShiftLeft,
	core.KeyRShift:     ebiten.KeyShiftRight,
	core.KeyLCtrl:      ebiten.KeyControlLeft,
	core.KeyRCtrl:      ebiten.KeyControlRight,
	core.KeyLAlt:       ebiten.KeyAltLeft,
	core.KeyRAlt:       ebiten.KeyAltRight,
	core.KeyLSuper:     ebiten.KeyMetaLeft,
	core.KeyRSuper:     ebiten.KeyMetaRight,
	core.KeyCapsLock:   ebiten.KeyCapsLock,
	core.KeyNumLock:    ebiten.KeyNumLock,
	core.KeyScrollLock: ebiten.KeyScrollLock,
}

// Keyboard reads ebiten's key state. It must only be queried from Update.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (kb *Keyboard) Pressed(k core.Key) bool {
	ek, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (kb *Keyboard) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
