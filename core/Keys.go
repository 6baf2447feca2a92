package core

import (
	"errors"
	"fmt"
)

var ErrUnknownKey = errors.New("unknown key name")

// Key is a front end independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyReturn
	KeyEscape
	KeyTab

	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyPause
	KeyPrint

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPPeriod
	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter
	KeyKPEquals

	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyMinus
	KeyEquals
	KeyQuote
	KeyBackslash
	KeyLeftBracket
	KeyRightBracket
	KeyBackquote

	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
	KeyLSuper
	KeyRSuper
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
)

var keyByName = map[string]Key{
	"K_UP":     KeyUp,
	"K_DOWN":   KeyDown,
	"K_LEFT":   KeyLeft,
	"K_RIGHT":  KeyRight,
	"K_SPACE":  KeySpace,
	"K_RETURN": KeyReturn,
	"K_ESCAPE": KeyEscape,
	"K_TAB":    KeyTab,

	"K_BACKSPACE": KeyBackspace,
	"K_DELETE":    KeyDelete,
	"K_INSERT":    KeyInsert,
	"K_HOME":      KeyHome,
	"K_END":       KeyEnd,
	"K_PAGEUP":    KeyPageUp,
	"K_PAGEDOWN":  KeyPageDown,
	"K_PAUSE":     KeyPause,
	"K_PRINT":     KeyPrint,

	"K_KP_PERIOD":   KeyKPPeriod,
	"K_KP_DIVIDE":   KeyKPDivide,
	"K_KP_MULTIPLY": KeyKPMultiply,
	"K_KP_MINUS":    KeyKPMinus,
	"K_KP_PLUS":     KeyKPPlus,
	"K_KP_ENTER":    KeyKPEnter,
	"K_KP_EQUALS":   KeyKPEquals,

	"K_COMMA":        KeyComma,
	"K_PERIOD":       KeyPeriod,
	"K_SLASH":        KeySlash,
	"K_SEMICOLON":    KeySemicolon,
	"K_MINUS":        KeyMinus,
	"K_EQUALS":       KeyEquals,
	"K_QUOTE":        KeyQuote,
	"K_BACKSLASH":    KeyBackslash,
	"K_LEFTBRACKET":  KeyLeftBracket,
	"K_RIGHTBRACKET": KeyRightBracket,
	"K_BACKQUOTE":    KeyBackquote,

	"K_LSHIFT":    KeyLShift,
	"K_RSHIFT":    KeyRShift,
	"K_LCTRL":     KeyLCtrl,
	"K_RCTRL":     KeyRCtrl,
	"K_LALT":      KeyLAlt,
	"K_RALT":      KeyRAlt,
	"K_LSUPER":    KeyLSuper,
	"K_RSUPER":    KeyRSuper,
	"K_CAPSLOCK":  KeyCapsLock,
	"K_NUMLOCK":   KeyNumLock,
	"K_SCROLLOCK": KeyScrollLock,
}

// keyAliases are alternative spellings. They parse but never come back out of
// Key.String.
var keyAliases = map[string]Key{
	"K_LMETA":        KeyLSuper,
	"K_RMETA":        KeyRSuper,
	"K_NUMLOCKCLEAR": KeyNumLock,
	"K_SCROLLLOCK":   KeyScrollLock,
}

// runeKeys are the keys that type a character of their own.
var runeKeys = map[rune]Key{
	' ':  KeySpace,
	',':  KeyComma,
	'.':  KeyPeriod,
	'/':  KeySlash,
	';':  KeySemicolon,
	'-':  KeyMinus,
	'=':  KeyEquals,
	'\'': KeyQuote,
	'\\': KeyBackslash,
	'[':  KeyLeftBracket,
	']':  KeyRightBracket,
	'`':  KeyBackquote,
}

var keyName = map[Key]string{}
var keyRune = map[Key]rune{}

func init() {
	for i := 0; i < 26; i++ {
		keyByName[fmt.Sprintf("K_%c", 'a'+i)] = KeyA + Key(i)
	}
	for i := 0; i < 10; i++ {
		keyByName[fmt.Sprintf("K_%d", i)] = Key0 + Key(i)
		keyByName[fmt.Sprintf("K_KP%d", i)] = KeyKP0 + Key(i)
	}
	for i := 0; i < 12; i++ {
		keyByName[fmt.Sprintf("K_F%d", i+1)] = KeyF1 + Key(i)
	}
	for name, k := range keyByName {
		keyName[k] = name
	}

	for i := 0; i < 10; i++ {
		keyAliases[fmt.Sprintf("K_KP_%d", i)] = KeyKP0 + Key(i)
	}
	for name, k := range keyAliases {
		keyByName[name] = k
	}

	for r, k := range runeKeys {
		keyRune[k] = r
	}
}

// ParseKey resolves a symbolic key name such as "K_w" or "K_UP".
func ParseKey(name string) (Key, error) {
	k, ok := keyByName[name]
	if !ok {
		return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

func (k Key) String() string {
	if name, ok := keyName[k]; ok {
		return name
	}
	return "K_UNKNOWN"
}

// Rune returns the unshifted character typed by a letter, digit, space or
// punctuation key, or 0.
func (k Key) Rune() rune {
	switch {
	case k >= KeyA && k <= KeyZ:
		return 'a' + rune(k-KeyA)
	case k >= Key0 && k <= Key9:
		return '0' + rune(k-Key0)
	}
	return keyRune[k]
}

// KeyForRune is the inverse of Key.Rune. Upper case letters map to the same
// key as lower case ones.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	if k, ok := runeKeys[r]; ok {
		return k
	}
	return KeyUnknown
}

// Bindings maps the two paddle actions to keys.
type Bindings struct {
	Up, Down Key
}

func DefaultBindings() Bindings {
	return Bindings{Up: KeyW, Down: KeyS}
}
