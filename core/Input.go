package core

// Input is the keyboard state sampled once per tick.
type Input interface {
	Pressed(k Key) bool
	QuitRequested() bool
}

// KeySet is an Input backed by a set of held keys. Front ends that receive
// discrete key events fill one per tick.
type KeySet struct {
	held map[Key]bool
	quit bool
}

func NewKeySet(keys ...Key) *KeySet {
	ks := &KeySet{held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		ks.held[k] = true
	}
	return ks
}

func (ks *KeySet) Press(k Key)   { ks.held[k] = true }
func (ks *KeySet) Release(k Key) { delete(ks.held, k) }
func (ks *KeySet) RequestQuit()  { ks.quit = true }

func (ks *KeySet) Pressed(k Key) bool  { return ks.held[k] }
func (ks *KeySet) QuitRequested() bool { return ks.quit }
