package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-asteroids/input"
)

// DefaultHold is how long a key press counts as held. Terminals report
// presses and auto-repeats, never releases.
const DefaultHold = 150 * time.Millisecond

type action int

const (
	actionLeft action = iota
	actionRight
	actionThrust
	actionFire
	actionCount
)

var runeBindings = map[rune]action{
	'a': actionLeft,
	'A': actionLeft,
	'd': actionRight,
	'D': actionRight,
	'w': actionThrust,
	'W': actionThrust,
	' ': actionFire,
}

var keyBindings = map[tcell.Key]action{
	tcell.KeyLeft:  actionLeft,
	tcell.KeyRight: actionRight,
	tcell.KeyUp:    actionThrust,
}

// KeyState turns a stream of key presses into held-key events
type KeyState struct {
	hold    time.Duration
	pressed [actionCount]time.Time
}

// NewKeyState creates a key state where a press is held for hold
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{hold: hold}
}

// Press records a key event at now. It reports whether the key is bound.
func (k *KeyState) Press(ev *tcell.EventKey, now time.Time) bool {
	return k.PressKey(ev.Key(), ev.Rune(), now)
}

// PressKey records a press of key, or of r when key is tcell.KeyRune
func (k *KeyState) PressKey(key tcell.Key, r rune, now time.Time) bool {
	a, ok := keyBindings[key]
	if !ok && key == tcell.KeyRune {
		a, ok = runeBindings[r]
	}
	if ok {
		k.pressed[a] = now
	}
	return ok
}

// Snapshot returns the events held at now
func (k *KeyState) Snapshot(now time.Time) input.Events {
	held := func(a action) bool {
		t := k.pressed[a]
		return !t.IsZero() && now.Sub(t) < k.hold
	}
	return input.Events{
		ShipLeft:   held(actionLeft),
		ShipRight:  held(actionRight),
		ShipThrust: held(actionThrust),
		ShipFire:   held(actionFire),
	}
}

// isQuit reports whether the key asks to leave the game
func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC ||
		(key == tcell.KeyRune && (r == 'q' || r == 'Q'))
}
