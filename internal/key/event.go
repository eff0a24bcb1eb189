package key

import "fmt"

// Event represents a single key press or release produced by the host and
// consumed exactly once by the editor kernel.
type Event struct {
	// Scancode identifies the key.
	Scancode Scancode

	// Pressed is true for key-down events. The kernel ignores releases.
	Pressed bool

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// Press creates a key-down event.
func Press(s Scancode, mods Modifier) Event {
	return Event{Scancode: s, Pressed: true, Modifiers: mods}
}

// Release creates a key-up event.
func Release(s Scancode, mods Modifier) Event {
	return Event{Scancode: s, Pressed: false, Modifiers: mods}
}

// PressRune creates a key-down event for a printable character, deriving
// the scancode and Shift state from the rune.
func PressRune(r rune) Event {
	mods := ModNone
	if r >= 'A' && r <= 'Z' {
		mods = ModShift
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return Event{Scancode: Scancode(r), Pressed: true, Modifiers: mods}
}

// IsPrintable returns true if the event inserts a code point when pressed.
func (e Event) IsPrintable() bool {
	return e.Scancode.IsPrintable()
}

// Rune returns the code point this event inserts, or 0 if none.
func (e Event) Rune() rune {
	return e.Scancode.Rune(e.Modifiers)
}

// String returns a canonical representation like "Ctrl+Left" or "a".
func (e Event) String() string {
	name := e.Scancode.String()
	if mods := e.Modifiers.String(); mods != "" {
		name = mods + "+" + name
	}
	if !e.Pressed {
		return name + " (up)"
	}
	return name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Scancode: %d, Pressed: %t, Modifiers: %s}",
		uint32(e.Scancode), e.Pressed, e.Modifiers)
}
