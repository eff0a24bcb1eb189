package key

import "fmt"

// Scancode identifies a keyboard key using the canonical I/O contract
// values. Printable characters use their ASCII value; special keys use the
// legacy keycode values listed below.
type Scancode uint32

// Special key scancodes. These values are part of the shared host/kernel
// contract and must not change.
const (
	ScanNone      Scancode = 0
	ScanBackspace Scancode = 8
	ScanTab       Scancode = 9
	ScanEnter     Scancode = 13
	ScanEscape    Scancode = 27
	ScanSpace     Scancode = 32
	ScanEnd       Scancode = 35
	ScanHome      Scancode = 36
	ScanLeft      Scancode = 37
	ScanUp        Scancode = 38
	ScanRight     Scancode = 39
	ScanDown      Scancode = 40
	ScanDelete    Scancode = 127
)

// Printable ASCII range stored in the text buffer and covered by the font
// atlas.
const (
	FirstPrintable = 32
	LastPrintable  = 126
)

// IsNavigation returns true for cursor-movement scancodes.
func (s Scancode) IsNavigation() bool {
	switch s {
	case ScanLeft, ScanRight, ScanUp, ScanDown, ScanHome, ScanEnd:
		return true
	default:
		return false
	}
}

// IsPrintable returns true if the scancode maps to a printable code point.
// Space is printable; the arrow-key scancodes 35-40 collide with the ASCII
// codes for '#' through '(' and are claimed by navigation, matching the
// contract's resolution of the overlap.
func (s Scancode) IsPrintable() bool {
	if s.IsNavigation() {
		return false
	}
	return s >= FirstPrintable && s <= LastPrintable
}

// Rune maps a printable scancode to the code point the kernel stores.
// Letter scancodes produce lowercase by default and uppercase under Shift.
// Everything else passes through unchanged. Returns 0 for scancodes that do
// not produce a code point.
func (s Scancode) Rune(mods Modifier) rune {
	if !s.IsPrintable() {
		return 0
	}
	r := rune(s)
	if r >= 'A' && r <= 'Z' {
		if mods.HasShift() {
			return r
		}
		return r + ('a' - 'A')
	}
	if r >= 'a' && r <= 'z' && mods.HasShift() {
		return r - ('a' - 'A')
	}
	return r
}

// String returns a human-readable name for the scancode.
func (s Scancode) String() string {
	switch s {
	case ScanNone:
		return "None"
	case ScanBackspace:
		return "Backspace"
	case ScanTab:
		return "Tab"
	case ScanEnter:
		return "Enter"
	case ScanEscape:
		return "Escape"
	case ScanSpace:
		return "Space"
	case ScanEnd:
		return "End"
	case ScanHome:
		return "Home"
	case ScanLeft:
		return "Left"
	case ScanUp:
		return "Up"
	case ScanRight:
		return "Right"
	case ScanDown:
		return "Down"
	case ScanDelete:
		return "Delete"
	}
	if s.IsPrintable() {
		return string(rune(s))
	}
	return fmt.Sprintf("Scan(%d)", uint32(s))
}
