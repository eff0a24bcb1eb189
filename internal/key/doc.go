// Package key defines the key event model shared between the host input
// layer and the editor kernel.
//
// Events carry a raw scancode rather than a decoded character. Scancodes
// follow the canonical I/O contract: special keys use their legacy keycode
// values (Backspace=8, Enter=13, Left=37, ...) and printable characters use
// their ASCII value directly. The kernel owns the mapping from scancode to
// stored code point.
package key
