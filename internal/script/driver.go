// Package script drives the editor from Lua input scripts.
//
// A script is a plain Lua file run on a single goroutine. It sees three
// functions:
//
//	type("hello")      -- press each character; '\n' presses Enter
//	key("left")        -- press a named key, optional modifiers after it
//	tick(3)            -- run the kernel for n frames
//
// gopher-lua's LState is not goroutine-safe, so the Driver owns its state
// for its whole lifetime and Run must not be called concurrently.
package script

import (
	"errors"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/pxlos/pixedit/internal/eventq"
	"github.com/pxlos/pixedit/internal/key"
)

// ErrDriverClosed is returned when running a script on a closed driver.
var ErrDriverClosed = errors.New("script driver is closed")

// keyNames maps script key names to scancodes.
var keyNames = map[string]key.Scancode{
	"backspace": key.ScanBackspace,
	"tab":       key.ScanTab,
	"enter":     key.ScanEnter,
	"escape":    key.ScanEscape,
	"space":     key.ScanSpace,
	"end":       key.ScanEnd,
	"home":      key.ScanHome,
	"left":      key.ScanLeft,
	"up":        key.ScanUp,
	"right":     key.ScanRight,
	"down":      key.ScanDown,
	"delete":    key.ScanDelete,
}

// modNames maps script modifier names to modifier bits.
var modNames = map[string]key.Modifier{
	"ctrl":  key.ModCtrl,
	"shift": key.ModShift,
	"alt":   key.ModAlt,
}

// Driver runs Lua input scripts against the event queue. Events that do
// not fit in the queue trigger a tick to drain it, so scripts can type
// past the queue capacity without losing keys.
type Driver struct {
	L      *lua.LState
	queue  *eventq.Queue
	tick   func()
	closed bool

	// Dropped counts events lost because the queue stayed full even
	// after a drain.
	Dropped int
}

// NewDriver creates a driver pushing into queue. tick is invoked by the
// script's tick() function and by the driver itself when the queue fills.
func NewDriver(queue *eventq.Queue, tick func()) *Driver {
	d := &Driver{
		L:     lua.NewState(lua.Options{SkipOpenLibs: false}),
		queue: queue,
		tick:  tick,
	}
	d.register()
	return d
}

// register installs the script API as globals.
func (d *Driver) register() {
	d.L.SetGlobal("type", d.L.NewFunction(d.luaType))
	d.L.SetGlobal("key", d.L.NewFunction(d.luaKey))
	d.L.SetGlobal("tick", d.L.NewFunction(d.luaTick))
}

// RunFile executes the script at path.
func (d *Driver) RunFile(path string) error {
	if d.closed {
		return ErrDriverClosed
	}
	if err := d.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// RunString executes inline script source.
func (d *Driver) RunString(src string) error {
	if d.closed {
		return ErrDriverClosed
	}
	if err := d.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// Close releases the Lua state. Safe to call more than once.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.L.Close()
}

// push enqueues one event, draining via tick if the queue is full.
func (d *Driver) push(ev key.Event) {
	if d.queue.Push(ev) {
		return
	}
	if d.tick != nil {
		d.tick()
		if d.queue.Push(ev) {
			return
		}
	}
	d.Dropped++
}

// luaType implements type(text): one key press per character.
func (d *Driver) luaType(L *lua.LState) int {
	text := L.CheckString(1)
	for _, ch := range text {
		switch ch {
		case '\n':
			d.push(key.Press(key.ScanEnter, key.ModNone))
		case '\t':
			d.push(key.Press(key.ScanTab, key.ModNone))
		default:
			d.push(key.PressRune(ch))
		}
	}
	return 0
}

// luaKey implements key(name, mods...): a single named key press.
// The name may also be a single printable character.
func (d *Driver) luaKey(L *lua.LState) int {
	name := L.CheckString(1)

	mods := key.ModNone
	for i := 2; i <= L.GetTop(); i++ {
		modName := L.CheckString(i)
		mod, ok := modNames[strings.ToLower(modName)]
		if !ok {
			L.RaiseError("unknown modifier %q", modName)
			return 0
		}
		mods = mods.With(mod)
	}

	if sc, ok := keyNames[strings.ToLower(name)]; ok {
		d.push(key.Press(sc, mods))
		return 0
	}
	runes := []rune(name)
	if len(runes) != 1 {
		L.RaiseError("unknown key %q", name)
		return 0
	}
	ev := key.PressRune(runes[0])
	ev.Modifiers = ev.Modifiers.With(mods)
	d.push(ev)
	return 0
}

// luaTick implements tick(n): run n kernel frames, default 1.
func (d *Driver) luaTick(L *lua.LState) int {
	n := 1
	if L.GetTop() >= 1 {
		n = L.CheckInt(1)
	}
	if d.tick == nil {
		return 0
	}
	for i := 0; i < n; i++ {
		d.tick()
	}
	return 0
}
