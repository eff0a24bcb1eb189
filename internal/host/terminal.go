package host

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pxlos/pixedit/internal/config"
	"github.com/pxlos/pixedit/internal/key"
	"github.com/pxlos/pixedit/internal/render"
	"github.com/pxlos/pixedit/internal/theme"
)

// frameInterval paces the terminal at roughly 30 frames per second, one
// blink period per second with the default settings.
const frameInterval = 33 * time.Millisecond

// TerminalOptions configures the interactive frontend.
type TerminalOptions struct {
	// ConfigPath, when set, is watched for changes; edits to the theme
	// section apply live.
	ConfigPath string

	// Interrupt, when closed, ends the session like a quit key. The run
	// loop still restores the terminal on the way out. Nil means no
	// external interrupt source.
	Interrupt <-chan struct{}
}

// terminal runs the interactive tcell frontend. Each terminal cell shows
// two pixmap pixels stacked with the upper-half-block rune, which keeps
// the presented pixels close to square.
type terminal struct {
	h      *Host
	screen tcell.Screen
	pm     *render.Pixmap
	events chan tcell.Event
	reload chan config.Config
	done   chan struct{}
}

// RunTerminal runs the interactive frontend until the user quits with
// Escape or Ctrl+Q. Returns ErrQuit on a clean quit.
func (h *Host) RunTerminal(opts TerminalOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	return h.runScreen(screen, opts)
}

// runScreen runs the frontend loop on an initialized-by-us screen. Split
// from RunTerminal so tests can pass a simulation screen.
func (h *Host) runScreen(screen tcell.Screen, opts TerminalOptions) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	t := &terminal{
		h:      h,
		screen: screen,
		events: make(chan tcell.Event, 100),
		reload: make(chan config.Config, 1),
		done:   make(chan struct{}),
	}
	defer close(t.done)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath,
			func(cfg config.Config) {
				select {
				case t.reload <- cfg:
				default:
				}
			},
			func(err error) { h.log.Warn("config watch: %v", err) },
		)
		if err != nil {
			h.log.Warn("config watch unavailable: %v", err)
		} else {
			defer w.Close()
		}
	}

	// PollEvent blocks; Fini unblocks it with a nil event on shutdown.
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}()

	t.resize()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.resize()
				t.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					h.log.Info("quit requested")
					return ErrQuit
				}
				kev, ok := mapTcellKey(ev)
				if !ok {
					continue
				}
				if !h.queue.Push(kev) {
					h.log.Debug("event queue full, dropped %s", kev)
				}
			}

		case <-opts.Interrupt:
			h.log.Info("interrupted")
			return ErrQuit

		case cfg := <-t.reload:
			t.applyConfig(cfg)

		case <-ticker.C:
			h.kern.Tick()
			t.draw()
		}
	}
}

// resize reports the new text viewport to the kernel and reallocates the
// frame pixmap.
func (t *terminal) resize() {
	w, hgt := t.screen.Size()
	t.pm = render.NewPixmap(w, 2*hgt)

	m := t.h.rend.Metrics()
	snap := t.h.store.Snapshot()
	gutter := t.h.rend.GutterWidth(snap.LineCount)

	rows := (2 * hgt) / m.CellHeight
	cols := w/m.CellWidth - gutter
	if cols < 0 {
		cols = 0
	}
	t.h.kern.SetViewport(rows, cols)
}

// applyConfig swaps the renderer for a live theme change. Geometry and
// editor limits stay fixed for the session.
func (t *terminal) applyConfig(cfg config.Config) {
	palette, err := theme.FromHex(cfg.Theme.Background, cfg.Theme.Foreground, cfg.Theme.Cursor)
	if err != nil {
		t.h.log.Warn("config reload: %v", err)
		return
	}
	t.h.rend = render.New(nil, palette, t.h.rend.Metrics())
	t.h.log.Info("theme reloaded")
}

// draw renders the latest snapshot and presents it as half-block cells.
func (t *terminal) draw() {
	snap := t.h.store.Snapshot()
	t.h.rend.Frame(snap, t.h.text, t.pm)

	w, hgt := t.screen.Size()
	for y := 0; y < hgt; y++ {
		for x := 0; x < w; x++ {
			top := t.pm.GetPixel(x, 2*y)
			bot := t.pm.GetPixel(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(toTcellColor(top)).
				Background(toTcellColor(bot))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	t.screen.Show()
}

// toTcellColor converts an RGBA pixel to a tcell color.
func toTcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// isQuitKey reports whether the event ends the session. The terminal is in
// raw mode, so Ctrl+C arrives here instead of raising SIGINT.
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return true
	}
	return false
}

// mapTcellKey converts a tcell key event to an editor key event.
func mapTcellKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}

	if ev.Key() == tcell.KeyRune {
		kev := key.PressRune(ev.Rune())
		kev.Modifiers = kev.Modifiers.With(mods)
		return kev, true
	}

	var sc key.Scancode
	switch ev.Key() {
	case tcell.KeyEnter:
		sc = key.ScanEnter
	case tcell.KeyTab:
		sc = key.ScanTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		sc = key.ScanBackspace
	case tcell.KeyDelete:
		sc = key.ScanDelete
	case tcell.KeyHome:
		sc = key.ScanHome
	case tcell.KeyEnd:
		sc = key.ScanEnd
	case tcell.KeyLeft:
		sc = key.ScanLeft
	case tcell.KeyUp:
		sc = key.ScanUp
	case tcell.KeyRight:
		sc = key.ScanRight
	case tcell.KeyDown:
		sc = key.ScanDown
	default:
		return key.Event{}, false
	}
	return key.Press(sc, mods), true
}
