// Package host wires the editor together and runs it against a frontend.
//
// Two frontends exist: an interactive terminal built on tcell, and a
// headless runner driven by Lua scripts that renders frames to PNG files.
// Both respect the shared-state discipline: the host pushes key events and
// reads published snapshots; only the kernel tick mutates state.
package host

import (
	"errors"
	"fmt"

	"github.com/pxlos/pixedit/internal/config"
	"github.com/pxlos/pixedit/internal/eventq"
	"github.com/pxlos/pixedit/internal/kernel"
	"github.com/pxlos/pixedit/internal/render"
	"github.com/pxlos/pixedit/internal/state"
	"github.com/pxlos/pixedit/internal/textbuf"
	"github.com/pxlos/pixedit/internal/theme"
)

// ErrQuit signals a user-requested exit. Frontends return it from their
// run loops; callers treat it as a clean shutdown.
var ErrQuit = errors.New("quit")

// Options configures a Host.
type Options struct {
	// Config holds editor and render settings. Zero value uses defaults.
	Config config.Config

	// Logger receives host diagnostics. Nil discards them.
	Logger *Logger

	// Text is the initial buffer content.
	Text string
}

// Host owns the editor components and their single-writer wiring.
type Host struct {
	cfg   config.Config
	log   *Logger
	store *state.Store
	text  *textbuf.Buffer
	queue *eventq.Queue
	kern  *kernel.Kernel
	rend  *render.Renderer
}

// New assembles a host from options.
func New(opts Options) (*Host, error) {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("host config: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = NullLogger
	}

	palette, err := theme.FromHex(cfg.Theme.Background, cfg.Theme.Foreground, cfg.Theme.Cursor)
	if err != nil {
		return nil, fmt.Errorf("host theme: %w", err)
	}

	store := state.NewStore()
	text := textbuf.FromString(opts.Text, cfg.Editor.TextCapacity)
	queue := &eventq.Queue{}

	kern := kernel.New(store, text, queue,
		kernel.WithTabWidth(cfg.Editor.TabWidth),
		kernel.WithEventsPerTick(cfg.Editor.EventsPerTick),
	)

	rend := render.New(nil, palette, render.Metrics{
		CellWidth:      cfg.Render.CellWidth,
		CellHeight:     cfg.Render.CellHeight,
		GutterMinWidth: cfg.Render.GutterMinWidth,
		BlinkPeriod:    cfg.Render.BlinkPeriod,
	})

	log.Debug("host assembled, session %s", store.SessionID())

	return &Host{
		cfg:   cfg,
		log:   log,
		store: store,
		text:  text,
		queue: queue,
		kern:  kern,
		rend:  rend,
	}, nil
}

// Store returns the shared state store.
func (h *Host) Store() *state.Store { return h.store }

// Queue returns the key-event queue. Only the frontend may push.
func (h *Host) Queue() *eventq.Queue { return h.queue }

// Kernel returns the editor kernel.
func (h *Host) Kernel() *kernel.Kernel { return h.kern }

// Renderer returns the render stage.
func (h *Host) Renderer() *render.Renderer { return h.rend }

// Text returns the text buffer as a read-only view.
func (h *Host) Text() textbuf.View { return h.text }

// DumpState returns the latest published snapshot as JSON.
func (h *Host) DumpState() ([]byte, error) {
	return DumpState(h.store.SessionID().String(), h.store.Snapshot(), h.text)
}
