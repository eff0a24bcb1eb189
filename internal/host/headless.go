package host

import (
	"fmt"

	"github.com/pxlos/pixedit/internal/render"
	"github.com/pxlos/pixedit/internal/script"
)

// Headless defaults.
const (
	DefaultHeadlessRows = 24
	DefaultHeadlessCols = 80
)

// HeadlessOptions configures a scripted run.
type HeadlessOptions struct {
	// ScriptPath is a Lua input script to run. Takes precedence over
	// Script.
	ScriptPath string

	// Script is inline Lua source, used when ScriptPath is empty.
	Script string

	// ExtraFrames runs additional kernel ticks after the script finishes,
	// advancing the frame counter without input.
	ExtraFrames int

	// OutputPath writes the final frame as a PNG. Empty skips it.
	OutputPath string

	// Scale is the PNG upscale factor. Values below 1 mean 1.
	Scale int

	// Rows and Cols set the text viewport in character cells. Zero values
	// use the defaults.
	Rows, Cols int
}

// RunHeadless drives the editor from a Lua script without a terminal.
//
// The script runs on the calling goroutine and shares it with the kernel:
// the script's tick() calls and the driver's queue-full drains invoke
// Tick directly, so the single-producer/single-consumer queue discipline
// holds trivially.
func (h *Host) RunHeadless(opts HeadlessOptions) error {
	rows, cols := opts.Rows, opts.Cols
	if rows <= 0 {
		rows = DefaultHeadlessRows
	}
	if cols <= 0 {
		cols = DefaultHeadlessCols
	}

	h.kern.SetViewport(rows, cols)
	h.kern.Tick()

	d := script.NewDriver(h.queue, h.kern.Tick)
	defer d.Close()

	var err error
	switch {
	case opts.ScriptPath != "":
		err = d.RunFile(opts.ScriptPath)
	case opts.Script != "":
		err = d.RunString(opts.Script)
	}
	if err != nil {
		return err
	}

	// Drain whatever the script queued before the extra frames.
	for h.queue.Len() > 0 {
		h.kern.Tick()
	}
	for i := 0; i < opts.ExtraFrames; i++ {
		h.kern.Tick()
	}

	if d.Dropped > 0 {
		h.log.Warn("script dropped %d events", d.Dropped)
	}

	snap := h.store.Snapshot()
	h.log.Info("headless run finished: frame %d, %d lines, %d code points",
		snap.FrameCount, snap.LineCount, snap.TextLength)

	if opts.OutputPath != "" {
		if err := h.writeFrame(opts.OutputPath, rows, cols, opts.Scale); err != nil {
			return err
		}
	}
	return nil
}

// writeFrame renders the current snapshot and writes it as a PNG.
func (h *Host) writeFrame(path string, rows, cols, scale int) error {
	if scale < 1 {
		scale = 1
	}

	snap := h.store.Snapshot()
	m := h.rend.Metrics()
	gutter := h.rend.GutterWidth(snap.LineCount)

	pm := render.NewPixmap((gutter+cols)*m.CellWidth, rows*m.CellHeight)
	h.rend.Frame(snap, h.text, pm)
	if err := pm.WritePNG(path, scale); err != nil {
		return fmt.Errorf("writing frame to %s: %w", path, err)
	}
	h.log.Info("wrote frame to %s", path)
	return nil
}
