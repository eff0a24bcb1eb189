package host

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/pxlos/pixedit/internal/state"
	"github.com/pxlos/pixedit/internal/textbuf"
)

// DumpState renders a published snapshot as JSON for inspection and
// scripted assertions.
func DumpState(session string, snap state.Snapshot, text textbuf.View) ([]byte, error) {
	out := []byte("{}")

	sets := []struct {
		path  string
		value any
	}{
		{"session", session},
		{"version", snap.Version},
		{"frame_count", snap.FrameCount},
		{"running", snap.Running},
		{"cursor.line", snap.CursorLine},
		{"cursor.col", snap.CursorCol},
		{"scroll.line", snap.ScrollLine},
		{"scroll.col", snap.ScrollCol},
		{"text.length", snap.TextLength},
		{"text.lines", snap.LineCount},
		{"queue.head", snap.QueueHead},
		{"queue.tail", snap.QueueTail},
		{"view.rows", snap.ViewRows},
		{"view.cols", snap.ViewCols},
		{"dropped_inputs", snap.DroppedInputs},
	}

	var err error
	for _, s := range sets {
		out, err = sjson.SetBytes(out, s.path, s.value)
		if err != nil {
			return nil, fmt.Errorf("encoding state field %s: %w", s.path, err)
		}
	}

	content := make([]rune, 0, text.Len())
	for i := 0; i < text.Len(); i++ {
		ch, ok := text.At(i)
		if !ok {
			break
		}
		content = append(content, ch)
	}
	out, err = sjson.SetBytes(out, "text.content", string(content))
	if err != nil {
		return nil, fmt.Errorf("encoding state field text.content: %w", err)
	}

	return out, nil
}
