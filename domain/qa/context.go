package qa

import (
	"fmt"
	"strings"
)

// ContextLine is one rendered message excerpt inside a window.
type ContextLine struct {
	MessageID string
	Rendered  string
}

// ContextWindow is the ordered sequence of message excerpts selected for a
// question. Its rendered length never exceeds the budget it was built
// against, and the ordering is deterministic for identical inputs.
type ContextWindow struct {
	Lines []ContextLine
}

// RenderLine produces the single-line excerpt format used inside the
// context block: author, send timestamp and text on one line, so the model
// can reason about absolute versus relative time.
func (m Message) RenderLine() string {
	return fmt.Sprintf("- %s (on %s): %s", m.UserName, m.Raw, m.Text)
}

func (w ContextWindow) Empty() bool {
	return len(w.Lines) == 0
}

// Render joins the selected lines. Its length is what the character budget
// is measured against.
func (w ContextWindow) Render() string {
	parts := make([]string, len(w.Lines))
	for i, line := range w.Lines {
		parts[i] = line.Rendered
	}
	return strings.Join(parts, "\n")
}

// Len is the rendered length in bytes, separators included.
func (w ContextWindow) Len() int {
	if len(w.Lines) == 0 {
		return 0
	}
	total := len(w.Lines) - 1
	for _, line := range w.Lines {
		total += len(line.Rendered)
	}
	return total
}
