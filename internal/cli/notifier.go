package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formbuilder/pkg/editor"
)

// Notification colours.
const (
	ColorSuccess = "#10b981"
	ColorInfo    = "#3b82f6"
	ColorWarning = "#f59e0b"
)

// Notifier prints session notifications as styled single lines.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[editor.Level]lipgloss.Style
}

var _ editor.Notifier = (*Notifier)(nil)

// NewNotifier styles output for the colour profile of out.
func NewNotifier(out io.Writer) *Notifier {
	r := lipgloss.NewRenderer(out)
	return &Notifier{
		out: out,
		styles: map[editor.Level]lipgloss.Style{
			editor.LevelSuccess: r.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true),
			editor.LevelInfo:    r.NewStyle().Foreground(lipgloss.Color(ColorInfo)),
			editor.LevelWarning: r.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true),
		},
	}
}

// Notify implements editor.Notifier.
func (n *Notifier) Notify(_ context.Context, note editor.Notification) {
	if n == nil || n.out == nil || note.Message == "" {
		return
	}
	style, ok := n.styles[note.Level]
	if !ok {
		style = n.styles[editor.LevelInfo]
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, style.Render(prefix(note.Level)+note.Message))
}

func prefix(level editor.Level) string {
	switch level {
	case editor.LevelSuccess:
		return "✓ "
	case editor.LevelWarning:
		return "! "
	default:
		return ""
	}
}
