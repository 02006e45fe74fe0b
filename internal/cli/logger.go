package cli

import (
	"io"
	"log"

	"github.com/goliatone/go-formbuilder/pkg/editor"
)

// NewLogger adapts the standard logger to editor.Logger. Debug events are
// dropped unless verbose is set.
func NewLogger(out io.Writer, verbose bool) editor.Logger {
	logger := log.New(out, "formbuilder: ", log.LstdFlags)
	return editor.LoggerFunc(func(event editor.LogEvent) {
		if event.Level == editor.LogDebug && !verbose {
			return
		}
		line := "[" + string(event.Level) + "] " + string(event.Op)
		if event.FieldID != "" {
			line += " " + event.FieldID
		}
		if event.Message != "" {
			line += ": " + event.Message
		}
		if event.Err != nil {
			line += ": " + event.Err.Error()
		}
		logger.Println(line)
	})
}
