package editor

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Level classifies notifications shown to the person editing the form.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notification is a short user-facing message about the outcome of an
// operation.
type Notification struct {
	Level   Level
	Message string
}

// Notifier displays notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	if f != nil {
		f(ctx, n)
	}
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Notification) {}

// Confirmer gates destructive operations behind a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	if f == nil {
		return true, nil
	}
	return f(ctx, prompt)
}

// AutoConfirm approves every prompt. It is the default for sessions built
// without an interactive front end.
var AutoConfirm Confirmer = ConfirmerFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

// LogLevel is the severity of a LogEvent.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// LogEvent describes something worth recording about the session.
type LogEvent struct {
	Level   LogLevel
	Op      Op
	FieldID string
	Message string
	Err     error
}

// Logger records session events.
type Logger interface {
	Log(event LogEvent)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(LogEvent)

// Log implements Logger.
func (f LoggerFunc) Log(event LogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) Log(LogEvent) {}

// Op names a session operation.
type Op string

const (
	OpLoad    Op = "load"
	OpAppend  Op = "append"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpClear   Op = "clear"
	OpReorder Op = "reorder"
	OpSave    Op = "save"
	OpSelect  Op = "select"
	OpUpload  Op = "upload"
)

// Change is delivered to listeners after a mutation has been persisted.
// Fields is a snapshot and may be retained by the listener.
type Change struct {
	Op       Op
	FieldID  string
	Fields   []model.Field
	Selected string
	Count    int
}

// ChangeFunc receives session changes, typically to re-render views.
type ChangeFunc func(ctx context.Context, change Change)
