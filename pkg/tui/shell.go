package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Action is one entry of the shell menu.
type Action string

const (
	ActionAdd     Action = "Add field"
	ActionEdit    Action = "Edit field"
	ActionDelete  Action = "Delete field"
	ActionMove    Action = "Move field"
	ActionClear   Action = "Clear all"
	ActionList    Action = "List fields"
	ActionPreview Action = "Preview"
	ActionExport  Action = "Export"
	ActionQuit    Action = "Quit"
)

// Actions lists the menu in display order.
func Actions() []Action {
	return []Action{ActionAdd, ActionEdit, ActionDelete, ActionMove, ActionClear, ActionList, ActionPreview, ActionExport, ActionQuit}
}

// ExportFunc receives the exported document.
type ExportFunc func(ctx context.Context, document []byte) error

// Shell is an interactive editing loop over a Session.
type Shell struct {
	session *editor.Session
	driver  PromptDriver
	export  ExportFunc
	options render.RenderOptions
}

// ShellOption customises a Shell.
type ShellOption func(*Shell)

// WithExporter handles documents produced by the Export action. Without one
// the document is printed.
func WithExporter(fn ExportFunc) ShellOption {
	return func(s *Shell) {
		s.export = fn
	}
}

// WithRenderOptions sets the title and theme used by Export.
func WithRenderOptions(options render.RenderOptions) ShellOption {
	return func(s *Shell) {
		s.options = options
	}
}

// NewShell binds a session to a prompt driver.
func NewShell(session *editor.Session, driver PromptDriver, opts ...ShellOption) (*Shell, error) {
	if session == nil {
		return nil, errors.New("tui: session is required")
	}
	if driver == nil {
		return nil, errors.New("tui: prompt driver is required")
	}
	s := &Shell{session: session, driver: driver}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Run shows the menu until Quit is chosen or the menu prompt is aborted.
// Aborting a prompt inside an action cancels that action only.
func (s *Shell) Run(ctx context.Context) error {
	actions := Actions()
	labels := make([]string, len(actions))
	for i, action := range actions {
		labels[i] = string(action)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:  fmt.Sprintf("Form builder (%d fields)", s.session.Count()),
			Options:  labels,
			PageSize: len(labels),
		})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}
		if actions[idx] == ActionQuit {
			return nil
		}
		if err := s.Do(ctx, actions[idx]); err != nil {
			if errors.Is(err, ErrAborted) {
				continue
			}
			return err
		}
	}
}

// Do performs a single menu action.
func (s *Shell) Do(ctx context.Context, action Action) error {
	switch action {
	case ActionAdd:
		return s.add(ctx)
	case ActionEdit:
		return s.withField(ctx, "Edit which field?", s.edit)
	case ActionDelete:
		return s.withField(ctx, "Delete which field?", func(ctx context.Context, id string) error {
			_, err := s.session.Delete(ctx, id)
			return err
		})
	case ActionMove:
		return s.withField(ctx, "Move which field?", s.move)
	case ActionClear:
		_, err := s.session.ClearAll(ctx)
		return ignoreEmpty(err)
	case ActionList:
		return s.list(ctx)
	case ActionPreview:
		preview, err := s.session.Preview(ctx)
		if err != nil {
			return ignoreEmpty(err)
		}
		return s.driver.Info(ctx, preview.String())
	case ActionExport:
		return s.exportDocument(ctx)
	case ActionQuit:
		return nil
	default:
		return fmt.Errorf("tui: unknown action %q", action)
	}
}

func (s *Shell) add(ctx context.Context) error {
	types := model.FieldTypes()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = t.String()
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Field type", Options: options, PageSize: len(options)})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(types) {
		return nil
	}
	field, err := s.session.Create(ctx, types[idx])
	if err != nil {
		return err
	}
	s.session.Select(field.ID)
	return s.driver.Info(ctx, fmt.Sprintf("Added %s (%s)", field.ID, field.Label))
}

func (s *Shell) edit(ctx context.Context, id string) error {
	s.session.Select(id)
	field, ok := s.session.Selected()
	if !ok {
		return nil
	}

	patch := model.Patch{Placeholder: field.Placeholder, Options: model.OptionsText(field.Options)}
	var err error
	if patch.Label, err = s.driver.Input(ctx, InputConfig{Message: "Field Label", Default: field.Label}); err != nil {
		return err
	}
	if field.Type.SupportsPlaceholder() {
		if patch.Placeholder, err = s.driver.Input(ctx, InputConfig{Message: "Placeholder", Default: field.Placeholder}); err != nil {
			return err
		}
	}
	if field.Type.HasOptions() {
		if patch.Options, err = s.driver.TextArea(ctx, TextAreaConfig{Message: "Options (one per line)", Default: patch.Options}); err != nil {
			return err
		}
	}
	if patch.Required, err = s.driver.Confirm(ctx, ConfirmConfig{Message: "Required Field", Default: field.Required}); err != nil {
		return err
	}
	_, err = s.session.Update(ctx, id, patch)
	return err
}

func (s *Shell) move(ctx context.Context, id string) error {
	count := s.session.Count()
	raw, err := s.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("New position (1-%d)", count),
		Validator: func(value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 1 || n > count {
				return fmt.Errorf("enter a number between 1 and %d", count)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	position, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("tui: invalid position %q", raw)
	}
	return s.session.Move(ctx, id, position-1)
}

func (s *Shell) list(ctx context.Context) error {
	fields := s.session.Fields()
	if len(fields) == 0 {
		return s.driver.Info(ctx, "No fields yet.")
	}
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(describe(i, field))
	}
	return s.driver.Info(ctx, b.String())
}

func (s *Shell) exportDocument(ctx context.Context) error {
	doc, err := s.session.Export(ctx, s.options)
	if err != nil {
		return ignoreEmpty(err)
	}
	if s.export != nil {
		return s.export(ctx, doc)
	}
	return s.driver.Info(ctx, string(doc))
}

func (s *Shell) withField(ctx context.Context, message string, fn func(context.Context, string) error) error {
	fields := s.session.Fields()
	if len(fields) == 0 {
		return s.driver.Info(ctx, "Add some fields first!")
	}
	options := make([]string, len(fields))
	for i, field := range fields {
		options[i] = describe(i, field)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(fields) {
		return nil
	}
	return fn(ctx, fields[idx].ID)
}

func describe(i int, field model.Field) string {
	line := fmt.Sprintf("%d. %s [%s] %s", i+1, field.ID, field.Type, field.Label)
	if field.Required {
		line += " *"
	}
	return line
}

func ignoreEmpty(err error) error {
	if errors.Is(err, editor.ErrEmptyCollection) {
		return nil
	}
	return err
}
