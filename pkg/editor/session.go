package editor

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/persist"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

const (
	msgUpdated     = "Field updated successfully!"
	msgDeleted     = "Field deleted successfully!"
	msgCleared     = "All fields cleared!"
	msgNothing     = "No fields to clear!"
	msgSaved       = "Form saved successfully!"
	msgAddFirst    = "Add some fields first!"
	msgExported    = "Form exported successfully!"
	msgFileRemoved = "File removed!"

	// PromptDelete is the confirmation question asked before Delete.
	PromptDelete = "Are you sure you want to delete this field?"
	// PromptClear is the confirmation question asked before ClearAll.
	PromptClear = "Are you sure you want to clear all fields?"
)

// Session is one editing session over a persisted field collection.
type Session struct {
	store     persist.Store
	slot      string
	codec     persist.Codec
	confirmer Confirmer
	notifier  Notifier
	logger    Logger
	listeners []ChangeFunc
	documents *vanilla.Renderer

	fields   []model.Field
	selected string
	factory  *model.Factory
	uploads  map[string][]model.UploadedFile
}

// New builds a session and loads the configured slot. Corrupt stored data or
// malformed ids are logged and replaced by an empty collection; storage I/O
// failures are returned.
func New(ctx context.Context, opts ...Option) (*Session, error) {
	s := &Session{
		store:     persist.NewMemoryStore(),
		slot:      persist.DefaultSlot,
		codec:     persist.NewCodec(),
		confirmer: AutoConfirm,
		notifier:  noopNotifier{},
		logger:    noopLogger{},
		uploads:   map[string][]model.UploadedFile{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load(ctx context.Context) error {
	fields, err := persist.Load(ctx, s.store, s.slot, s.codec)
	switch {
	case errors.Is(err, persist.ErrCorruptState):
		s.logger.Log(LogEvent{Level: LogWarn, Op: OpLoad, Message: "discarding corrupt form state", Err: err})
		fields = []model.Field{}
	case err != nil:
		return fmt.Errorf("editor: load slot %q: %w", s.slot, err)
	}

	next, err := persist.NextID(fields)
	if err != nil {
		s.logger.Log(LogEvent{Level: LogWarn, Op: OpLoad, Message: "discarding form state with malformed ids", Err: err})
		fields, next = []model.Field{}, 0
	}
	s.fields = fields
	s.factory = model.NewFactory(next)
	s.logger.Log(LogEvent{Level: LogDebug, Op: OpLoad, Message: fmt.Sprintf("loaded %d fields, next id %s", len(fields), model.FieldID(next))})
	return nil
}

// Fields returns a snapshot of the collection in display order.
func (s *Session) Fields() []model.Field {
	out := model.CloneFields(s.fields)
	if out == nil {
		out = []model.Field{}
	}
	return out
}

// Field returns a copy of the field with id.
func (s *Session) Field(id string) (model.Field, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Field{}, false
	}
	return s.fields[i].Clone(), true
}

// Count reports the number of fields.
func (s *Session) Count() int {
	return len(s.fields)
}

// NextID reports the id the next created field will receive.
func (s *Session) NextID() string {
	return model.FieldID(s.factory.Next())
}

// Select makes id the current selection. Unknown ids leave the selection
// untouched and return false.
func (s *Session) Select(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// ClearSelection deselects any field.
func (s *Session) ClearSelection() {
	s.selected = ""
}

// Selected returns the selected field, if any.
func (s *Session) Selected() (model.Field, bool) {
	if s.selected == "" {
		return model.Field{}, false
	}
	return s.Field(s.selected)
}

// Create mints a field of type t with default properties and appends it.
func (s *Session) Create(ctx context.Context, t model.FieldType) (model.Field, error) {
	field, err := s.factory.New(t)
	if err != nil {
		return model.Field{}, fmt.Errorf("editor: create field: %w", err)
	}
	if err := s.Append(ctx, field); err != nil {
		return model.Field{}, err
	}
	return field.Clone(), nil
}

// Append inserts field at the end of the collection. Ids already present are
// rejected with ErrDuplicateFieldID; ids beyond the counter advance it so they
// are never minted again.
func (s *Session) Append(ctx context.Context, field model.Field) error {
	if !field.Type.Valid() {
		return fmt.Errorf("editor: append field %q: %w", field.ID, &model.InvalidFieldTypeError{Type: string(field.Type)})
	}
	n, err := model.ParseFieldID(field.ID)
	if err != nil {
		return fmt.Errorf("editor: append field: %w", err)
	}
	if s.index(field.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateFieldID, field.ID)
	}
	if n >= s.factory.Next() {
		s.factory.Seed(n + 1)
	}

	field = field.Clone()
	if !field.Type.HasOptions() {
		field.Options = []string{}
	}
	s.fields = append(s.fields, field)
	return s.commit(ctx, OpAppend, field.ID)
}

// Update applies patch to the field with id. Unknown ids are a no-op and
// report false.
func (s *Session) Update(ctx context.Context, id string, patch model.Patch) (bool, error) {
	i := s.index(id)
	if i < 0 {
		s.logger.Log(LogEvent{Level: LogDebug, Op: OpUpdate, FieldID: id, Message: "ignoring update for unknown field"})
		return false, nil
	}
	patch.Apply(&s.fields[i])
	if err := s.commit(ctx, OpUpdate, id); err != nil {
		return true, err
	}
	s.notify(ctx, LevelSuccess, msgUpdated)
	return true, nil
}

// Delete removes the field with id after confirmation. Unknown ids are already
// satisfied and report false without prompting; a declined confirmation also
// reports false and changes nothing.
func (s *Session) Delete(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	ok, err := s.confirmer.Confirm(ctx, PromptDelete)
	if err != nil {
		return false, fmt.Errorf("editor: confirm delete: %w", err)
	}
	if !ok {
		return false, nil
	}

	s.fields = slices.Delete(s.fields, i, i+1)
	if s.selected == id {
		s.selected = ""
	}
	delete(s.uploads, id)
	if err := s.commit(ctx, OpDelete, id); err != nil {
		return true, err
	}
	s.notify(ctx, LevelSuccess, msgDeleted)
	return true, nil
}

// ClearAll empties the collection after confirmation. An empty collection is
// reported to the notifier and returns ErrEmptyCollection without prompting.
// That error is informational: the user has already been told there is
// nothing to clear, so callers treating it as a failure should check for it
// with errors.Is and carry on.
func (s *Session) ClearAll(ctx context.Context) (bool, error) {
	if len(s.fields) == 0 {
		s.notify(ctx, LevelInfo, msgNothing)
		return false, ErrEmptyCollection
	}
	ok, err := s.confirmer.Confirm(ctx, PromptClear)
	if err != nil {
		return false, fmt.Errorf("editor: confirm clear: %w", err)
	}
	if !ok {
		return false, nil
	}

	s.fields = []model.Field{}
	s.selected = ""
	clear(s.uploads)
	if err := s.commit(ctx, OpClear, ""); err != nil {
		return true, err
	}
	s.notify(ctx, LevelSuccess, msgCleared)
	return true, nil
}

// Reorder rebuilds the collection in the order given by ids. Ids that are not
// in the collection, or that repeat, are ignored; fields whose ids are missing
// from the input are dropped.
func (s *Session) Reorder(ctx context.Context, ids []string) error {
	byID := make(map[string]model.Field, len(s.fields))
	for _, field := range s.fields {
		byID[field.ID] = field
	}

	ordered := make([]model.Field, 0, len(ids))
	for _, id := range ids {
		field, ok := byID[id]
		if !ok {
			continue
		}
		ordered = append(ordered, field)
		delete(byID, id)
	}
	for id := range byID {
		s.logger.Log(LogEvent{Level: LogWarn, Op: OpReorder, FieldID: id, Message: "field missing from permutation was dropped"})
		delete(s.uploads, id)
		if s.selected == id {
			s.selected = ""
		}
	}
	s.fields = ordered
	return s.commit(ctx, OpReorder, "")
}

// Move relocates the field with id to index, clamped to the collection bounds,
// by issuing the equivalent permutation through Reorder.
func (s *Session) Move(ctx context.Context, id string, index int) error {
	from := s.index(id)
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFieldID, id)
	}
	ids := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		if field.ID != id {
			ids = append(ids, field.ID)
		}
	}
	index = max(0, min(index, len(ids)))
	ids = slices.Insert(ids, index, id)
	return s.Reorder(ctx, ids)
}

// Save writes the collection to the slot and confirms it to the user.
func (s *Session) Save(ctx context.Context) error {
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.logger.Log(LogEvent{Level: LogDebug, Op: OpSave, Message: fmt.Sprintf("saved %d fields", len(s.fields))})
	s.notify(ctx, LevelSuccess, msgSaved)
	return nil
}

// Preview returns the preview markup. Empty collections are reported to the
// notifier and return ErrEmptyCollection.
func (s *Session) Preview(ctx context.Context) (*markup.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.fields) == 0 {
		s.notify(ctx, LevelInfo, msgAddFirst)
		return nil, ErrEmptyCollection
	}
	return vanilla.PreviewView(s.fields), nil
}

// Editor returns the editor canvas markup including the current selection and
// upload previews.
func (s *Session) Editor() *markup.Node {
	return vanilla.EditorView(s.fields, s.selected, vanilla.WithUploads(s.uploads))
}

// Properties returns the properties panel for the current selection.
func (s *Session) Properties() *markup.Node {
	if field, ok := s.Selected(); ok {
		return vanilla.PropertiesView(&field)
	}
	return vanilla.PropertiesView(nil)
}

// Export renders the standalone document for the current collection.
func (s *Session) Export(ctx context.Context, options render.RenderOptions) ([]byte, error) {
	preview, err := s.Preview(ctx)
	if err != nil {
		return nil, err
	}
	var doc []byte
	if s.documents != nil {
		doc, err = s.documents.Document(preview, options)
	} else {
		doc, err = vanilla.ExportDocument(preview, options)
	}
	if err != nil {
		return nil, fmt.Errorf("editor: export: %w", err)
	}
	s.notify(ctx, LevelSuccess, msgExported)
	return doc, nil
}

func (s *Session) index(id string) int {
	return slices.IndexFunc(s.fields, func(f model.Field) bool { return f.ID == id })
}

func (s *Session) persist(ctx context.Context) error {
	if err := persist.Save(ctx, s.store, s.slot, s.codec, s.fields); err != nil {
		return fmt.Errorf("editor: save slot %q: %w", s.slot, err)
	}
	return nil
}

// commit persists the collection and notifies listeners. A failed write is
// logged and returned; the in-memory change is kept so the next commit can
// retry it.
func (s *Session) commit(ctx context.Context, op Op, fieldID string) error {
	if err := s.persist(ctx); err != nil {
		s.logger.Log(LogEvent{Level: LogError, Op: op, FieldID: fieldID, Message: "persist failed", Err: err})
		return err
	}
	s.logger.Log(LogEvent{Level: LogDebug, Op: op, FieldID: fieldID, Message: fmt.Sprintf("%d fields", len(s.fields))})
	s.changed(ctx, op, fieldID)
	return nil
}

func (s *Session) changed(ctx context.Context, op Op, fieldID string) {
	if len(s.listeners) == 0 {
		return
	}
	change := Change{
		Op:       op,
		FieldID:  fieldID,
		Fields:   s.Fields(),
		Selected: s.selected,
		Count:    len(s.fields),
	}
	for _, fn := range s.listeners {
		fn(ctx, change)
	}
}

func (s *Session) notify(ctx context.Context, level Level, message string) {
	s.notifier.Notify(ctx, Notification{Level: level, Message: message})
}
