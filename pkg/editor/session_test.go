package editor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/persist"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

type recorder struct {
	notifications []editor.Notification
	prompts       []string
	answer        bool
	changes       []editor.Change
	logs          []editor.LogEvent
}

func (r *recorder) options() []editor.Option {
	return []editor.Option{
		editor.WithNotifier(editor.NotifierFunc(func(_ context.Context, n editor.Notification) {
			r.notifications = append(r.notifications, n)
		})),
		editor.WithConfirmer(editor.ConfirmerFunc(func(_ context.Context, prompt string) (bool, error) {
			r.prompts = append(r.prompts, prompt)
			return r.answer, nil
		})),
		editor.WithChangeListener(func(_ context.Context, change editor.Change) {
			r.changes = append(r.changes, change)
		}),
		editor.WithLogger(editor.LoggerFunc(func(event editor.LogEvent) {
			r.logs = append(r.logs, event)
		})),
	}
}

func (r *recorder) messages() []string {
	out := make([]string, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, n.Message)
	}
	return out
}

func newSession(t *testing.T, store persist.Store, opts ...editor.Option) (*editor.Session, *recorder) {
	t.Helper()
	rec := &recorder{answer: true}
	all := append(rec.options(), editor.WithStore(store))
	all = append(all, opts...)
	session, err := editor.New(context.Background(), all...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session, rec
}

func ids(fields []model.Field) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.ID)
	}
	return out
}

func mustCreate(t *testing.T, s *editor.Session, types ...model.FieldType) []string {
	t.Helper()
	var out []string
	for _, typ := range types {
		field, err := s.Create(context.Background(), typ)
		if err != nil {
			t.Fatalf("create %s: %v", typ, err)
		}
		out = append(out, field.ID)
	}
	return out
}

func stored(t *testing.T, store persist.Store) []model.Field {
	t.Helper()
	fields, err := persist.Load(context.Background(), store, persist.DefaultSlot, persist.NewCodec())
	if err != nil {
		t.Fatalf("load stored fields: %v", err)
	}
	return fields
}

func TestSession_CreatePersistsDefaults(t *testing.T) {
	store := persist.NewMemoryStore()
	s, rec := newSession(t, store)

	field, err := s.Create(context.Background(), model.FieldTypeText)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := model.Field{ID: "field_0", Type: model.FieldTypeText, Label: "Text Input", Placeholder: "Enter text...", Options: []string{}}
	if diff := cmp.Diff(want, field); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.Field{want}, stored(t, store)); diff != "" {
		t.Fatalf("persisted mismatch (-want +got):\n%s", diff)
	}
	if len(rec.changes) != 1 || rec.changes[0].Op != editor.OpAppend || rec.changes[0].Count != 1 {
		t.Fatalf("unexpected change events: %+v", rec.changes)
	}

	if _, err := s.Create(context.Background(), "slider"); !errors.Is(err, model.ErrInvalidFieldType) {
		t.Fatalf("expected ErrInvalidFieldType, got %v", err)
	}
	if s.NextID() != "field_1" {
		t.Fatalf("rejected types must not consume ids, next is %s", s.NextID())
	}
}

func TestSession_SelectUpdateOptions(t *testing.T) {
	ctx := context.Background()
	s, rec := newSession(t, persist.NewMemoryStore())
	created := mustCreate(t, s, model.FieldTypeSelect)

	field, _ := s.Field(created[0])
	if diff := cmp.Diff([]string{"Option 1", "Option 2", "Option 3"}, field.Options); diff != "" {
		t.Fatalf("default options mismatch (-want +got):\n%s", diff)
	}

	ok, err := s.Update(ctx, created[0], model.Patch{Label: "Plan", Placeholder: "ignored", Required: true, Options: "A\nB\n\nC"})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	field, _ = s.Field(created[0])
	if diff := cmp.Diff([]string{"A", "B", "C"}, field.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if field.Label != "Plan" || !field.Required || field.Placeholder != "" {
		t.Fatalf("unexpected field after update: %+v", field)
	}
	if diff := cmp.Diff([]string{"Field updated successfully!"}, rec.messages()); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	ok, err = s.Update(ctx, "field_99", model.Patch{Label: "x"})
	if err != nil || ok {
		t.Fatalf("unknown id must be a silent no-op: ok=%v err=%v", ok, err)
	}
}

func TestSession_UpdatePlaceholderRules(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, persist.NewMemoryStore())
	created := mustCreate(t, s, model.FieldTypeEmail, model.FieldTypeFile)

	patch := model.Patch{Label: "L", Placeholder: "custom", Options: "X\nY"}
	for _, id := range created {
		if _, err := s.Update(ctx, id, patch); err != nil {
			t.Fatalf("update %s: %v", id, err)
		}
	}
	email, _ := s.Field(created[0])
	file, _ := s.Field(created[1])
	if email.Placeholder != "custom" || len(email.Options) != 0 {
		t.Fatalf("email patch mismatch: %+v", email)
	}
	if file.Placeholder != "Choose file..." {
		t.Fatalf("file placeholder must keep its default, got %q", file.Placeholder)
	}
}

func TestSession_ReorderPermutation(t *testing.T) {
	ctx := context.Background()
	store := persist.NewMemoryStore()
	s, _ := newSession(t, store)
	created := mustCreate(t, s, model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeDate)

	if err := s.Reorder(ctx, []string{created[2], created[0], created[1]}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	want := []string{created[2], created[0], created[1]}
	if diff := cmp.Diff(want, ids(s.Fields())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, ids(stored(t, store))); diff != "" {
		t.Fatalf("persisted order mismatch (-want +got):\n%s", diff)
	}

	before := s.Fields()
	if err := s.Reorder(ctx, ids(before)); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if diff := cmp.Diff(before, s.Fields()); diff != "" {
		t.Fatalf("reordering with the current order must be a no-op (-want +got):\n%s", diff)
	}
}

func TestSession_ReorderDegradesGracefully(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, persist.NewMemoryStore())
	created := mustCreate(t, s, model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeDate)
	s.Select(created[1])

	if err := s.Reorder(ctx, []string{"field_42", created[2], created[2], created[0]}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if diff := cmp.Diff([]string{created[2], created[0]}, ids(s.Fields())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("dropping the selected field must clear the selection")
	}
}

func TestSession_Move(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, persist.NewMemoryStore())
	created := mustCreate(t, s, model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeDate)

	if err := s.Move(ctx, created[0], 10); err != nil {
		t.Fatalf("move: %v", err)
	}
	if diff := cmp.Diff([]string{created[1], created[2], created[0]}, ids(s.Fields())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if err := s.Move(ctx, created[2], -1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if diff := cmp.Diff([]string{created[2], created[1], created[0]}, ids(s.Fields())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if err := s.Move(ctx, "field_9", 0); !errors.Is(err, editor.ErrUnknownFieldID) {
		t.Fatalf("expected ErrUnknownFieldID, got %v", err)
	}
}

func TestSession_Delete(t *testing.T) {
	ctx := context.Background()
	store := persist.NewMemoryStore()
	s, rec := newSession(t, store)
	created := mustCreate(t, s, model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeDate)
	s.Select(created[0])

	rec.answer = false
	ok, err := s.Delete(ctx, created[1])
	if err != nil || ok || s.Count() != 3 {
		t.Fatalf("declined delete must not change state: ok=%v err=%v count=%d", ok, err, s.Count())
	}

	rec.answer = true
	ok, err = s.Delete(ctx, created[1])
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff([]string{created[0], created[2]}, ids(stored(t, store))); diff != "" {
		t.Fatalf("remaining ids must not be renumbered (-want +got):\n%s", diff)
	}
	if selected, ok := s.Selected(); !ok || selected.ID != created[0] {
		t.Fatalf("deleting another field must keep the selection")
	}

	ok, err = s.Delete(ctx, created[0])
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("deleting the selected field must clear the selection")
	}

	prompts := len(rec.prompts)
	ok, err = s.Delete(ctx, created[1])
	if err != nil || ok || len(rec.prompts) != prompts {
		t.Fatalf("unknown ids are already deleted and must not prompt")
	}

	if diff := cmp.Diff([]string{"Field deleted successfully!", "Field deleted successfully!"}, rec.messages()); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	field, err := s.Create(ctx, model.FieldTypeTel)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if field.ID != "field_3" {
		t.Fatalf("ids must never be reused, got %s", field.ID)
	}
}

func TestSession_ClearAllEmpty(t *testing.T) {
	s, rec := newSession(t, persist.NewMemoryStore())

	ok, err := s.ClearAll(context.Background())
	if ok || !errors.Is(err, editor.ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got ok=%v err=%v", ok, err)
	}
	if len(rec.prompts) != 0 {
		t.Fatalf("clearing an empty collection must not prompt")
	}
	if diff := cmp.Diff([]string{"No fields to clear!"}, rec.messages()); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
	if s.Count() != 0 {
		t.Fatalf("collection must remain empty")
	}
}

func TestSession_ClearAll(t *testing.T) {
	ctx := context.Background()
	store := persist.NewMemoryStore()
	s, rec := newSession(t, store)
	created := mustCreate(t, s, model.FieldTypeText, model.FieldTypeFile)
	s.Select(created[0])

	rec.answer = false
	if ok, err := s.ClearAll(ctx); ok || err != nil || s.Count() != 2 {
		t.Fatalf("declined clear must abort: ok=%v err=%v", ok, err)
	}

	rec.answer = true
	if ok, err := s.ClearAll(ctx); !ok || err != nil {
		t.Fatalf("clear: ok=%v err=%v", ok, err)
	}
	if s.Count() != 0 || len(stored(t, store)) != 0 {
		t.Fatalf("clear must empty memory and storage")
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("clear must reset the selection")
	}
	if diff := cmp.Diff([]string{editor.PromptClear, editor.PromptClear}, rec.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if got := rec.messages(); got[len(got)-1] != "All fields cleared!" {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

func TestSession_AppendRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, persist.NewMemoryStore())

	if err := s.Append(ctx, model.Field{ID: "field_5", Type: model.FieldTypeRadio, Options: []string{"a"}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, model.Field{ID: "field_5", Type: model.FieldTypeText}); !errors.Is(err, editor.ErrDuplicateFieldID) {
		t.Fatalf("expected ErrDuplicateFieldID, got %v", err)
	}
	if err := s.Append(ctx, model.Field{ID: "custom", Type: model.FieldTypeText}); !errors.Is(err, model.ErrInvalidFieldID) {
		t.Fatalf("expected ErrInvalidFieldID, got %v", err)
	}

	field, err := s.Create(ctx, model.FieldTypeText)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if field.ID != "field_6" {
		t.Fatalf("counter must advance past appended ids, got %s", field.ID)
	}
}

func TestSession_IDsStayUnique(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, persist.NewMemoryStore())

	types := model.FieldTypes()
	for round := 0; round < 3; round++ {
		mustCreate(t, s, types...)
		current := ids(s.Fields())
		if _, err := s.Delete(ctx, current[round]); err != nil {
			t.Fatalf("delete: %v", err)
		}
		reversed := ids(s.Fields())
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		if err := s.Reorder(ctx, reversed); err != nil {
			t.Fatalf("reorder: %v", err)
		}

		seen := map[string]bool{}
		for _, id := range ids(s.Fields()) {
			if seen[id] {
				t.Fatalf("duplicate id %s after round %d", id, round)
			}
			seen[id] = true
		}
	}
}

func TestSession_LoadsPersistedState(t *testing.T) {
	ctx := context.Background()
	store := persist.NewMemoryStore()
	fields := []model.Field{
		{ID: "field_0", Type: model.FieldTypeText, Label: "A", Options: []string{}},
		{ID: "field_2", Type: model.FieldTypeCheckbox, Label: "B", Required: true, Options: []string{}},
	}
	if err := persist.Save(ctx, store, persist.DefaultSlot, persist.NewCodec(), fields); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, _ := newSession(t, store)
	if diff := cmp.Diff(fields, s.Fields()); diff != "" {
		t.Fatalf("loaded fields mismatch (-want +got):\n%s", diff)
	}
	if s.NextID() != "field_3" {
		t.Fatalf("expected next id field_3, got %s", s.NextID())
	}
}

func TestSession_CorruptStateDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"syntax":      `[{"id":`,
		"unknown":     `[{"id":"field_0","type":"slider"}]`,
		"malformedID": `[{"id":"legacy","type":"text"}]`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			store := persist.NewMemoryStore()
			if err := store.Put(ctx, persist.DefaultSlot, []byte(blob)); err != nil {
				t.Fatalf("seed: %v", err)
			}
			s, rec := newSession(t, store)
			if s.Count() != 0 || s.NextID() != "field_0" {
				t.Fatalf("expected empty session, got %d fields next %s", s.Count(), s.NextID())
			}
			var warned bool
			for _, event := range rec.logs {
				if event.Level == editor.LogWarn && event.Op == editor.OpLoad && event.Err != nil {
					warned = true
				}
			}
			if !warned {
				t.Fatalf("expected a load warning, got %+v", rec.logs)
			}
			if _, err := s.Create(ctx, model.FieldTypeText); err != nil {
				t.Fatalf("session must stay usable: %v", err)
			}
		})
	}
}

func TestSession_SlotAndCodecOptions(t *testing.T) {
	ctx := context.Background()
	store := persist.NewMemoryStore()
	codec := persist.NewCodec(persist.WithFormat(persist.FormatYAML))
	s, _ := newSession(t, store, editor.WithSlot("signup"), editor.WithCodec(codec))
	mustCreate(t, s, model.FieldTypeText)

	data, ok, err := store.Get(ctx, "signup")
	if err != nil || !ok {
		t.Fatalf("expected signup slot: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(string(data), "- id: field_0") {
		t.Fatalf("expected yaml payload, got %s", data)
	}
	if _, ok, _ := store.Get(ctx, persist.DefaultSlot); ok {
		t.Fatalf("default slot must stay untouched")
	}
}

func TestSession_PreviewAndExport(t *testing.T) {
	ctx := context.Background()
	s, rec := newSession(t, persist.NewMemoryStore())

	if _, err := s.Preview(ctx); !errors.Is(err, editor.ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
	if _, err := s.Export(ctx, render.RenderOptions{}); !errors.Is(err, editor.ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}

	mustCreate(t, s, model.FieldTypeRadio)
	preview, err := s.Preview(ctx)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(preview.Find(markup.ByClass("form-group"))) != 2 {
		t.Fatalf("expected field group plus submit group:\n%s", preview)
	}

	doc, err := s.Export(ctx, render.RenderOptions{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(doc), "<title>Generated Form</title>") {
		t.Fatalf("unexpected document:\n%s", doc)
	}

	want := []string{"Add some fields first!", "Add some fields first!", "Form exported successfully!"}
	if diff := cmp.Diff(want, rec.messages()); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_SaveAndViews(t *testing.T) {
	ctx := context.Background()
	s, rec := newSession(t, persist.NewMemoryStore())
	created := mustCreate(t, s, model.FieldTypeText)

	if err := s.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if diff := cmp.Diff([]string{"Form saved successfully!"}, rec.messages()); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(s.Properties().String(), "Select a field to edit its properties") {
		t.Fatalf("expected no-selection panel")
	}
	if !s.Select(created[0]) || s.Select("field_77") {
		t.Fatalf("select must accept known ids only")
	}
	if len(s.Editor().Find(markup.ByClass("selected"))) != 1 {
		t.Fatalf("editor view must mark the selection")
	}
	if len(s.Properties().Find(markup.ByTag("button"))) != 1 {
		t.Fatalf("expected the update button in the properties panel")
	}
	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Fatalf("selection must be cleared")
	}
}
