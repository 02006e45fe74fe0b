package vanilla_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestEditorView_EmptyState(t *testing.T) {
	view := vanilla.EditorView(nil, "")

	if !view.HasClass("empty-state") {
		t.Fatalf("expected empty-state root, got %q", view.Classes())
	}
	paragraphs := view.Find(markup.ByTag("p"))
	if len(paragraphs) != 1 || paragraphs[0].TextContent() != "Drag and drop fields here to build your form" {
		t.Fatalf("unexpected empty state message: %s", view)
	}
}

func TestEditorView_CardsFollowCollectionOrder(t *testing.T) {
	fields := []model.Field{
		{ID: "field_2", Type: model.FieldTypeEmail, Label: "Email", Placeholder: "Enter email address..."},
		{ID: "field_0", Type: model.FieldTypeCheckbox, Label: "Agree", Required: true},
		{ID: "field_1", Type: model.FieldTypeTextarea, Label: "Bio", Required: true},
	}
	view := vanilla.EditorView(fields, "field_0")

	cards := view.Find(markup.ByClass("form-field"))
	var ids []string
	for _, card := range cards {
		id, _ := card.Attr("data-field-id")
		ids = append(ids, id)
		if draggable, _ := card.Attr("draggable"); draggable != "true" {
			t.Fatalf("card %s must be draggable", id)
		}
		if got := len(card.Find(markup.ByClass("field-action-btn"))); got != 2 {
			t.Fatalf("card %s: expected edit and delete buttons, got %d", id, got)
		}
	}
	if diff := cmp.Diff([]string{"field_2", "field_0", "field_1"}, ids); diff != "" {
		t.Fatalf("card order mismatch (-want +got):\n%s", diff)
	}

	if cards[0].HasClass("selected") || !cards[1].HasClass("selected") {
		t.Fatalf("only the selected field carries the selected class")
	}

	badge := cards[0].Find(markup.ByClass("field-type-badge"))[0]
	if badge.TextContent() != "email" {
		t.Fatalf("badge text mismatch: %q", badge.TextContent())
	}

	content := cards[1].Find(markup.ByClass("field-content"))[0]
	for _, child := range content.Children {
		if child.Tag == "label" {
			t.Fatalf("checkbox cards must not render a header label")
		}
	}
	inline := cards[1].Find(markup.ByTag("label"))
	if len(inline) != 1 || inline[0].TextContent() != "Agree" {
		t.Fatalf("expected inline checkbox label without marker, got %s", cards[1])
	}
	if forID, _ := inline[0].Attr("for"); forID != "field_0_cb" {
		t.Fatalf("checkbox label for mismatch: %q", forID)
	}

	textareaLabel := cards[2].Find(markup.ByTag("label"))[0]
	if textareaLabel.TextContent() != "Bio *" {
		t.Fatalf("required marker missing: %q", textareaLabel.TextContent())
	}
	if !cards[2].Find(markup.ByTag("textarea"))[0].Has("required") {
		t.Fatalf("textarea must carry required")
	}
}

func TestEditorView_SelectGolden(t *testing.T) {
	fields := []model.Field{
		{ID: "field_3", Type: model.FieldTypeSelect, Label: "Plan", Required: true, Options: []string{"Free", "Pro & Co"}},
	}
	got := vanilla.EditorView(fields, "field_3").String()
	testsupport.AssertGolden(t, filepath.Join("testdata", "editor_select.golden"), []byte(got))
}

func TestEditorView_FileDropzone(t *testing.T) {
	field := model.Field{ID: "field_4", Type: model.FieldTypeFile, Label: "Attachments", Placeholder: "Choose file..."}
	uploads := map[string][]model.UploadedFile{
		"field_4": {
			{Name: "cv.pdf", Size: 1536},
			{Name: "photo.png", ContentType: "image/png", Size: 0},
		},
	}
	view := vanilla.EditorView([]model.Field{field}, "", vanilla.WithUploads(uploads))

	wrapper := view.Find(markup.ByClass("file-upload-wrapper"))
	if len(wrapper) != 1 {
		t.Fatalf("expected one upload wrapper")
	}
	if id, _ := wrapper[0].Attr("data-field-id"); id != "field_4" {
		t.Fatalf("wrapper data-field-id mismatch: %q", id)
	}
	zone := view.Find(markup.ByClass("file-upload-zone"))[0]
	if id, _ := zone.Attr("id"); id != "upload_field_4" {
		t.Fatalf("zone id mismatch: %q", id)
	}
	input := zone.Find(markup.ByTag("input"))[0]
	if kind, _ := input.Attr("type"); kind != "file" || !input.Has("multiple") {
		t.Fatalf("expected multiple file input, got %s", input)
	}
	if id, _ := input.Attr("id"); id != "file_field_4" {
		t.Fatalf("file input id mismatch: %q", id)
	}

	container := view.Find(markup.ByClass("file-preview-container"))[0]
	if id, _ := container.Attr("id"); id != "preview_field_4" {
		t.Fatalf("preview container id mismatch: %q", id)
	}
	items := container.Find(markup.ByClass("file-preview-item"))
	if len(items) != 2 {
		t.Fatalf("expected 2 preview items, got %d", len(items))
	}
	sizes := view.Find(markup.ByClass("file-preview-size"))
	if sizes[0].TextContent() != "1.5 KB" || sizes[1].TextContent() != "0 Bytes" {
		t.Fatalf("unexpected sizes: %q, %q", sizes[0].TextContent(), sizes[1].TextContent())
	}
	icons := view.Find(markup.ByClass("file-preview-icon"))
	if icons[0].TextContent() != "📄" || icons[1].TextContent() != "🖼️" {
		t.Fatalf("unexpected icons: %q, %q", icons[0].TextContent(), icons[1].TextContent())
	}
	remove := view.Find(markup.ByClass("file-remove-btn"))[1]
	if name, _ := remove.Attr("data-file-name"); name != "photo.png" {
		t.Fatalf("remove button file name mismatch: %q", name)
	}
}

func TestPreviewView_Golden(t *testing.T) {
	fields := []model.Field{
		{ID: "field_0", Type: model.FieldTypeText, Label: "Name", Placeholder: "Enter text...", Required: true},
		{ID: "field_1", Type: model.FieldTypeRadio, Label: "Pick", Options: []string{"Yes", "No"}},
	}
	got := vanilla.PreviewView(fields).String()
	testsupport.AssertGolden(t, filepath.Join("testdata", "preview.golden"), []byte(got))
}

func TestPreviewView_RadioGroupSharesName(t *testing.T) {
	field := model.Field{ID: "field_7", Type: model.FieldTypeRadio, Label: "Continue?", Required: true, Options: []string{"Yes", "No"}}
	view := vanilla.PreviewView([]model.Field{field})

	radios := view.Find(func(n *markup.Node) bool {
		kind, _ := n.Attr("type")
		return n.Tag == "input" && kind == "radio"
	})
	if len(radios) != 2 {
		t.Fatalf("expected two radio controls, got %d", len(radios))
	}
	for i, radio := range radios {
		if name, _ := radio.Attr("name"); name != "preview_field_7" {
			t.Fatalf("radio %d name mismatch: %q", i, name)
		}
		if !radio.Has("required") {
			t.Fatalf("radio %d must repeat the required attribute", i)
		}
	}

	labels := view.Find(func(n *markup.Node) bool { return n.Tag == "label" && n.Has("for") })
	var texts []string
	for _, label := range labels {
		texts = append(texts, label.TextContent())
	}
	if diff := cmp.Diff([]string{"Yes", "No"}, texts); diff != "" {
		t.Fatalf("radio labels mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewView_CheckboxAndFile(t *testing.T) {
	fields := []model.Field{
		{ID: "field_0", Type: model.FieldTypeCheckbox, Label: "Agree", Required: true},
		{ID: "field_1", Type: model.FieldTypeFile, Label: "CV", Placeholder: "Choose file..."},
	}
	view := vanilla.PreviewView(fields)

	groups := view.Find(markup.ByClass("form-group"))
	if len(groups) != 3 {
		t.Fatalf("expected two field groups plus submit group, got %d", len(groups))
	}

	label := groups[0].Find(markup.ByTag("label"))[0]
	if label.TextContent() != "Agree *" {
		t.Fatalf("preview checkbox label must include required marker, got %q", label.TextContent())
	}
	if forID, _ := label.Attr("for"); forID != "preview_field_0" {
		t.Fatalf("checkbox label for mismatch: %q", forID)
	}

	if len(groups[1].Find(markup.ByClass("file-upload-zone"))) != 0 {
		t.Fatalf("preview file control must not render the dropzone")
	}
	fileInput := groups[1].Find(markup.ByTag("input"))[0]
	if fileInput.Has("multiple") || fileInput.Has("id") {
		t.Fatalf("preview file input must be bare, got %s", fileInput)
	}

	submit := groups[2].Find(markup.ByTag("button"))[0]
	if kind, _ := submit.Attr("type"); kind != "submit" || submit.TextContent() != "Submit Form" {
		t.Fatalf("unexpected submit control: %s", submit)
	}
}

func TestPropertiesView(t *testing.T) {
	empty := vanilla.PropertiesView(nil)
	if empty.TextContent() != "Select a field to edit its properties" {
		t.Fatalf("unexpected no-selection text: %q", empty.TextContent())
	}

	selectField := model.Field{ID: "field_0", Type: model.FieldTypeSelect, Label: "Plan", Options: []string{"A", "B"}, Required: true}
	panel := vanilla.PropertiesView(&selectField)
	if len(panel.Find(byID("fieldPlaceholder"))) != 0 {
		t.Fatalf("select fields must not expose a placeholder input")
	}
	options := panel.Find(markup.ByTag("textarea"))
	if len(options) != 1 || options[0].TextContent() != "A\nB" {
		t.Fatalf("expected options textarea with one option per line, got %s", panel)
	}
	required := panel.Find(byID("fieldRequired"))
	if len(required) != 1 || !required[0].Has("checked") {
		t.Fatalf("required checkbox must reflect the field")
	}

	textField := model.Field{ID: "field_1", Type: model.FieldTypeText, Label: "Name", Placeholder: "hint"}
	panel = vanilla.PropertiesView(&textField)
	placeholder := panel.Find(byID("fieldPlaceholder"))
	if len(placeholder) != 1 {
		t.Fatalf("text fields expose the placeholder input")
	}
	if value, _ := placeholder[0].Attr("value"); value != "hint" {
		t.Fatalf("placeholder value mismatch: %q", value)
	}
	if len(panel.Find(markup.ByTag("textarea"))) != 0 {
		t.Fatalf("text fields have no options textarea")
	}
}

func byID(id string) func(*markup.Node) bool {
	return func(n *markup.Node) bool {
		value, ok := n.Attr("id")
		return ok && value == id
	}
}
