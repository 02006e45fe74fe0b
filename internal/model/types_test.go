package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFieldType(t *testing.T) {
	got, err := ParseFieldType("  Select ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != FieldTypeSelect {
		t.Fatalf("expected select, got %s", got)
	}

	_, err = ParseFieldType("slider")
	var typeErr *InvalidFieldTypeError
	if !errors.As(err, &typeErr) || typeErr.Type != "slider" {
		t.Fatalf("expected InvalidFieldTypeError for slider, got %v", err)
	}
}

func TestParseOptions_DropsBlankLines(t *testing.T) {
	got := ParseOptions("A\nB\n\nC")
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	got = ParseOptions("  \r\nYes\r\n No \r\n")
	if diff := cmp.Diff([]string{"Yes", " No "}, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	if got := ParseOptions(""); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil options, got %#v", got)
	}
}

func TestPatchApply_RespectsVariantRules(t *testing.T) {
	patch := Patch{
		Label:       "Updated",
		Placeholder: "new hint",
		Required:    true,
		Options:     "X\nY",
	}

	text := Field{ID: "field_0", Type: FieldTypeText, Placeholder: "old", Options: []string{}}
	patch.Apply(&text)
	want := Field{ID: "field_0", Type: FieldTypeText, Label: "Updated", Placeholder: "new hint", Required: true, Options: []string{}}
	if diff := cmp.Diff(want, text); diff != "" {
		t.Fatalf("text patch mismatch (-want +got):\n%s", diff)
	}

	radio := Field{ID: "field_1", Type: FieldTypeRadio, Options: []string{"Option 1"}}
	patch.Apply(&radio)
	want = Field{ID: "field_1", Type: FieldTypeRadio, Label: "Updated", Required: true, Options: []string{"X", "Y"}}
	if diff := cmp.Diff(want, radio); diff != "" {
		t.Fatalf("radio patch mismatch (-want +got):\n%s", diff)
	}

	checkbox := Field{ID: "field_2", Type: FieldTypeCheckbox, Options: []string{}}
	patch.Apply(&checkbox)
	if checkbox.Placeholder != "" || len(checkbox.Options) != 0 {
		t.Fatalf("checkbox must ignore placeholder and options: %#v", checkbox)
	}
}

func TestFieldClone_IsolatesOptions(t *testing.T) {
	original := Field{ID: "field_0", Type: FieldTypeSelect, Options: []string{"a", "b"}}
	clone := original.Clone()
	clone.Options[0] = "changed"
	if original.Options[0] != "a" {
		t.Fatalf("clone shares option storage with original")
	}
}

func TestVariantCapabilities(t *testing.T) {
	for _, fieldType := range FieldTypes() {
		wantPlaceholder := fieldType != FieldTypeCheckbox && fieldType != FieldTypeRadio &&
			fieldType != FieldTypeSelect && fieldType != FieldTypeFile
		if fieldType.SupportsPlaceholder() != wantPlaceholder {
			t.Fatalf("%s: SupportsPlaceholder=%v", fieldType, fieldType.SupportsPlaceholder())
		}
	}
	if FieldTypeDate.InputKind() != "date" || FieldTypeTextarea.InputKind() != "" {
		t.Fatalf("unexpected input kinds")
	}
}

func TestUploadedFile_KindAndSize(t *testing.T) {
	cases := []struct {
		file UploadedFile
		want FileKind
	}{
		{UploadedFile{Name: "a.png", ContentType: "image/png"}, FileKindImage},
		{UploadedFile{Name: "clip.mp4", ContentType: "video/mp4"}, FileKindVideo},
		{UploadedFile{Name: "song.mp3", ContentType: "audio/mpeg"}, FileKindAudio},
		{UploadedFile{Name: "Report.PDF"}, FileKindPDF},
		{UploadedFile{Name: "cv.docx"}, FileKindDocument},
		{UploadedFile{Name: "sheet.xls"}, FileKindSpreadsheet},
		{UploadedFile{Name: "bundle.7z"}, FileKindArchive},
		{UploadedFile{Name: "notes"}, FileKindOther},
	}
	for _, tc := range cases {
		if got := tc.file.Kind(); got != tc.want {
			t.Fatalf("%s: kind %s, want %s", tc.file.Name, got, tc.want)
		}
	}

	sizes := map[int64]string{
		0:                      "0 Bytes",
		512:                    "512 Bytes",
		1536:                   "1.5 KB",
		1048576:                "1 MB",
		5 * 1024 * 1024 * 1024: "5 GB",
	}
	for bytes, want := range sizes {
		if got := FormatSize(bytes); got != want {
			t.Fatalf("FormatSize(%d) = %q, want %q", bytes, got, want)
		}
	}
}
