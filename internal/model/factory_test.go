package model

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFactory_TextDefaults(t *testing.T) {
	factory := NewFactory(0)

	field, err := factory.New(FieldTypeText)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}

	want := Field{
		ID:          "field_0",
		Type:        FieldTypeText,
		Label:       "Text Input",
		Placeholder: "Enter text...",
		Required:    false,
		Options:     []string{},
	}
	if diff := cmp.Diff(want, field); diff != "" {
		t.Fatalf("text field mismatch (-want +got):\n%s", diff)
	}
}

func TestFactory_OptionsOnlyForChoiceVariants(t *testing.T) {
	factory := NewFactory(0)

	for _, fieldType := range FieldTypes() {
		field, err := factory.New(fieldType)
		if err != nil {
			t.Fatalf("new %s: %v", fieldType, err)
		}
		hasOptions := len(field.Options) > 0
		if hasOptions != fieldType.HasOptions() {
			t.Fatalf("%s: options present=%v, want %v", fieldType, hasOptions, fieldType.HasOptions())
		}
		if field.Options == nil {
			t.Fatalf("%s: options must be an empty list, not nil", fieldType)
		}
	}
}

func TestFactory_SelectStarterOptions(t *testing.T) {
	field, err := NewFactory(3).New(FieldTypeSelect)
	if err != nil {
		t.Fatalf("new select: %v", err)
	}
	if field.ID != "field_3" {
		t.Fatalf("expected seeded id field_3, got %s", field.ID)
	}
	if diff := cmp.Diff([]string{"Option 1", "Option 2", "Option 3"}, field.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if field.Placeholder != "" {
		t.Fatalf("select has no placeholder default, got %q", field.Placeholder)
	}
}

func TestFactory_DefaultTables(t *testing.T) {
	cases := map[FieldType][2]string{
		FieldTypeEmail:    {"Email Address", "Enter email address..."},
		FieldTypeNumber:   {"Number", "Enter number..."},
		FieldTypeTel:      {"Phone Number", "Enter phone number..."},
		FieldTypeTextarea: {"Message", "Enter your message..."},
		FieldTypeCheckbox: {"Checkbox Option", ""},
		FieldTypeRadio:    {"Radio Option", ""},
		FieldTypeDate:     {"Date", "Select date..."},
		FieldTypeFile:     {"File Upload", "Choose file..."},
	}
	factory := NewFactory(0)
	for fieldType, want := range cases {
		field, err := factory.New(fieldType)
		if err != nil {
			t.Fatalf("new %s: %v", fieldType, err)
		}
		if field.Label != want[0] || field.Placeholder != want[1] {
			t.Fatalf("%s defaults: got (%q, %q), want (%q, %q)", fieldType, field.Label, field.Placeholder, want[0], want[1])
		}
	}
}

func TestFactory_RejectsUnknownType(t *testing.T) {
	factory := NewFactory(5)

	_, err := factory.New(FieldType("color"))
	if !errors.Is(err, ErrInvalidFieldType) {
		t.Fatalf("expected ErrInvalidFieldType, got %v", err)
	}
	if factory.Next() != 5 {
		t.Fatalf("rejected type must not consume an id, next=%d", factory.Next())
	}
}

func TestFactory_IDsAreMonotonic(t *testing.T) {
	factory := NewFactory(0)
	seen := map[string]struct{}{}
	for i := 0; i < 25; i++ {
		field, err := factory.New(FieldTypeText)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if _, dup := seen[field.ID]; dup {
			t.Fatalf("duplicate id %s", field.ID)
		}
		seen[field.ID] = struct{}{}
	}
	if factory.Next() != 25 {
		t.Fatalf("expected next=25, got %d", factory.Next())
	}
}

func TestParseFieldID(t *testing.T) {
	n, err := ParseFieldID("field_42")
	if err != nil || n != 42 {
		t.Fatalf("parse field_42: n=%d err=%v", n, err)
	}

	n, err = ParseFieldID("field_0")
	if err != nil || n != 0 {
		t.Fatalf("parse field_0: n=%d err=%v", n, err)
	}

	bad := []string{
		"", "field_", "field_x", "item_3", "field_-1", "3",
		"field_+3", "field_03", "field_00", "field_-0", "field_ 3", "field_3 ",
		FieldID(math.MaxInt), "field_99999999999999999999",
	}
	for _, id := range bad {
		if _, err := ParseFieldID(id); !errors.Is(err, ErrInvalidFieldID) {
			t.Fatalf("%q: expected ErrInvalidFieldID, got %v", id, err)
		}
	}
}

func TestParseFieldID_InvertsFieldID(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 101, math.MaxInt - 1} {
		got, err := ParseFieldID(FieldID(n))
		if err != nil {
			t.Fatalf("parse %s: %v", FieldID(n), err)
		}
		if got != n {
			t.Fatalf("expected %d, got %d", n, got)
		}
	}
}
