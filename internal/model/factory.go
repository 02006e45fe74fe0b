package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const fieldIDPrefix = "field_"

// FieldID formats the identifier minted for counter value n.
func FieldID(n int) string {
	return fieldIDPrefix + strconv.Itoa(n)
}

// ParseFieldID extracts the numeric suffix from a field_<n> identifier. Only
// the canonical form produced by FieldID is accepted: decimal digits with no
// sign and no leading zeros. The largest int is rejected since the counter
// could not move past it.
func ParseFieldID(id string) (int, error) {
	suffix, ok := strings.CutPrefix(id, fieldIDPrefix)
	if !ok {
		return 0, &InvalidFieldIDError{ID: id}
	}
	if !canonicalSuffix(suffix) {
		return 0, &InvalidFieldIDError{ID: id, Err: fmt.Errorf("non-canonical suffix %q", suffix)}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, &InvalidFieldIDError{ID: id, Err: err}
	}
	if n == math.MaxInt {
		return 0, &InvalidFieldIDError{ID: id, Err: fmt.Errorf("suffix %d leaves no room for a next id", n)}
	}
	return n, nil
}

func canonicalSuffix(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Factory mints new fields with type-appropriate defaults. The counter is
// scoped to one editing session and seeded from persisted state, so ids are
// never reused within that session.
type Factory struct {
	next int
}

// NewFactory returns a factory whose next id will be field_<next>.
func NewFactory(next int) *Factory {
	if next < 0 {
		next = 0
	}
	return &Factory{next: next}
}

// New returns a field of type t. Unknown types are rejected and do not
// consume an identifier. The field is not inserted anywhere.
func (f *Factory) New(t FieldType) (Field, error) {
	if !t.Valid() {
		return Field{}, &InvalidFieldTypeError{Type: string(t)}
	}
	field := Field{
		ID:          FieldID(f.next),
		Type:        t,
		Label:       DefaultLabel(t),
		Placeholder: DefaultPlaceholder(t),
		Required:    false,
		Options:     DefaultOptions(t),
	}
	f.next++
	return field, nil
}

// Next reports the counter value the next field will receive.
func (f *Factory) Next() int {
	return f.next
}

// Seed resets the counter, typically after loading persisted state.
func (f *Factory) Seed(next int) {
	if next < 0 {
		next = 0
	}
	f.next = next
}
