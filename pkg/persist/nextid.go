package persist

import "github.com/goliatone/go-formbuilder/pkg/model"

// NextID returns one past the largest numeric id suffix in fields, or 0 for an
// empty collection. Ids outside the canonical field_<n> scheme are an error
// because the counter could otherwise collide with them, and so is a suffix
// the counter cannot advance past.
func NextID(fields []model.Field) (int, error) {
	next := 0
	for _, field := range fields {
		n, err := model.ParseFieldID(field.ID)
		if err != nil {
			return 0, err
		}
		if n+1 > next {
			next = n + 1
		}
	}
	return next, nil
}
