// Package model defines the field model the builder edits, persists and
// renders. Implementations live in internal/model; this package re-exports the
// types so callers depend on a stable surface.
//
// A Field carries an opaque id of the form field_<n>, one of ten closed
// variants, a label, a placeholder (meaningful for text-like variants only), a
// required flag and an ordered option list that is populated for select and
// radio fields only. A field collection is a plain []Field whose order is the
// display and submission order.
package model
