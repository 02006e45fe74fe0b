// Package preview serves read-only views of a stored form over net/http: the
// editor canvas, the preview form, the downloadable export document and the
// OpenAPI submission schema.
//
// Handlers respond to GET and HEAD only. Every request loads the configured
// slot from the persist.Store, so edits made elsewhere show up on reload.
package preview
