// Package editor implements the builder's editing session.
//
// A Session owns the ordered field collection, the current selection, the id
// counter and the ephemeral uploads attached to file fields. Every mutation
// follows the same sequence: change the collection, write it to the
// configured persist.Store slot, then notify change listeners so views can
// re-render. Destructive operations (Delete, ClearAll) ask a Confirmer first;
// user-facing outcomes go to a Notifier.
//
// Sessions are single-mutator objects and are not safe for concurrent use.
package editor
