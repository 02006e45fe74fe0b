package editor

import (
	"context"
	"fmt"
	"slices"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// AttachFiles records uploads for a file field. Uploads live only as long as
// the session and are never persisted.
func (s *Session) AttachFiles(ctx context.Context, id string, files ...model.UploadedFile) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFieldID, id)
	}
	if s.fields[i].Type != model.FieldTypeFile {
		return fmt.Errorf("%w: %s is %s", ErrNotFileField, id, s.fields[i].Type)
	}
	if len(files) == 0 {
		return nil
	}
	s.uploads[id] = append(s.uploads[id], files...)
	s.logger.Log(LogEvent{Level: LogDebug, Op: OpUpload, FieldID: id, Message: fmt.Sprintf("attached %d files", len(files))})
	s.changed(ctx, OpUpload, id)
	return nil
}

// RemoveFile drops every upload named name from the field. It reports whether
// anything was removed.
func (s *Session) RemoveFile(ctx context.Context, id, name string) bool {
	files := s.uploads[id]
	kept := slices.DeleteFunc(slices.Clone(files), func(f model.UploadedFile) bool { return f.Name == name })
	if len(kept) == len(files) {
		return false
	}
	if len(kept) == 0 {
		delete(s.uploads, id)
	} else {
		s.uploads[id] = kept
	}
	s.changed(ctx, OpUpload, id)
	s.notify(ctx, LevelSuccess, msgFileRemoved)
	return true
}

// Files returns the uploads attached to the field, in attach order.
func (s *Session) Files(id string) []model.UploadedFile {
	return slices.Clone(s.uploads[id])
}
