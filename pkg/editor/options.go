package editor

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/persist"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

// Option customises a Session.
type Option func(*Session)

// WithStore sets the slot storage. Sessions default to an in-memory store.
func WithStore(store persist.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSlot overrides the storage key (persist.DefaultSlot).
func WithSlot(slot string) Option {
	return func(s *Session) {
		if slot = strings.TrimSpace(slot); slot != "" {
			s.slot = slot
		}
	}
}

// WithCodec selects the persisted format.
func WithCodec(codec persist.Codec) Option {
	return func(s *Session) {
		s.codec = codec
	}
}

// WithConfirmer installs the gate for destructive operations. A nil confirmer
// restores AutoConfirm.
func WithConfirmer(confirmer Confirmer) Option {
	return func(s *Session) {
		if confirmer == nil {
			s.confirmer = AutoConfirm
			return
		}
		s.confirmer = confirmer
	}
}

// WithNotifier installs the user-facing message sink.
func WithNotifier(notifier Notifier) Option {
	return func(s *Session) {
		if notifier == nil {
			s.notifier = noopNotifier{}
			return
		}
		s.notifier = notifier
	}
}

// WithLogger installs the session logger.
func WithLogger(logger Logger) Option {
	return func(s *Session) {
		if logger == nil {
			s.logger = noopLogger{}
			return
		}
		s.logger = logger
	}
}

// WithChangeListener registers fn to run after every persisted mutation.
// Listeners run in registration order.
func WithChangeListener(fn ChangeFunc) Option {
	return func(s *Session) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

// WithDocumentRenderer sets the renderer used by Export.
func WithDocumentRenderer(renderer *vanilla.Renderer) Option {
	return func(s *Session) {
		if renderer != nil {
			s.documents = renderer
		}
	}
}
