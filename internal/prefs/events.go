package prefs

import (
	"fmt"

	"github.com/google/uuid"
)

// DirectoryChangedEvent is delivered to image and output directory listeners.
type DirectoryChangedEvent struct {
	Path string
}

// OutputFilenameEvent is delivered to output file name listeners.
type OutputFilenameEvent struct {
	OutputFilename string
}

// Subscription identifies a registered listener. The zero value matches no
// listener.
type Subscription struct {
	id uuid.UUID
}

// ID returns the subscription's identifier.
func (s Subscription) ID() string {
	return s.id.String()
}

type listener[E any] struct {
	id uuid.UUID
	fn func(E)
}

// listeners is an ordered registry; notification follows registration order.
type listeners[E any] struct {
	entries []listener[E]
}

func (l *listeners[E]) add(fn func(E)) Subscription {
	id := uuid.New()
	l.entries = append(l.entries, listener[E]{id: id, fn: fn})
	return Subscription{id: id}
}

func (l *listeners[E]) remove(sub Subscription) error {
	for i, e := range l.entries {
		if e.id == sub.id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrListenerNotFound, sub.id)
}

// notify calls every listener synchronously. Listeners added or removed
// during notification take effect on the next event.
func (l *listeners[E]) notify(event E) {
	snapshot := l.entries
	for _, e := range snapshot {
		e.fn(event)
	}
}

func (l *listeners[E]) len() int {
	return len(l.entries)
}
