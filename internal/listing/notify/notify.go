package notify

import (
	"context"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
)

// Listener reacts to one completed mutation, typically by re-rendering
// a view.
type Listener func(ctx context.Context, c domain.Change)

// Multi fans a change out to an explicit list of listeners in
// registration order. It replaces the original's re-render-everything
// callback tangle: each view registers exactly the redraw it owns.
type Multi struct {
	listeners []Listener
}

func NewMulti(listeners ...Listener) *Multi {
	return &Multi{listeners: listeners}
}

func (m *Multi) Register(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Multi) Notify(ctx context.Context, c domain.Change) error {
	for _, l := range m.listeners {
		l(ctx, c)
	}
	return nil
}
