package dispatch

import (
	"fmt"

	"fulano-assistant/internal/intent"
)

// Table maps each intent label to exactly one local handler.
type Table struct {
	handlers map[intent.Label]Handler
	order    []intent.Label
}

func NewTable() *Table {
	return &Table{handlers: make(map[intent.Label]Handler)}
}

// Register binds label to h. A label can be bound only once.
func (t *Table) Register(label intent.Label, h Handler) error {
	if _, exists := t.handlers[label]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLabel, label)
	}
	t.handlers[label] = h
	t.order = append(t.order, label)
	return nil
}

// Lookup returns the handler bound to label.
func (t *Table) Lookup(label intent.Label) (Handler, bool) {
	h, ok := t.handlers[label]
	return h, ok
}

// Labels returns the bound labels in registration order.
func (t *Table) Labels() []intent.Label {
	return append([]intent.Label(nil), t.order...)
}

// Select returns the subset of labels allowed to answer locally.
// An empty list selects every bound label; an unbound label is an error.
func (t *Table) Select(labels []string) (map[intent.Label]bool, error) {
	selected := make(map[intent.Label]bool)
	if len(labels) == 0 {
		for _, l := range t.order {
			selected[l] = true
		}
		return selected, nil
	}
	for _, name := range labels {
		label := intent.Label(name)
		if _, ok := t.handlers[label]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLabel, name)
		}
		selected[label] = true
	}
	return selected, nil
}
