package callbacks

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/task-bridge/bridge"
	"github.com/wippyai/task-bridge/errors"
)

// Table maps handles to Go completion functions so that code which can only
// pass integers (a wasm guest, a C library with an integer userdata field)
// can name the function to notify.
type Table struct {
	slots     *slots
	observers []Observer
	obsMu     sync.RWMutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{slots: newSlots()}
}

// Register stores fn and returns its handle.
func (t *Table) Register(fn Func) (Handle, error) {
	if fn == nil {
		return 0, errors.InvalidInput(errors.PhaseRegister, "callback cannot be nil")
	}

	h, err := t.slots.create(fn)
	if err != nil {
		return 0, err
	}

	Logger().Debug("callback registered", zap.Uint32("handle", uint32(h)))
	t.notify(Event{Type: EventRegistered, Handle: h})
	return h, nil
}

// Insert is Register for callers that treat 0 as failure.
func (t *Table) Insert(fn Func) Handle {
	h, err := t.Register(fn)
	if err != nil {
		return 0
	}
	return h
}

// Once registers fn behind a handle that releases itself on first use.
// Later invocations through the same handle do nothing.
func (t *Table) Once(fn Func) (Handle, error) {
	if fn == nil {
		return 0, errors.InvalidInput(errors.PhaseRegister, "callback cannot be nil")
	}

	var h Handle
	h, err := t.Register(func(token bridge.Token, status bridge.Status) {
		if _, ok := t.Remove(h); !ok {
			return
		}
		fn(token, status)
	})
	return h, err
}

// Get returns the function registered under h.
func (t *Table) Get(h Handle) (Func, bool) {
	return t.slots.get(h)
}

// Remove releases h and returns its function if it was live.
func (t *Table) Remove(h Handle) (Func, bool) {
	fn, ok := t.slots.drop(h)
	if !ok {
		return nil, false
	}

	Logger().Debug("callback released", zap.Uint32("handle", uint32(h)))
	t.notify(Event{Type: EventReleased, Handle: h})
	return fn, true
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return t.slots.len()
}

// Clear releases every live handle.
func (t *Table) Clear() {
	// Collect first; Remove takes the write lock.
	var handles []Handle
	t.slots.each(func(h Handle) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close releases every live handle and rejects further registrations.
func (t *Table) Close() error {
	t.Clear()
	t.slots.close()
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnCallbackEvent(e)
	}
}
