package callbacks

import (
	"sync"

	"github.com/wippyai/task-bridge/errors"
)

// slots is the handle-indexed storage behind Table. Released handles are
// reused in LIFO order.
type slots struct {
	entries  []slot
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type slot struct {
	fn    Func
	valid bool
}

func newSlots() *slots {
	return &slots{
		entries:  make([]slot, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

func (s *slots) create(fn Func) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errors.Closed(errors.PhaseRegister, "callback table")
	}

	e := slot{fn: fn, valid: true}

	if len(s.freeList) > 0 {
		h := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[h-1] = e
		return h, nil
	}

	s.entries = append(s.entries, e)
	return Handle(len(s.entries)), nil
}

func (s *slots) get(h Handle) (Func, bool) {
	if h == 0 {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := h - 1
	if int(idx) >= len(s.entries) {
		return nil, false
	}

	e := s.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.fn, true
}

func (s *slots) drop(h Handle) (Func, bool) {
	if h == 0 {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := h - 1
	if int(idx) >= len(s.entries) {
		return nil, false
	}

	e := &s.entries[idx]
	if !e.valid {
		return nil, false
	}

	fn := e.fn
	e.valid = false
	e.fn = nil
	s.freeList = append(s.freeList, h)

	return fn, true
}

func (s *slots) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries) - len(s.freeList)
}

func (s *slots) each(fn func(Handle) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.entries {
		if e.valid {
			if !fn(Handle(i + 1)) {
				break
			}
		}
	}
}

func (s *slots) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.entries = nil
	s.freeList = nil
}
