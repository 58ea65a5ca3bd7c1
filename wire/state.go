package wire

import (
	"sync"
)

type connStatus uint8

const (
	connStatusIdle connStatus = iota
	connStatusActive
	connStatusClosing
	connStatusClosed
)

type connState struct {
	mu      sync.RWMutex
	current connStatus
}

func newConnState() *connState {
	return &connState{}
}

func (e *connState) Swap(state connStatus) (old connStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old = e.current
	e.current = state
	return
}

func (e *connState) Is(state connStatus) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current == state
}
