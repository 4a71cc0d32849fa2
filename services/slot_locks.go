package services

import (
	"fmt"
	"sync"
)

// SlotLockManager serializes the decide-then-commit step of booking a
// slot. Exactly one holder per (date, time, service) key; a second
// Acquire while held fails immediately with ErrSlotBusy rather than
// queueing. Callers surface that as a "try again shortly" condition.
type SlotLockManager struct {
	mu   sync.Mutex
	held map[string]*SlotLock
}

// SlotLock is the token returned by Acquire. Release is idempotent.
type SlotLock struct {
	key string
	mgr *SlotLockManager
}

func NewSlotLockManager() *SlotLockManager {
	return &SlotLockManager{held: make(map[string]*SlotLock)}
}

func slotLockKey(date, clock, serviceID string) string {
	return fmt.Sprintf("%s_%s_%s", date, clock, serviceID)
}

// Acquire takes the lock for a slot, or fails with ErrSlotBusy if
// another request is already deciding it. Never blocks.
func (m *SlotLockManager) Acquire(date, clock, serviceID string) (*SlotLock, error) {
	key := slotLockKey(date, clock, serviceID)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.held[key]; taken {
		return nil, ErrSlotBusy
	}
	lock := &SlotLock{key: key, mgr: m}
	m.held[key] = lock
	return lock, nil
}

// Release frees the slot. Safe to call more than once and safe on a nil
// lock, so callers can defer it unconditionally.
func (l *SlotLock) Release() {
	if l == nil {
		return
	}
	l.mgr.mu.Lock()
	defer l.mgr.mu.Unlock()

	if l.mgr.held[l.key] == l {
		delete(l.mgr.held, l.key)
	}
}
