package services

import (
	"errors"
	"sync"
	"testing"
)

func TestSlotLockExclusion(t *testing.T) {
	mgr := NewSlotLockManager()

	lock, err := mgr.Acquire("2024-01-15", "10:00", "haircut")
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	if _, err := mgr.Acquire("2024-01-15", "10:00", "haircut"); !errors.Is(err, ErrSlotBusy) {
		t.Fatalf("second acquire: got %v, want ErrSlotBusy", err)
	}

	// A different key is unaffected.
	other, err := mgr.Acquire("2024-01-15", "10:30", "haircut")
	if err != nil {
		t.Fatalf("unrelated key acquire failed: %v", err)
	}
	other.Release()

	lock.Release()
	if _, err := mgr.Acquire("2024-01-15", "10:00", "haircut"); err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
}

func TestSlotLockReleaseIdempotent(t *testing.T) {
	mgr := NewSlotLockManager()

	first, _ := mgr.Acquire("2024-01-15", "10:00", "haircut")
	first.Release()

	second, err := mgr.Acquire("2024-01-15", "10:00", "haircut")
	if err != nil {
		t.Fatalf("reacquire failed: %v", err)
	}

	// A stale double release must not free the new holder's lock.
	first.Release()
	if _, err := mgr.Acquire("2024-01-15", "10:00", "haircut"); !errors.Is(err, ErrSlotBusy) {
		t.Fatalf("stale release stole the lock: got %v, want ErrSlotBusy", err)
	}
	second.Release()

	// Releasing a nil lock is a no-op so callers can defer blindly.
	var nilLock *SlotLock
	nilLock.Release()
}

func TestSlotLockConcurrentSingleHolder(t *testing.T) {
	mgr := NewSlotLockManager()

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	var winner *SlotLock
	acquired := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock, err := mgr.Acquire("2024-01-15", "10:00", "haircut")
			if err != nil {
				return
			}
			mu.Lock()
			acquired++
			winner = lock
			mu.Unlock()
		}()
	}
	wg.Wait()

	if acquired != 1 {
		t.Fatalf("expected exactly 1 holder, got %d", acquired)
	}
	winner.Release()
}
