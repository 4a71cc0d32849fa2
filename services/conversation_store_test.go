package services

import (
	"fmt"
	"testing"
	"time"
)

func TestConversationHistoryCap(t *testing.T) {
	store := NewConversationStore(6)

	for i := 0; i < 10; i++ {
		store.AppendTurn("+27821234567", fmt.Sprintf("message %d", i), fmt.Sprintf("reply %d", i), "general")
	}

	history := store.History("+27821234567")
	if len(history) != 6 {
		t.Fatalf("history length = %d, want 6", len(history))
	}
	// Oldest turns were evicted; the newest survive.
	if history[len(history)-1].Content != "reply 9" {
		t.Errorf("last message = %q, want reply 9", history[len(history)-1].Content)
	}
	if history[0].Content != "message 7" {
		t.Errorf("first retained message = %q, want message 7", history[0].Content)
	}
}

func TestConversationSweep(t *testing.T) {
	store := NewConversationStore(20)

	store.AppendTurn("+27820000001", "hi", "hello", "general")
	store.AppendTurn("+27820000002", "hi", "hello", "general")

	// Age one entry past the retention window.
	store.mu.Lock()
	store.states["+27820000001"].LastActivity = time.Now().Add(-25 * time.Hour)
	store.mu.Unlock()

	if cleaned := store.Sweep(24 * time.Hour); cleaned != 1 {
		t.Fatalf("sweep removed %d entries, want 1", cleaned)
	}
	if store.Len() != 1 {
		t.Fatalf("store has %d entries, want 1", store.Len())
	}
	if got := store.History("+27820000002"); len(got) != 2 {
		t.Errorf("fresh conversation should survive the sweep")
	}
	if got := store.History("+27820000001"); got != nil {
		t.Errorf("stale conversation should be gone, got %v", got)
	}
}

func TestConversationUnknownCustomer(t *testing.T) {
	store := NewConversationStore(20)

	if got := store.History("+27829999999"); got != nil {
		t.Errorf("unknown customer history = %v, want nil", got)
	}
	if got := store.Context("+27829999999"); got != "general" {
		t.Errorf("unknown customer context = %q, want general", got)
	}
}
