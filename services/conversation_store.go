package services

import (
	"log"
	"sync"
	"time"

	"marusalon-backend/models"
)

// ConversationStore keeps per-customer message history and the last
// classified context in process memory. Entries appear on the first
// message from a phone number and are purged by the periodic sweep once
// idle past the retention window. Concurrent updates are last-writer-
// wins per entry.
type ConversationStore struct {
	mu           sync.Mutex
	states       map[string]*models.ConversationState
	historyLimit int
}

func NewConversationStore(historyLimit int) *ConversationStore {
	return &ConversationStore{
		states:       make(map[string]*models.ConversationState),
		historyLimit: historyLimit,
	}
}

// History returns a copy of the retained messages for a customer.
func (s *ConversationStore) History(phone string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[phone]
	if !ok {
		return nil
	}
	history := make([]models.Message, len(state.History))
	copy(history, state.History)
	return history
}

// Context returns the last classified context, or general for a new
// customer.
func (s *ConversationStore) Context(phone string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[phone]; ok {
		return state.Context
	}
	return models.ContextGeneral
}

// AppendTurn records one user message and the assistant reply, capping
// history at the configured limit (oldest dropped first).
func (s *ConversationStore) AppendTurn(phone, userText, reply, context string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[phone]
	if !ok {
		state = &models.ConversationState{}
		s.states[phone] = state
	}

	state.History = append(state.History,
		models.Message{Role: "user", Content: userText},
		models.Message{Role: "assistant", Content: reply},
	)
	if over := len(state.History) - s.historyLimit; over > 0 {
		state.History = state.History[over:]
	}
	state.Context = context
	state.LastActivity = time.Now()
}

// Sweep deletes entries idle longer than maxAge and returns how many it
// removed. Runs on a timer; it never blocks request handling beyond the
// map lock.
func (s *ConversationStore) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0
	for phone, state := range s.states {
		if state.LastActivity.Before(cutoff) {
			delete(s.states, phone)
			cleaned++
		}
	}
	if cleaned > 0 {
		log.Printf("🧹 Cleaned up %d old conversation states", cleaned)
	}
	return cleaned
}

// Len reports how many conversations are currently retained.
func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
