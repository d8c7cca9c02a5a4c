package service

import (
	"sync"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/admin/domain"
)

// Sessions tracks, per admin, which input field the next message fills.
// Sessions live in memory only; a restart returns everyone to idle.
type Sessions struct {
	mu     sync.Mutex
	states map[int64]domain.State
}

func NewSessions() *Sessions {
	return &Sessions{states: make(map[int64]domain.State)}
}

// Begin sets the pending field for adminID, replacing any earlier prompt.
func (s *Sessions) Begin(adminID int64, state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == domain.StateIdle {
		delete(s.states, adminID)
		return
	}
	s.states[adminID] = state
}

// Pending returns the field adminID is expected to send, StateIdle if none.
func (s *Sessions) Pending(adminID int64) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[adminID]; ok {
		return state
	}
	return domain.StateIdle
}

func (s *Sessions) Clear(adminID int64) {
	s.Begin(adminID, domain.StateIdle)
}
