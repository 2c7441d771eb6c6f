package memory

import (
	"context"
	"sync"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
)

// Store keeps report states in process memory. Used when no durable backend is configured.
type Store struct {
	mu     sync.RWMutex
	states map[string]domain.ReportState
}

func NewStore() *Store {
	return &Store{states: make(map[string]domain.ReportState)}
}

func (s *Store) Load(_ context.Context, namespace string) (*domain.ReportState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[namespace]
	if !ok {
		return nil, nil
	}
	clone := st.Clone()
	return &clone, nil
}

func (s *Store) Save(_ context.Context, namespace string, st domain.ReportState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[namespace] = st.Clone()
	return nil
}
