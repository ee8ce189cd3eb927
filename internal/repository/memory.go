package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type memorySession struct {
	sessions map[string][]byte
}

// NewMemorySessionRepository - mirror used when redis is disabled. Values are
// stored as JSON so readers never share state with the running session.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		sessions: make(map[string][]byte),
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.SessionSnapshot) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	that.sessions[session.ID] = sessionJSON

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.SessionSnapshot, error) {
	sessionJSON, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	var session entity.SessionSnapshot
	if err := json.Unmarshal(sessionJSON, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	delete(that.sessions, id)

	return nil
}
