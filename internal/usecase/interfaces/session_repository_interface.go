package interfaces

import (
	"context"

	"decormitra/internal/domain/entities"
)

// ISessionRepository is the key-value store for chat sessions. Get returns a
// zero-value Session (empty ID) when the key does not exist.
type ISessionRepository interface {
	Get(ctx context.Context, id string) (entities.Session, error)
	Put(ctx context.Context, session entities.Session) (entities.Session, error)
}
