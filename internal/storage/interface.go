package storage

import (
	"context"

	"github.com/mcoot/battleship-go/internal/model"
)

// Storage is the registry of live game sessions
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]model.SessionID, error)
}
