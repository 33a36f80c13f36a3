package queries

import (
	"context"
	"time"

	"renthub/internal/infra"

	"github.com/google/uuid"
)

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserAuthView carries the credential hash and is never serialized.
type UserAuthView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmailForAuth(ctx context.Context, email string) (*UserAuthView, error)
}

type UserQueries interface {
	GetAuthorizedUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetAuthorizedUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
