package queries

import (
	"context"
	"time"

	"renthub/internal/infra"

	"github.com/google/uuid"
)

type ItemView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListAvailable(ctx context.Context, page Page) ([]*ItemView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*ItemView, error)
	ListAvailable(ctx context.Context, page Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
}

func NewItemQueries(store ItemReadStore) ItemQueries {
	return &itemQueriesImpl{store: store}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListAvailable(ctx context.Context, page Page) ([]*ItemView, error) {
	return q.store.ListAvailable(ctx, page)
}
