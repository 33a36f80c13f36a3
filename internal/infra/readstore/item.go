package readstore

import (
	"context"

	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemByIDQuery = `
SELECT id, owner_id, name, description, available, created_at, updated_at
FROM items
WHERE id = $1
`

const availableItemsQuery = `
SELECT id, owner_id, name, description, available, created_at, updated_at
FROM items
WHERE available
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := r.db.QueryRow(ctx, itemByIDQuery, pgconv.UUIDToPgtype(id))

	view, err := scanItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return view, nil
}

func (r *ItemReadStore) ListAvailable(ctx context.Context, page queries.Page) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, availableItemsQuery, page.Limit, page.Offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available items", err)
	}
	defer rows.Close()

	result := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}

	return result, nil
}

func scanItemView(row rowScanner) (*queries.ItemView, error) {
	var (
		id, ownerID          pgtype.UUID
		name, description    string
		available            bool
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &ownerID, &name, &description, &available, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &queries.ItemView{
		ID:          pgconv.UUIDFromPgtype(id),
		OwnerID:     pgconv.UUIDFromPgtype(ownerID),
		Name:        name,
		Description: description,
		Available:   available,
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:   pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
