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

const userByIDQuery = `
SELECT id, email, name, is_active, last_login_at, created_at
FROM users
WHERE id = $1
`

const userByEmailForAuthQuery = `
SELECT id, email, password_hash, is_active
FROM users
WHERE email = $1
`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		pgID                   pgtype.UUID
		email, name            string
		isActive               bool
		lastLoginAt, createdAt pgtype.Timestamptz
	)

	row := r.db.QueryRow(ctx, userByIDQuery, pgconv.UUIDToPgtype(id))
	if err := row.Scan(&pgID, &email, &name, &isActive, &lastLoginAt, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:          pgconv.UUIDFromPgtype(pgID),
		Email:       email,
		Name:        name,
		IsActive:    isActive,
		LastLoginAt: pgconv.TimePtrFromPgtype(lastLoginAt),
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
	}, nil
}

func (r *UserReadStore) FindByEmailForAuth(ctx context.Context, email string) (*queries.UserAuthView, error) {
	var (
		pgID       pgtype.UUID
		mail, hash string
		isActive   bool
	)

	row := r.db.QueryRow(ctx, userByEmailForAuthQuery, email)
	if err := row.Scan(&pgID, &mail, &hash, &isActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &queries.UserAuthView{
		ID:           pgconv.UUIDFromPgtype(pgID),
		Email:        mail,
		PasswordHash: hash,
		IsActive:     isActive,
	}, nil
}
