package repository

import (
	"context"

	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/shared"

	"github.com/google/uuid"
)

const updateLastLoginQuery = `
UPDATE users
SET last_login_at = now(), updated_at = now()
WHERE id = $1
`

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, updateLastLoginQuery, pgconv.UUIDToPgtype(userID)); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
