package repository

import (
	"context"

	"renthub/internal/domain/booking"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingQuery = `
INSERT INTO bookings (id, item_id, booker_id, status, start_at, end_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

const updateBookingStatusQuery = `
UPDATE bookings
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2
`

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	row := dbtx.QueryRow(ctx, createBookingQuery,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.BookerID()),
		pgconv.StringToPgtype(string(b.Status())),
		pgconv.TimeToPgtype(b.Period().Start()),
		pgconv.TimeToPgtype(b.Period().End()),
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// UpdateStatus only touches rows still holding the expected prior status, so
// two concurrent decisions cannot both win. The loser sees zero affected rows.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusQuery,
		pgconv.UUIDToPgtype(id),
		pgconv.StringToPgtype(string(from)),
		pgconv.StringToPgtype(string(to)),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking status already changed", nil, infra.KindStaleStatus)
	}

	return nil
}
