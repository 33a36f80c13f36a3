package shared

import (
	"context"

	"renthub/internal/domain/booking"
	"renthub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus performs the conditional status-only write
	// (UPDATE ... WHERE status = from). A zero-row match reports
	// infra.KindStaleStatus, never silent success.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
