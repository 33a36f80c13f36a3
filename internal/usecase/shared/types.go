package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ItemSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Available bool
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	IsActive bool
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Status      string
	StartAt     time.Time
	EndAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
