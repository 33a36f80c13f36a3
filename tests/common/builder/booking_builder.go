//go:build unit || e2e

package builder

import (
	"time"

	dombooking "renthub/internal/domain/booking"
	reqdto "renthub/internal/handler/dto/request"
	"renthub/internal/usecase/queries"
	"renthub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	ItemName  string
	OwnerID   uuid.UUID
	BookerID  uuid.UUID
	Available bool
	Status    string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		ID:        uuid.New(),
		ItemID:    uuid.New(),
		ItemName:  "Cordless Drill",
		OwnerID:   uuid.New(),
		BookerID:  uuid.New(),
		Available: true,
		Status:    string(dombooking.StatusWaiting),
		Start:     now.Add(24 * time.Hour),
		End:       now.Add(48 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	item := dombooking.ItemSpec{ID: b.ItemID, OwnerID: b.OwnerID, Available: b.Available}
	return dombooking.NewBooking(item, b.BookerID, b.Start, b.End)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item: queries.ItemRef{
			ID:      b.ItemID,
			Name:    b.ItemName,
			OwnerID: b.OwnerID,
		},
		Booker:    queries.BookerRef{ID: b.BookerID},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemOwnerID: b.OwnerID,
		BookerID:    b.BookerID,
		Status:      b.Status,
		StartAt:     b.Start,
		EndAt:       b.End,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildItemSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:        b.ItemID,
		OwnerID:   b.OwnerID,
		Name:      b.ItemName,
		Available: b.Available,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithItemID(id uuid.UUID) *BookingBuilder {
	b.ItemID = id
	return b
}

func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithAvailable(available bool) *BookingBuilder {
	b.Available = available
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) AsOwnItemBooking() *BookingBuilder {
	b.BookerID = b.OwnerID
	return b
}
