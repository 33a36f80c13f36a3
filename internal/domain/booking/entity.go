package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOwnItem        = errors.New("owner cannot book own item")
	ErrAlreadyDecided = errors.New("booking status already set")
	ErrInvalidStatus  = errors.New("invalid booking status")
)

// ItemSpec is the minimal slice of the rented item the aggregate needs:
// identity, the owner for authorization, and the availability flag read at
// creation time.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id          uuid.UUID
	itemID      uuid.UUID
	itemOwnerID uuid.UUID
	bookerID    uuid.UUID
	period      Period
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a booking request in the waiting state. The self-booking
// check runs before the period checks so an owner probing their own item gets
// the authorization failure, not a validation one.
func NewBooking(item ItemSpec, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if bookerID == item.OwnerID {
		return nil, ErrOwnItem
	}

	period, err := NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		itemID:      item.ID,
		itemOwnerID: item.OwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      StatusWaiting,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, itemID, itemOwnerID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		itemID:      itemID,
		itemOwnerID: itemOwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ItemID() uuid.UUID      { return b.itemID }
func (b *Booking) ItemOwnerID() uuid.UUID { return b.itemOwnerID }
func (b *Booking) BookerID() uuid.UUID    { return b.bookerID }
func (b *Booking) Period() Period         { return b.period }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }

func (b *Booking) IsWaiting() bool {
	return b.status == StatusWaiting
}

// IsParticipant reports whether userID is the booker or the item's owner,
// the only identities allowed to read the booking.
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return userID == b.bookerID || userID == b.itemOwnerID
}

// Approve transitions waiting -> approved. The transition happens exactly
// once; a decided booking rejects any further attempt.
func (b *Booking) Approve() error {
	return b.decide(StatusApproved)
}

// Reject transitions waiting -> rejected.
func (b *Booking) Reject() error {
	return b.decide(StatusRejected)
}

func (b *Booking) decide(to Status) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	b.status = to
	return nil
}
