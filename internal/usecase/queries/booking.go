package queries

import (
	"context"
	"time"

	"renthub/internal/domain/booking"
	"renthub/internal/infra"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"-"`
}

type BookerRef struct {
	ID uuid.UUID `json:"id"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Item      ItemRef   `json:"item"`
	Booker    BookerRef `json:"booker"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListBySubject runs the single templated list query: role picks the
	// matched foreign key, filter compiles to the temporal/status predicate
	// evaluated against now. Results are ordered by start descending.
	ListBySubject(ctx context.Context, role Role, subjectID uuid.UUID, filter Filter, now time.Time, page Page) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, userID, bookingID uuid.UUID) (*BookingView, error)
	List(ctx context.Context, subjectID uuid.UUID, role Role, filter Filter, now time.Time, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserReadStore
}

func NewBookingQueries(store BookingReadStore, users UserReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, userID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	b := booking.ReconstructBooking(
		view.ID, view.Item.ID, view.Item.OwnerID, view.Booker.ID,
		booking.ReconstructPeriod(view.Start, view.End),
		booking.Status(view.Status),
		view.CreatedAt, view.UpdatedAt,
	)
	if !b.IsParticipant(userID) {
		return nil, ErrBookingAccess
	}

	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, subjectID uuid.UUID, role Role, filter Filter, now time.Time, page Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, subjectID); err != nil {
		return nil, err
	}

	return q.store.ListBySubject(ctx, role, subjectID, filter, now, page)
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
