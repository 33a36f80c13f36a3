package commands

import (
	"context"
	"errors"
	"time"

	"renthub/internal/domain/booking"
	"renthub/internal/infra"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/queries"
	"renthub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound            = errors.New("item not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrItemUnavailable         = errors.New("item access is closed")
	ErrOwnItemBooking          = errors.New("cannot book own item")
	ErrInvalidPeriod           = errors.New("invalid booking period")
	ErrSelfDecision            = errors.New("booker cannot decide own booking")
	ErrAlreadyDecided          = errors.New("booking already decided")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*queries.BookingView, error)
	// Decide resolves a waiting booking. approve=true moves it to approved,
	// false to rejected. Only the item's owner may decide, exactly once.
	Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	store queries.BookingReadStore
}

func NewBookingCommands(uow shared.UnitOfWork, store queries.BookingReadStore) BookingCommands {
	return &bookingCommandsImpl{uow: uow, store: store}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*queries.BookingView, error) {
	item, err := c.uow.CommandReads().ItemByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to load item")
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	if _, err := c.uow.CommandReads().UserByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to load booker")
	}

	spec := booking.ItemSpec{ID: item.ID, OwnerID: item.OwnerID, Available: item.Available}
	b, err := booking.NewBooking(spec, bookerID, req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrOwnItem):
			return nil, errs.Mark(err, ErrOwnItemBooking)
		case errors.Is(err, booking.ErrCoincidentPeriod), errors.Is(err, booking.ErrInvertedPeriod):
			return nil, errs.Mark(err, ErrInvalidPeriod)
		default:
			return nil, err
		}
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.store.FindByID(ctx, bookingID)
}

func (c *bookingCommandsImpl) Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error) {
	snap, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	b := booking.ReconstructBooking(
		snap.ID, snap.ItemID, snap.ItemOwnerID, snap.BookerID,
		booking.ReconstructPeriod(snap.StartAt, snap.EndAt),
		booking.Status(snap.Status),
		snap.CreatedAt, snap.UpdatedAt,
	)
	if !b.IsWaiting() {
		return nil, ErrAlreadyDecided
	}

	if _, err := c.uow.CommandReads().UserByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to load owner")
	}
	if ownerID == b.BookerID() {
		return nil, ErrSelfDecision
	}

	if approve {
		err = b.Approve()
	} else {
		err = b.Reject()
	}
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyDecided) {
			return nil, errs.Mark(err, ErrAlreadyDecided)
		}
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The aggregate decided; the conditional write is only the guard
		// against a concurrent decision that landed since the snapshot.
		err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b.ID(), booking.StatusWaiting, b.Status())
		if err != nil {
			// Another decision landed between the snapshot read and the
			// conditional write. Report it like any late decision.
			if infra.IsKind(err, infra.KindStaleStatus) {
				return errs.Mark(err, ErrAlreadyDecided)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.store.FindByID(ctx, bookingID)
}
