package readstore

import (
	"context"
	"fmt"
	"time"

	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingByIDQuery = `
SELECT b.id, b.start_at, b.end_at, b.status,
       i.id AS item_id, i.name AS item_name, i.owner_id AS item_owner_id,
       b.booker_id, b.created_at, b.updated_at
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1
`

// bookingListBaseQuery matches either side of the booking depending on the
// role selector: owners see bookings against their items, bookers see their
// own requests. Every filter variant appends to this one statement so the
// ordering and join shape stay identical across filters.
const bookingListBaseQuery = `
SELECT b.id, b.start_at, b.end_at, b.status,
       i.id AS item_id, i.name AS item_name, i.owner_id AS item_owner_id,
       b.booker_id, b.created_at, b.updated_at
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE (CASE WHEN $1 = 'owner' THEN i.owner_id ELSE b.booker_id END) = $2
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingByIDQuery, pgconv.UUIDToPgtype(id))

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) ListBySubject(ctx context.Context, role queries.Role, subjectID uuid.UUID, filter queries.Filter, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	sql, args := buildBookingListQuery(role, subjectID, filter, now, page)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

// buildBookingListQuery appends the filter predicate and the fixed
// start-descending ordering to the base statement. Temporal filters compare
// against the caller-supplied now; CURRENT treats the period as half-open,
// so a booking ending exactly at now is already past.
func buildBookingListQuery(role queries.Role, subjectID uuid.UUID, filter queries.Filter, now time.Time, page queries.Page) (string, []any) {
	args := []any{string(role), pgconv.UUIDToPgtype(subjectID)}

	var predicate string
	switch filter {
	case queries.FilterCurrent:
		predicate = fmt.Sprintf("AND b.start_at <= $%d AND b.end_at > $%d", len(args)+1, len(args)+1)
		args = append(args, pgconv.TimeToPgtype(now))
	case queries.FilterPast:
		// end bound inclusive here so PAST/CURRENT/FUTURE partition ALL:
		// CURRENT keeps end_at > now, so end_at == now is past.
		predicate = fmt.Sprintf("AND b.end_at <= $%d", len(args)+1)
		args = append(args, pgconv.TimeToPgtype(now))
	case queries.FilterFuture:
		predicate = fmt.Sprintf("AND b.start_at > $%d", len(args)+1)
		args = append(args, pgconv.TimeToPgtype(now))
	case queries.FilterWaiting:
		predicate = fmt.Sprintf("AND b.status = $%d", len(args)+1)
		args = append(args, "waiting")
	case queries.FilterRejected:
		predicate = fmt.Sprintf("AND b.status = $%d", len(args)+1)
		args = append(args, "rejected")
	default: // FilterAll
	}

	sql := fmt.Sprintf("%s%s\nORDER BY b.start_at DESC\nLIMIT $%d OFFSET $%d",
		bookingListBaseQuery, predicate, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset)

	return sql, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id, itemID, ownerID, bookerID      pgtype.UUID
		startAt, endAt, createdAt, updated pgtype.Timestamptz
		status, itemName                   string
	)

	err := row.Scan(&id, &startAt, &endAt, &status,
		&itemID, &itemName, &ownerID,
		&bookerID, &createdAt, &updated)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:     pgconv.UUIDFromPgtype(id),
		Start:  pgconv.TimeFromPgtype(startAt),
		End:    pgconv.TimeFromPgtype(endAt),
		Status: status,
		Item: queries.ItemRef{
			ID:      pgconv.UUIDFromPgtype(itemID),
			Name:    itemName,
			OwnerID: pgconv.UUIDFromPgtype(ownerID),
		},
		Booker:    queries.BookerRef{ID: pgconv.UUIDFromPgtype(bookerID)},
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		UpdatedAt: pgconv.TimeFromPgtype(updated),
	}, nil
}
