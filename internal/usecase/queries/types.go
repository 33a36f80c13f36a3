package queries

import (
	"renthub/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingAccess   = errs.New("caller is neither booker nor item owner")
	ErrInvalidPage     = errs.New("invalid pagination")
)

const DefaultPageLimit = 20

// Page is an offset/limit pair validated at the boundary, before any filter
// resolution happens.
type Page struct {
	Limit  int32
	Offset int32
}

func NewPage(limit, offset int32) (Page, error) {
	if limit <= 0 || offset < 0 {
		return Page{}, ErrInvalidPage
	}
	return Page{Limit: limit, Offset: offset}, nil
}
