package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// ListBookingsQuery carries the raw query-string values; filter and pagination
// are validated by the handler before any usecase call.
type ListBookingsQuery struct {
	Filter string `form:"filter"`
	Limit  int32  `form:"limit"`
	Offset int32  `form:"offset"`
}

type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}
