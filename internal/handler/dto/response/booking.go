package response

import (
	"time"

	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingBookerResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingResponse struct {
	ID        uuid.UUID             `json:"id"`
	Start     time.Time             `json:"start"`
	End       time.Time             `json:"end"`
	Status    string                `json:"status"`
	Item      BookingItemResponse   `json:"item"`
	Booker    BookingBookerResponse `json:"booker"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	result := make([]*BookingResponse, len(views))
	for i, view := range views {
		resp, err := FromBookingView(view)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
