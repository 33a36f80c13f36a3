package response

import (
	"time"

	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromItemView(view *queries.ItemView) (*ItemResponse, error) {
	var resp ItemResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromItemViews(views []*queries.ItemView) ([]*ItemResponse, error) {
	result := make([]*ItemResponse, len(views))
	for i, view := range views {
		resp, err := FromItemView(view)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
