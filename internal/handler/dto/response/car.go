package response

import (
	"time"

	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Location         string    `json:"location"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Available        bool      `json:"available"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCarView(rm *readmodel.CarView) *CarResponse {
	var resp CarResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCarViews(rms []*readmodel.CarView) []*CarResponse {
	out := make([]*CarResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromCarView(rm)
	}
	return out
}
