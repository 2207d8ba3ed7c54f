package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CarView struct {
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
