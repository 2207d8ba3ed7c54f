package request

import (
	"rentwheels/internal/usecase"
)

type CreateCarRequest struct {
	Make             string `json:"make" binding:"required"`
	Model            string `json:"model" binding:"required"`
	Year             int    `json:"year" binding:"required,gte=1950"`
	Location         string `json:"location" binding:"required"`
	PricePerDayCents int64  `json:"price_per_day_cents" binding:"required,gt=0"`
	Description      string `json:"description"`
}

type UpdateCarRequest struct {
	Location         *string `json:"location,omitempty"`
	PricePerDayCents *int64  `json:"price_per_day_cents,omitempty"`
	Available        *bool   `json:"available,omitempty"`
	Description      *string `json:"description,omitempty"`
}

// ListCarsQuery binds the public catalogue filters from the query string.
type ListCarsQuery struct {
	Location      string `form:"location"`
	Make          string `form:"make"`
	MinPriceCents int64  `form:"min_price_cents"`
	MaxPriceCents int64  `form:"max_price_cents"`
	OnlyAvailable bool   `form:"only_available"`
	Limit         int    `form:"limit,default=50"`
	Offset        int    `form:"offset"`
}

func (q ListCarsQuery) ToFilter() usecase.CarListFilter {
	return usecase.CarListFilter{
		Location:      q.Location,
		Make:          q.Make,
		MinPriceCents: q.MinPriceCents,
		MaxPriceCents: q.MaxPriceCents,
		OnlyAvailable: q.OnlyAvailable,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
}
