//go:build unit || e2e

package builder

import (
	"time"

	dombooking "rentwheels/internal/domain/booking"
	reqdto "rentwheels/internal/handler/dto/request"
	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/readmodel"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CarID            uuid.UUID
	CustomerID       uuid.UUID
	CustomerEmail    string
	PricePerDayCents int64
	Available        bool
	StartDate        time.Time
	EndDate          time.Time
	Status           dombooking.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		CarID:            uuid.New(),
		CustomerID:       uuid.New(),
		CustomerEmail:    "client@example.com",
		PricePerDayCents: 100_00,
		Available:        true,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 2),
		Status:           dombooking.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) CarSpec() dombooking.CarSpec {
	return dombooking.CarSpec{
		ID:               b.CarID,
		PricePerDayCents: b.PricePerDayCents,
		Available:        b.Available,
	}
}

func (b *BookingBuilder) DateRange() dombooking.DateRange {
	return dombooking.NewDateRange(b.StartDate, b.EndDate)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.CarSpec(), b.CustomerID, b.DateRange())
}

func (b *BookingBuilder) BuildParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		CustomerID: b.CustomerID,
		CarID:      b.CarID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

func (b *BookingBuilder) BuildCarSnapshot() *usecase.CarSnapshot {
	return &usecase.CarSnapshot{
		ID:               b.CarID,
		OwnerID:          uuid.New(),
		Make:             "Toyota",
		Model:            "Corolla",
		Year:             2022,
		Location:         "Lisbon",
		PricePerDayCents: b.PricePerDayCents,
		Available:        b.Available,
	}
}

func (b *BookingBuilder) BuildSnapshot(id uuid.UUID) *shared.BookingSnapshot {
	days := b.DateRange().ChargeableDays()
	return &shared.BookingSnapshot{
		ID:              id,
		CustomerID:      b.CustomerID,
		CustomerEmail:   b.CustomerEmail,
		CarID:           b.CarID,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPriceCents: b.PricePerDayCents * int64(days),
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView(id uuid.UUID) *readmodel.BookingView {
	days := b.DateRange().ChargeableDays()
	return &readmodel.BookingView{
		ID:              id,
		CustomerID:      b.CustomerID,
		CustomerEmail:   b.CustomerEmail,
		CarID:           b.CarID,
		CarMake:         "Toyota",
		CarModel:        "Corolla",
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPriceCents: b.PricePerDayCents * int64(days),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItems(n int) []*readmodel.BookingListItem {
	days := b.DateRange().ChargeableDays()
	items := make([]*readmodel.BookingListItem, n)
	for i := range items {
		items[i] = &readmodel.BookingListItem{
			ID:              uuid.New(),
			CarID:           b.CarID,
			CarMake:         "Toyota",
			CarModel:        "Corolla",
			StartDate:       b.StartDate.AddDate(0, 0, i*7),
			EndDate:         b.EndDate.AddDate(0, 0, i*7),
			TotalPriceCents: b.PricePerDayCents * int64(days),
			Status:          string(b.Status),
			CreatedAt:       b.CreatedAt,
		}
	}
	return items
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}
