package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNonPositivePrice  = errors.New("booking price must be positive")
	ErrCarNotRentable    = errors.New("car is not available for rent")
)

// Booking is a reservation of one car for a date range. The customer, car
// and date range are immutable after creation; total price is computed once
// from the car's daily price and never recalculated.
type Booking struct {
	id         uuid.UUID
	customerID uuid.UUID
	carID      uuid.UUID
	dateRange  DateRange
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// CarSpec is the slice of a car listing the booking domain needs.
type CarSpec struct {
	ID               uuid.UUID
	PricePerDayCents int64
	Available        bool
}

// NewBooking admits a booking against a car snapshot: the car must carry the
// owner-controlled availability flag. Date conflicts with other bookings are
// the caller's concern (they require the booking store).
func NewBooking(car CarSpec, customerID uuid.UUID, dateRange DateRange) (*Booking, error) {
	if !car.Available {
		return nil, ErrCarNotRentable
	}

	total := NewMoney(car.PricePerDayCents).MultiplyDays(dateRange.ChargeableDays())
	if total.Cents() <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Booking{
		id:         uuid.New(),
		customerID: customerID,
		carID:      car.ID,
		dateRange:  dateRange,
		totalPrice: total,
		status:     StatusPending,
	}, nil
}

func ReconstructBooking(
	id, customerID, carID uuid.UUID,
	dateRange DateRange,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		carID:      carID,
		dateRange:  dateRange,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo advances the lifecycle. Transitions out of terminal states
// and any move back to PENDING are rejected.
func (b *Booking) TransitionTo(target Status) error {
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// OwnedBy reports whether the reservation belongs to the given customer.
func (b *Booking) OwnedBy(customerID uuid.UUID) bool {
	return b.customerID == customerID
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) CarID() uuid.UUID      { return b.carID }
func (b *Booking) DateRange() DateRange  { return b.dateRange }
func (b *Booking) TotalPrice() Money     { return b.totalPrice }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
