package shared

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one database transaction. Booking
// lifecycle transitions and the admission check-then-insert both need an
// exclusivity scope wider than a single statement, so they go through here.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the transaction-bound repositories.
type Tx interface {
	Bookings() BookingTxRepo
}

type BookingTxRepo interface {
	// LockCar takes a per-car advisory lock held until the transaction
	// ends, serialising concurrent admission checks for the same car.
	LockCar(ctx context.Context, carID uuid.UUID) error
	// HasOverlap reports whether any non-cancelled booking for the car
	// overlaps the range (inclusive on both boundaries).
	HasOverlap(ctx context.Context, carID uuid.UUID, rng booking.DateRange) (bool, error)
	Insert(ctx context.Context, b *booking.Booking) error
	// LockByID reads the booking row FOR UPDATE, so lifecycle transitions
	// on one booking are serialised for the rest of the transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

// BookingSnapshot is the write-side view of a booking row, joined with the
// customer's email for post-commit notification.
type BookingSnapshot struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	CustomerEmail   string
	CarID           uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          booking.Status
	CreatedAt       time.Time
}
