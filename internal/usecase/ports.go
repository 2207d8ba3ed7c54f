package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CaptureSucceeded is the only capture status that confirms a booking;
// everything else is treated as a declined payment.
const CaptureSucceeded = "succeeded"

type CaptureResult struct {
	Status        string
	TransactionID string
}

// PaymentClient is the external payment processor. Both calls may be slow;
// callers bound them with a context deadline. A transport error is an
// infrastructure failure, not a declined payment.
type PaymentClient interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
	Capture(ctx context.Context, intentID string) (CaptureResult, error)
}

// Notifier delivers a best-effort booking confirmation. Failures are logged
// and swallowed; they never affect booking state.
type Notifier interface {
	Notify(ctx context.Context, recipient string, bookingID uuid.UUID) error
}

// Write-side snapshot of a car listing (keeps the booking command path off
// the read-side view types).
type CarSnapshot struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Make             string
	Model            string
	Year             int
	Location         string
	PricePerDayCents int64
	Available        bool
	Description      string
}
