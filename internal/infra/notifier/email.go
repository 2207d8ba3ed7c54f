package notifier

import (
	"context"
	"log/slog"

	"rentwheels/internal/usecase"

	"github.com/google/uuid"
)

// EmailNotifier logs the confirmation instead of talking to a mail
// provider. Callers treat delivery as best-effort either way.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

var _ usecase.Notifier = (*EmailNotifier)(nil)

func (n *EmailNotifier) Notify(ctx context.Context, recipient string, bookingID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.InfoContext(ctx, "booking confirmation email sent",
		"recipient", recipient,
		"booking_id", bookingID)
	return nil
}
