package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/readmodel"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCarUnavailable          = errs.New("car is not available for rent")
	ErrDateConflict            = errs.New("car is already booked for these dates")
	ErrBookingForbidden        = errs.New("not allowed to act on this booking")
	ErrAdminOnly               = errs.New("administrator role required")
	ErrBookingNotPending       = errs.New("booking is not in a pending state")
	ErrBookingNotCancellable   = errs.New("booking can no longer be cancelled")
	ErrPaymentFailed           = errs.New("payment failed at processor")
	ErrPaymentUnavailable      = errs.New("payment processor unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	CustomerID uuid.UUID
	CarID      uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

type PaymentReceipt struct {
	BookingID     uuid.UUID
	TransactionID string
}

// Write-side car reads for the booking command path.
type CarReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
}

// Read-side booking views.
type BookingReads interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingListItem, error)
	ListAll(ctx context.Context) ([]*readmodel.BookingListItem, error)
}

type BookingUseCase interface {
	Create(ctx context.Context, params CreateBookingParams) (*readmodel.BookingView, error)
	Pay(ctx context.Context, bookingID, payerID uuid.UUID) (*PaymentReceipt, error)
	Cancel(ctx context.Context, bookingID, requesterID uuid.UUID, requesterRole user.Role) error
	Get(ctx context.Context, bookingID, requesterID uuid.UUID, requesterRole user.Role) (*readmodel.BookingView, error)
	ListMine(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingListItem, error)
	ListAll(ctx context.Context, requesterRole user.Role) ([]*readmodel.BookingListItem, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	carReads       CarReads
	bookingReads   BookingReads
	payments       PaymentClient
	notifier       Notifier
	paymentTimeout time.Duration
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	carReads CarReads,
	bookingReads BookingReads,
	payments PaymentClient,
	notifier Notifier,
	paymentTimeout time.Duration,
) BookingUseCase {
	return &bookingUseCaseImpl{
		uow:            uow,
		carReads:       carReads,
		bookingReads:   bookingReads,
		payments:       payments,
		notifier:       notifier,
		paymentTimeout: paymentTimeout,
	}
}

// Create admits a new booking. The overlap check and the insert run inside
// one transaction holding a per-car advisory lock, so two concurrent
// requests for the same car cannot both pass the check.
func (u *bookingUseCaseImpl) Create(ctx context.Context, params CreateBookingParams) (*readmodel.BookingView, error) {
	carSnap, err := u.carReads.FindByID(ctx, params.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(
		booking.CarSpec{
			ID:               carSnap.ID,
			PricePerDayCents: carSnap.PricePerDayCents,
			Available:        carSnap.Available,
		},
		params.CustomerID,
		booking.NewDateRange(params.StartDate, params.EndDate),
	)
	if err != nil {
		if errors.Is(err, booking.ErrCarNotRentable) {
			return nil, ErrCarUnavailable
		}
		return nil, errs.Mark(err, ErrCarUnavailable)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookings := tx.Bookings()

		if err := bookings.LockCar(ctx, params.CarID); err != nil {
			return err
		}

		overlap, err := bookings.HasOverlap(ctx, params.CarID, entity.DateRange())
		if err != nil {
			return err
		}
		if overlap {
			return ErrDateConflict
		}

		return bookings.Insert(ctx, entity)
	})
	if err != nil {
		return nil, u.translateBookingErr(err)
	}

	view, err := u.bookingReads.FindViewByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Pay drives PENDING -> CONFIRMED. The booking row stays locked across the
// capture call: a successful capture and the status write commit together,
// and a racing Cancel blocks until the transition is decided.
func (u *bookingUseCaseImpl) Pay(ctx context.Context, bookingID, payerID uuid.UUID) (*PaymentReceipt, error) {
	var (
		receipt       PaymentReceipt
		customerEmail string
	)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().LockByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if snap.CustomerID != payerID {
			return ErrBookingForbidden
		}
		if snap.Status != booking.StatusPending {
			return ErrBookingNotPending
		}

		payCtx, cancel := context.WithTimeout(ctx, u.paymentTimeout)
		defer cancel()

		intentID, err := u.payments.CreateIntent(payCtx, snap.TotalPriceCents)
		if err != nil {
			return errs.Mark(err, ErrPaymentUnavailable)
		}

		result, err := u.payments.Capture(payCtx, intentID)
		if err != nil {
			return errs.Mark(err, ErrPaymentUnavailable)
		}
		if result.Status != CaptureSucceeded {
			return ErrPaymentFailed
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusConfirmed); err != nil {
			return err
		}

		receipt = PaymentReceipt{BookingID: bookingID, TransactionID: result.TransactionID}
		customerEmail = snap.CustomerEmail
		return nil
	})
	if err != nil {
		return nil, u.translateBookingErr(err)
	}

	// Best-effort confirmation mail; the booking is already confirmed and
	// a delivery failure must not surface to the caller.
	go func() {
		if err := u.notifier.Notify(context.WithoutCancel(ctx), customerEmail, bookingID); err != nil {
			slog.Warn("booking confirmation notification failed",
				"booking_id", bookingID, "error", err.Error())
		}
	}()

	return &receipt, nil
}

// Cancel moves any non-terminal booking to CANCELLED. Cancelling a paid
// (CONFIRMED) booking performs no refund; compensation is out of scope.
func (u *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID, requesterID uuid.UUID, requesterRole user.Role) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().LockByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if snap.CustomerID != requesterID && !requesterRole.IsAdmin() {
			return ErrBookingForbidden
		}
		if !snap.Status.CanTransitionTo(booking.StatusCancelled) {
			return ErrBookingNotCancellable
		}

		return tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusCancelled)
	})
	return u.translateBookingErr(err)
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, bookingID, requesterID uuid.UUID, requesterRole user.Role) (*readmodel.BookingView, error) {
	view, err := u.bookingReads.FindViewByID(ctx, bookingID)
	if err != nil {
		return nil, u.translateBookingErr(err)
	}
	if view.CustomerID != requesterID && !requesterRole.IsAdmin() {
		return nil, ErrBookingForbidden
	}
	return view, nil
}

func (u *bookingUseCaseImpl) ListMine(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingListItem, error) {
	items, err := u.bookingReads.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (u *bookingUseCaseImpl) ListAll(ctx context.Context, requesterRole user.Role) ([]*readmodel.BookingListItem, error) {
	if !requesterRole.IsAdmin() {
		return nil, ErrAdminOnly
	}
	items, err := u.bookingReads.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return items, nil
}

// translateBookingErr keeps domain outcomes distinct from infrastructure
// failures: a storage error never turns into an admission or lifecycle
// verdict.
func (u *bookingUseCaseImpl) translateBookingErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDateConflict),
		errors.Is(err, ErrBookingForbidden),
		errors.Is(err, ErrBookingNotPending),
		errors.Is(err, ErrBookingNotCancellable),
		errors.Is(err, ErrPaymentFailed),
		errors.Is(err, ErrPaymentUnavailable):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrDateConflict
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
