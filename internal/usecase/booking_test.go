//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/shared"
	"rentwheels/tests/common/builder"
	sharedmock "rentwheels/tests/mock/shared"
	usecasemock "rentwheels/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockBookings *sharedmock.MockBookingTxRepo
	mockCarReads *usecasemock.MockCarReads
	mockReads    *usecasemock.MockBookingReads
	mockPayments *usecasemock.MockPaymentClient
	mockNotifier *usecasemock.MockNotifier
	uc           usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingTxRepo(s.mockCtrl)
	s.mockCarReads = usecasemock.NewMockCarReads(s.mockCtrl)
	s.mockReads = usecasemock.NewMockBookingReads(s.mockCtrl)
	s.mockPayments = usecasemock.NewMockPaymentClient(s.mockCtrl)
	s.mockNotifier = usecasemock.NewMockNotifier(s.mockCtrl)

	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()

	s.uc = usecase.NewBookingUseCase(
		s.mockUoW, s.mockCarReads, s.mockReads,
		s.mockPayments, s.mockNotifier, time.Second,
	)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

// expectWithin routes uow.Within through the mock transaction.
func (s *BookingUseCaseTestSuite) expectWithin() {
	s.mockUoW.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

// ================================================================================
// Create
// ================================================================================

func (s *BookingUseCaseTestSuite) TestCreate() {
	s.Run("success", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		view := b.BuildView(uuid.New())

		s.mockCarReads.EXPECT().FindByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
		s.expectWithin()
		s.mockBookings.EXPECT().LockCar(gomock.Any(), b.CarID).Return(nil)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), b.CarID, gomock.Any()).Return(false, nil)
		s.mockBookings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.mockReads.EXPECT().FindViewByID(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := s.uc.Create(context.Background(), b.BuildParams())
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("unknown car", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()

		s.mockCarReads.EXPECT().FindByID(gomock.Any(), b.CarID).
			Return(nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound))

		_, err := s.uc.Create(context.Background(), b.BuildParams())
		s.ErrorIs(err, usecase.ErrCarNotFound)
	})

	s.Run("unavailable car is rejected before any transaction", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Available = false })

		s.mockCarReads.EXPECT().FindByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)

		_, err := s.uc.Create(context.Background(), b.BuildParams())
		s.ErrorIs(err, usecase.ErrCarUnavailable)
	})

	s.Run("overlapping dates conflict", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()

		s.mockCarReads.EXPECT().FindByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
		s.expectWithin()
		s.mockBookings.EXPECT().LockCar(gomock.Any(), b.CarID).Return(nil)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), b.CarID, gomock.Any()).Return(true, nil)

		_, err := s.uc.Create(context.Background(), b.BuildParams())
		s.ErrorIs(err, usecase.ErrDateConflict)
	})

	s.Run("storage failure is not a domain verdict", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()

		s.mockCarReads.EXPECT().FindByID(gomock.Any(), b.CarID).Return(b.BuildCarSnapshot(), nil)
		s.expectWithin()
		s.mockBookings.EXPECT().LockCar(gomock.Any(), b.CarID).Return(nil)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), b.CarID, gomock.Any()).
			Return(false, infra.WrapRepoErr("failed to check booking overlap", nil))

		_, err := s.uc.Create(context.Background(), b.BuildParams())
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
		s.NotErrorIs(err, usecase.ErrDateConflict)
	})
}

// ================================================================================
// Pay
// ================================================================================

func (s *BookingUseCaseTestSuite) TestPay() {
	s.Run("success confirms and notifies", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		snap := b.BuildSnapshot(bookingID)

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(snap, nil)
		s.mockPayments.EXPECT().CreateIntent(gomock.Any(), snap.TotalPriceCents).Return("pi_123", nil)
		s.mockPayments.EXPECT().Capture(gomock.Any(), "pi_123").
			Return(usecase.CaptureResult{Status: usecase.CaptureSucceeded, TransactionID: "txn_123"}, nil)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusConfirmed).Return(nil)

		notified := make(chan struct{})
		s.mockNotifier.EXPECT().Notify(gomock.Any(), snap.CustomerEmail, bookingID).
			DoAndReturn(func(context.Context, string, uuid.UUID) error {
				close(notified)
				return nil
			})

		receipt, err := s.uc.Pay(context.Background(), bookingID, b.CustomerID)
		s.NoError(err)
		s.Equal(bookingID, receipt.BookingID)
		s.Equal("txn_123", receipt.TransactionID)

		select {
		case <-notified:
		case <-time.After(time.Second):
			s.Fail("notification was never sent")
		}
	})

	s.Run("only the owner can pay", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(b.BuildSnapshot(bookingID), nil)

		_, err := s.uc.Pay(context.Background(), bookingID, uuid.New())
		s.ErrorIs(err, usecase.ErrBookingForbidden)
	})

	s.Run("non-pending booking cannot be paid", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed })
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(b.BuildSnapshot(bookingID), nil)

		_, err := s.uc.Pay(context.Background(), bookingID, b.CustomerID)
		s.ErrorIs(err, usecase.ErrBookingNotPending)
	})

	s.Run("declined capture keeps booking pending", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		snap := b.BuildSnapshot(bookingID)

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(snap, nil)
		s.mockPayments.EXPECT().CreateIntent(gomock.Any(), snap.TotalPriceCents).Return("pi_123", nil)
		s.mockPayments.EXPECT().Capture(gomock.Any(), "pi_123").
			Return(usecase.CaptureResult{Status: "declined"}, nil)

		_, err := s.uc.Pay(context.Background(), bookingID, b.CustomerID)
		s.ErrorIs(err, usecase.ErrPaymentFailed)
	})

	s.Run("processor error is an infrastructure failure", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		snap := b.BuildSnapshot(bookingID)

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(snap, nil)
		s.mockPayments.EXPECT().CreateIntent(gomock.Any(), snap.TotalPriceCents).
			Return("", context.DeadlineExceeded)

		_, err := s.uc.Pay(context.Background(), bookingID, b.CustomerID)
		s.ErrorIs(err, usecase.ErrPaymentUnavailable)
		s.NotErrorIs(err, usecase.ErrPaymentFailed)
	})

	s.Run("missing booking", func() {
		s.SetupTest()
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.uc.Pay(context.Background(), bookingID, uuid.New())
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *BookingUseCaseTestSuite) TestCancel() {
	s.Run("owner cancels a pending booking", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(b.BuildSnapshot(bookingID), nil)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled).Return(nil)

		err := s.uc.Cancel(context.Background(), bookingID, b.CustomerID, user.RoleClient)
		s.NoError(err)
	})

	s.Run("admin cancels someone else's confirmed booking", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed })
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(b.BuildSnapshot(bookingID), nil)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled).Return(nil)

		err := s.uc.Cancel(context.Background(), bookingID, uuid.New(), user.RoleAdmin)
		s.NoError(err)
	})

	s.Run("stranger cannot cancel", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(b.BuildSnapshot(bookingID), nil)

		err := s.uc.Cancel(context.Background(), bookingID, uuid.New(), user.RoleClient)
		s.ErrorIs(err, usecase.ErrBookingForbidden)
	})

	s.Run("cancelled booking stays cancelled", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCancelled })
		bookingID := uuid.New()

		s.expectWithin()
		s.mockBookings.EXPECT().LockByID(gomock.Any(), bookingID).Return(b.BuildSnapshot(bookingID), nil)

		err := s.uc.Cancel(context.Background(), bookingID, b.CustomerID, user.RoleClient)
		s.ErrorIs(err, usecase.ErrBookingNotCancellable)
	})
}

// ================================================================================
// Reads
// ================================================================================

func (s *BookingUseCaseTestSuite) TestGet() {
	s.Run("owner reads own booking", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()
		view := b.BuildView(bookingID)

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), bookingID).Return(view, nil)

		got, err := s.uc.Get(context.Background(), bookingID, b.CustomerID, user.RoleClient)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("stranger is refused", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), bookingID).Return(b.BuildView(bookingID), nil)

		_, err := s.uc.Get(context.Background(), bookingID, uuid.New(), user.RoleClient)
		s.ErrorIs(err, usecase.ErrBookingForbidden)
	})

	s.Run("admin reads anything", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder()
		bookingID := uuid.New()

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), bookingID).Return(b.BuildView(bookingID), nil)

		_, err := s.uc.Get(context.Background(), bookingID, uuid.New(), user.RoleAdmin)
		s.NoError(err)
	})
}

func (s *BookingUseCaseTestSuite) TestListAll() {
	s.Run("admin only", func() {
		s.SetupTest()
		_, err := s.uc.ListAll(context.Background(), user.RoleClient)
		s.ErrorIs(err, usecase.ErrAdminOnly)
	})

	s.Run("admin lists everything", func() {
		s.SetupTest()
		s.mockReads.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		_, err := s.uc.ListAll(context.Background(), user.RoleAdmin)
		s.NoError(err)
	})
}
