package components

import (
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/config"
	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewCarUseCase,
		NewBookingUseCase,
		func(auth usecase.AuthUseCase) usecase.TokenValidator { return auth },
	),
)

func NewBookingUseCase(
	cfg config.Config,
	uow shared.UnitOfWork,
	carReads usecase.CarReads,
	bookingReads usecase.BookingReads,
	payments usecase.PaymentClient,
	notifier usecase.Notifier,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(uow, carReads, bookingReads, payments, notifier, cfg.Payment.Timeout)
}
