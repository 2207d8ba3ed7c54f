package bootstrap

import (
	"rentwheels/internal/infra/notifier"
	"rentwheels/internal/infra/payment"
	"rentwheels/internal/pkg/config"
	"rentwheels/internal/usecase"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentClient)),
		),
		fx.Annotate(
			notifier.NewEmailNotifier,
			fx.As(new(usecase.Notifier)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) (*payment.SimulatedGateway, error) {
	return payment.NewSimulatedGateway(cfg.Payment)
}
