package components

import (
	"rentwheels/internal/infra/db"
	repo_impl "rentwheels/internal/infra/repository"
	"rentwheels/internal/infra/uow"
	"rentwheels/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCarRepository,
			fx.As(new(usecase.CarRepository)),
			fx.As(new(usecase.CarReads)),
		),
		fx.Annotate(
			repo_impl.NewBookingReadRepository,
			fx.As(new(usecase.BookingReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
