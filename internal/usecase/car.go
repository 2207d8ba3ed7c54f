package usecase

import (
	"context"

	"rentwheels/internal/domain/car"
	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/patch"
	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCarForbidden  = errs.New("not allowed to modify this car")
	ErrDealerOnly    = errs.New("dealer or administrator role required")
	ErrInvalidCar    = errs.New("invalid car attributes")
	ErrCarHasBooking = errs.New("car has active bookings")
)

// CarListFilter narrows the public catalogue. Zero values mean "no filter";
// MaxPriceCents of zero is treated as unbounded.
type CarListFilter struct {
	Location      string
	Make          string
	MinPriceCents int64
	MaxPriceCents int64
	OnlyAvailable bool
	Limit         int
	Offset        int
}

type CreateCarParams struct {
	OwnerID          uuid.UUID
	Make             string
	Model            string
	Year             int
	Location         string
	PricePerDayCents int64
	Description      string
}

// UpdateCarParams carries optional fields; nil means "leave unchanged".
type UpdateCarParams struct {
	Location         *string
	PricePerDayCents *int64
	Available        *bool
	Description      *string
}

type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.CarView, error)
	List(ctx context.Context, filter CarListFilter) ([]*readmodel.CarView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.CarView, error)
	Create(ctx context.Context, c *car.Car) error
	Update(ctx context.Context, id uuid.UUID, snapshot CarSnapshot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CarUseCase interface {
	Create(ctx context.Context, requesterRole user.Role, params CreateCarParams) (*readmodel.CarView, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.CarView, error)
	List(ctx context.Context, filter CarListFilter) ([]*readmodel.CarView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.CarView, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role, params UpdateCarParams) (*readmodel.CarView, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) error
}

type carUseCaseImpl struct {
	cars CarRepository
}

func NewCarUseCase(cars CarRepository) CarUseCase {
	return &carUseCaseImpl{cars: cars}
}

// Create lists a new car. Only dealers and admins may publish listings.
func (u *carUseCaseImpl) Create(ctx context.Context, requesterRole user.Role, params CreateCarParams) (*readmodel.CarView, error) {
	if requesterRole != user.RoleDealer && !requesterRole.IsAdmin() {
		return nil, ErrDealerOnly
	}

	entity, err := car.NewCar(
		params.OwnerID, params.Make, params.Model, params.Year,
		params.Location, params.PricePerDayCents, params.Description,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCar)
	}

	if err := u.cars.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.cars.FindViewByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *carUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.CarView, error) {
	view, err := u.cars.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *carUseCaseImpl) List(ctx context.Context, filter CarListFilter) ([]*readmodel.CarView, error) {
	views, err := u.cars.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (u *carUseCaseImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.CarView, error) {
	views, err := u.cars.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

// Update applies a partial patch to a listing the requester owns (admins
// may patch any listing). Make, model and year are fixed at creation.
func (u *carUseCaseImpl) Update(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role, params UpdateCarParams) (*readmodel.CarView, error) {
	snap, err := u.cars.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.OwnerID != requesterID && !requesterRole.IsAdmin() {
		return nil, ErrCarForbidden
	}

	snap.Location = patch.Coalesce(params.Location, snap.Location)
	snap.PricePerDayCents = patch.Coalesce(params.PricePerDayCents, snap.PricePerDayCents)
	snap.Available = patch.Coalesce(params.Available, snap.Available)
	snap.Description = patch.Coalesce(params.Description, snap.Description)

	if snap.Location == "" {
		return nil, errs.Mark(car.ErrEmptyLocation, ErrInvalidCar)
	}
	if snap.PricePerDayCents <= 0 {
		return nil, errs.Mark(car.ErrNonPositivePrice, ErrInvalidCar)
	}

	if err := u.cars.Update(ctx, id, *snap); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.cars.FindViewByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Delete removes a listing. Listings referenced by bookings are kept to
// preserve booking history; the delete is rejected instead.
func (u *carUseCaseImpl) Delete(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) error {
	snap, err := u.cars.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCarNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.OwnerID != requesterID && !requesterRole.IsAdmin() {
		return ErrCarForbidden
	}

	if err := u.cars.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCarHasBooking
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCarNotFound
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
