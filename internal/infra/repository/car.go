package repository

import (
	"context"
	"fmt"
	"strings"

	"rentwheels/internal/domain/car"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/infra/pgconv"
	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultCarListLimit = 50

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(db db.DBTX) *CarRepository {
	return &CarRepository{db: db}
}

var _ usecase.CarRepository = (*CarRepository)(nil)

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.CarSnapshot, error) {
	const query = `
		SELECT id, owner_id, make, model, year, location,
		       price_per_day_cents, available, description
		FROM cars
		WHERE id = $1`

	var snap usecase.CarSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Make, &snap.Model, &snap.Year,
		&snap.Location, &snap.PricePerDayCents, &snap.Available, &snap.Description,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	return &snap, nil
}

const carViewColumns = `
	id, owner_id, make, model, year, location,
	price_per_day_cents, available, description, created_at, updated_at`

func (r *CarRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.CarView, error) {
	query := `SELECT ` + carViewColumns + ` FROM cars WHERE id = $1`

	var v readmodel.CarView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.Location,
		&v.PricePerDayCents, &v.Available, &v.Description, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	return &v, nil
}

// List builds the catalogue query from the filter. Conditions are appended
// only for fields the caller actually set.
func (r *CarRepository) List(ctx context.Context, filter usecase.CarListFilter) ([]*readmodel.CarView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Location != "" {
		conds = append(conds, "location ILIKE "+arg("%"+filter.Location+"%"))
	}
	if filter.Make != "" {
		conds = append(conds, "make ILIKE "+arg(filter.Make))
	}
	if filter.MinPriceCents > 0 {
		conds = append(conds, "price_per_day_cents >= "+arg(filter.MinPriceCents))
	}
	if filter.MaxPriceCents > 0 {
		conds = append(conds, "price_per_day_cents <= "+arg(filter.MaxPriceCents))
	}
	if filter.OnlyAvailable {
		conds = append(conds, "available = TRUE")
	}

	query := `SELECT ` + carViewColumns + ` FROM cars`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultCarListLimit
	}
	query += " ORDER BY created_at DESC LIMIT " + arg(limit) + " OFFSET " + arg(filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	return scanCarViews(rows)
}

func (r *CarRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.CarView, error) {
	query := `SELECT ` + carViewColumns + ` FROM cars WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner cars", err)
	}
	defer rows.Close()

	return scanCarViews(rows)
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) error {
	const query = `
		INSERT INTO cars (id, owner_id, make, model, year, location, price_per_day_cents, available, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		c.ID(), c.OwnerID(), c.Make(), c.Model(), c.Year(),
		c.Location(), c.PricePerDayCents(), c.Available(), c.Description(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("car owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create car", err)
	}
	return nil
}

func (r *CarRepository) Update(ctx context.Context, id uuid.UUID, snapshot usecase.CarSnapshot) error {
	const query = `
		UPDATE cars
		SET location = $2, price_per_day_cents = $3, available = $4,
		    description = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		id, snapshot.Location, snapshot.PricePerDayCents, snapshot.Available, snapshot.Description,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("car is referenced by bookings", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCarViews(rows pgx.Rows) ([]*readmodel.CarView, error) {
	views := make([]*readmodel.CarView, 0)
	for rows.Next() {
		var v readmodel.CarView
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.Location,
			&v.PricePerDayCents, &v.Available, &v.Description, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}
	return views, nil
}
