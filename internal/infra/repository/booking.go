package repository

import (
	"context"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/infra/pgconv"
	"rentwheels/internal/usecase/readmodel"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingTxRepository is the write side of the booking store. It only ever
// runs on a transaction handle; the advisory lock and FOR UPDATE row lock
// are meaningless outside one.
type BookingTxRepository struct {
	tx db.DBTX
}

func NewBookingTxRepository(tx db.DBTX) *BookingTxRepository {
	return &BookingTxRepository{tx: tx}
}

var _ shared.BookingTxRepo = (*BookingTxRepository)(nil)

// LockCar takes a transaction-scoped advisory lock keyed by the car id.
// Concurrent admissions for the same car queue here; admissions for
// different cars do not contend.
func (r *BookingTxRepository) LockCar(ctx context.Context, carID uuid.UUID) error {
	_, err := r.tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, carID)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire car admission lock", err)
	}
	return nil
}

func (r *BookingTxRepository) HasOverlap(ctx context.Context, carID uuid.UUID, rng booking.DateRange) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status <> 'CANCELLED'
			  AND start_date <= $3
			  AND end_date >= $2
		)`

	var exists bool
	if err := r.tx.QueryRow(ctx, query, carID, rng.Start(), rng.End()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingTxRepository) Insert(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, customer_id, car_id, start_date, end_date, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.tx.Exec(ctx, query,
		b.ID(), b.CustomerID(), b.CarID(),
		b.DateRange().Start(), b.DateRange().End(),
		b.TotalPrice().Cents(), string(b.Status()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references a missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingTxRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.customer_id, u.email, b.car_id,
		       b.start_date, b.end_date, b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.customer_id
		WHERE b.id = $1
		FOR UPDATE OF b`

	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := r.tx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.CustomerID, &snap.CustomerEmail, &snap.CarID,
		&snap.StartDate, &snap.EndDate, &snap.TotalPriceCents, &status, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingTxRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.tx.Exec(ctx, query, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// BookingReadRepository serves booking views off the pool, outside any
// transaction.
type BookingReadRepository struct {
	db db.DBTX
}

func NewBookingReadRepository(db db.DBTX) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

const bookingViewColumns = `
	b.id, b.customer_id, u.email, b.car_id, c.make, c.model,
	b.start_date, b.end_date, b.total_price_cents, b.status,
	b.created_at, b.updated_at`

func (r *BookingReadRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.customer_id
		JOIN cars c ON c.id = b.car_id
		WHERE b.id = $1`

	var v readmodel.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CustomerID, &v.CustomerEmail, &v.CarID, &v.CarMake, &v.CarModel,
		&v.StartDate, &v.EndDate, &v.TotalPriceCents, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

func (r *BookingReadRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingListItem, error) {
	const query = `
		SELECT b.id, b.car_id, c.make, c.model,
		       b.start_date, b.end_date, b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN cars c ON c.id = b.car_id
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func (r *BookingReadRepository) ListAll(ctx context.Context) ([]*readmodel.BookingListItem, error) {
	const query = `
		SELECT b.id, b.car_id, c.make, c.model,
		       b.start_date, b.end_date, b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN cars c ON c.id = b.car_id
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*readmodel.BookingListItem, error) {
	items := make([]*readmodel.BookingListItem, 0)
	for rows.Next() {
		var item readmodel.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.CarID, &item.CarMake, &item.CarModel,
			&item.StartDate, &item.EndDate, &item.TotalPriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
