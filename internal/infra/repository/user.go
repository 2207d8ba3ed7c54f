package repository

import (
	"context"
	"time"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/infra/pgconv"
	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

var _ usecase.UserRepository = (*UserRepository)(nil)

// FindByEmail returns the user view together with the password hash, which
// never leaves the auth path.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, full_name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		v    readmodel.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, full_name, role, is_active
		FROM users
		WHERE id = $1`

	var v readmodel.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.FullName(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
