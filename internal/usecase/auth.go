package usecase

import (
	"context"
	"log/slog"
	"time"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/pkg/password"
	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserNotFound       = errs.New("user not found")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrEmailTaken         = errs.New("email is already registered")
	ErrInvalidUserInput   = errs.New("invalid user attributes")
	ErrRoleNotAllowed     = errs.New("role cannot be self-assigned")
	ErrTokenInvalid       = errs.New("token is invalid or expired")
)

type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type LoginResult struct {
	Token string
	User  *readmodel.AuthorizedUserView
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserView, error)
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// TokenValidator is the slice of auth the middleware needs.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type AuthUseCase interface {
	TokenValidator
	Register(ctx context.Context, params RegisterParams) (*readmodel.AuthorizedUserView, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	users UserRepository
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{users: users, jwt: jwtService, clock: clk}
}

// Register creates a CLIENT or DEALER account. ADMIN cannot be
// self-assigned through the public endpoint.
func (u *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*readmodel.AuthorizedUserView, error) {
	creds, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	if role.IsAdmin() {
		return nil, ErrRoleNotAllowed
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	entity := user.NewUser(creds.Email(), hash, params.FullName, role)

	if err := u.users.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.AuthorizedUserView{
		ID:       entity.ID(),
		Email:    entity.Email().Value(),
		FullName: entity.FullName(),
		Role:     entity.Role().String(),
		IsActive: entity.IsActive(),
	}, nil
}

// Login verifies credentials and issues a signed token. A missing account
// and a wrong password are deliberately indistinguishable to the caller.
func (u *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	view, hash, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := u.jwt.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	// Login bookkeeping must not block the session.
	if err := u.users.UpdateLastLogin(ctx, view.ID, u.clock.Now()); err != nil {
		slog.Warn("failed to record last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (u *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserView, error) {
	view, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *authUseCaseImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenInvalid)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenInvalid)
	}
	return claims.UserID, role, nil
}
