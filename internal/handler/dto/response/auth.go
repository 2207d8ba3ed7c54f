package response

import (
	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUserView(v *readmodel.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		FullName: v.FullName,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
