//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/handler/dto/request"
	"rentwheels/internal/handler/dto/response"
	"rentwheels/tests/common/authtest"
	"rentwheels/tests/common/dbtest"
	"rentwheels/tests/common/httptest"
	"rentwheels/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func registerRequest(email, role string) request.RegisterRequest {
	return request.RegisterRequest{
		Email:    email,
		Password: "password123",
		FullName: "Test User",
		Role:     role,
	}
}

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: Register, login and fetch own profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			registerRequest("new@example.com", "CLIENT"), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var registered response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &registered))
		require.Equal(t, "new@example.com", registered.Email)
		require.Equal(t, "CLIENT", registered.Role)

		token := authtest.LoginUser(t, s.Router, "new@example.com", "password123")

		wm := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, wm.Code)

		var me response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, wm.Body, &me))
		require.Equal(t, registered.ID, me.ID)
	})

	s.Run("Error case: Duplicate email returns 409", func() {
		t := s.T()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			registerRequest("dup@example.com", "CLIENT"), "")
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			registerRequest("dup@example.com", "DEALER"), "")
		require.Equal(t, http.StatusConflict, w2.Code)
	})

	s.Run("Error case: ADMIN role cannot be self-assigned", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			registerRequest("boss@example.com", "ADMIN"), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Error case: Wrong password and unknown email both return 401", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "known@example.com", string(user.RoleClient))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "known@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w2.Code)

		require.Equal(t, w1.Body.String(), w2.Body.String(),
			"login failures must be indistinguishable")
	})

	s.Run("Auth test: Requests without a token are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
