//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/handler/api"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/usecase"
	"rentwheels/tests/common/builder"
	"rentwheels/tests/common/httptest"
	"rentwheels/tests/common/testutil"
	usecasemock "rentwheels/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/all", authMiddleware, s.handler.ListAllBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/pay", authMiddleware, s.handler.PayBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView(uuid.New())

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("PENDING", response.Status)
		s.Equal(returnView.TotalPriceCents, response.TotalPriceCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: car_id (required)", mutate: testutil.Field("car_id", nil)},
			{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil)},
			{name: "missing field: end_date (required)", mutate: testutil.Field("end_date", nil)},
			{name: "malformed car_id", mutate: testutil.Field("car_id", "not-a-uuid")},
			{name: "malformed start_date", mutate: testutil.Field("start_date", "yesterday")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "car not found",
				useCaseError:   usecase.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "car unavailable",
				useCaseError:   usecase.ErrCarUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not available",
			},
			{
				name:           "date conflict",
				useCaseError:   usecase.ErrDateConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestPayBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestPayBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/pay"

	s.Run("success: returns 200 OK with confirmation", func() {
		receipt := &usecase.PaymentReceipt{BookingID: bookingID, TransactionID: "txn_123"}
		s.mockUseCase.EXPECT().Pay(gomock.Any(), bookingID, s.userID).
			Return(receipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal("txn_123", response.TransactionID)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/invalid-uuid/pay", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				useCaseError:   usecase.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the owner",
				useCaseError:   usecase.ErrBookingForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "owner",
			},
			{
				name:           "not pending",
				useCaseError:   usecase.ErrBookingNotPending,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not awaiting payment",
			},
			{
				name:           "payment declined",
				useCaseError:   usecase.ErrPaymentFailed,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "declined",
			},
			{
				name:           "processor unavailable",
				useCaseError:   usecase.ErrPaymentUnavailable,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "unavailable",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Pay(gomock.Any(), bookingID, s.userID).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, user.RoleClient).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				useCaseError:   usecase.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the owner",
				useCaseError:   usecase.ErrBookingForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "owner",
			},
			{
				name:           "no longer cancellable",
				useCaseError:   usecase.ErrBookingNotCancellable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer be cancelled",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, user.RoleClient).
					Return(tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		returnView := builder.NewBookingBuilder().BuildView(bookingID)
		s.mockUseCase.EXPECT().Get(gomock.Any(), bookingID, s.userID, user.RoleClient).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.CarMake, response.CarMake)
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockUseCase.EXPECT().Get(gomock.Any(), bookingID, s.userID, user.RoleClient).
			Return(nil, usecase.ErrBookingForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockUseCase.EXPECT().Get(gomock.Any(), bookingID, s.userID, user.RoleClient).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListMyBookings / TestListAllBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: returns own bookings", func() {
		items := builder.NewBookingBuilder().BuildListItems(3)
		s.mockUseCase.EXPECT().ListMine(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 3)
	})
}

func (s *BookingHandlerTestSuite) TestListAllBookings() {
	url := "/bookings/all"

	s.Run("success: returns every booking", func() {
		items := builder.NewBookingBuilder().BuildListItems(2)
		s.mockUseCase.EXPECT().ListAll(gomock.Any(), user.RoleClient).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 403 Forbidden for non-admin", func() {
		s.mockUseCase.EXPECT().ListAll(gomock.Any(), user.RoleClient).
			Return(nil, usecase.ErrAdminOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Administrator")
	})
}
