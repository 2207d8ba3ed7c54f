//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/handler/dto/request"
	"rentwheels/internal/handler/dto/response"
	"rentwheels/tests/common/authtest"
	"rentwheels/tests/common/dbtest"
	"rentwheels/tests/common/httptest"
	"rentwheels/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createCar(t *testing.T) uuid.UUID {
	dealerID := dbtest.CreateTestUser(t, s.DB, "dealer@example.com", string(user.RoleDealer))
	return dbtest.CreateTestCar(t, s.DB, dealerID, dbtest.DefaultCarFixture())
}

func bookingRequest(carID uuid.UUID, startOffsetDays, days int) request.CreateBookingRequest {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, startOffsetDays)
	return request.CreateBookingRequest{
		CarID:     carID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days),
	}
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: Client books a car and is charged per day", func() {
		t := s.T()

		carID := s.createCar(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 3), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := &response.BookingResponse{
			CustomerEmail:   "client@example.com",
			CarID:           carID,
			CarMake:         "Toyota",
			CarModel:        "Corolla",
			TotalPriceCents: 3 * 100_00,
			Status:          "PENDING",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{},
				"ID", "CustomerID", "StartDate", "EndDate", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Overlapping dates are rejected with 409", func() {
		t := s.T()

		carID := s.createCar(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 3), token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// Shifted but still overlapping range
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 9, 3), token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("Normal case: Cancelled booking frees the date range", func() {
		t := s.T()

		carID := s.createCar(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 3), token)
		require.Equal(t, http.StatusCreated, w1.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &created))

		wc := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, wc.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 3), token)
		require.Equal(t, http.StatusCreated, w2.Code, "cancelled booking must not block the range")
	})

	s.Run("Error case: Unknown car returns 404", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(uuid.New(), 7, 3), token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test: Unauthorized when not logged in", func() {
		t := s.T()

		carID := s.createCar(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 3), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConcurrentBooking - admission must stay race free
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Exactly one of two concurrent requests for the same range wins", func() {
		t := s.T()

		carID := s.createCar(t)
		tokenA := authtest.CreateAndLogin(t, s.DB, s.Router, "racer-a@example.com", string(user.RoleClient))
		tokenB := authtest.CreateAndLogin(t, s.DB, s.Router, "racer-b@example.com", string(user.RoleClient))

		reqBody := bookingRequest(carID, 7, 3)

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i, token := range []string{tokenA, tokenB} {
			wg.Add(1)
			go func(idx int, tok string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, tok)
				codes[idx] = w.Code
			}(i, token)
		}
		wg.Wait()

		created := 0
		conflicted := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one booking must be admitted, got codes %v", codes)
		require.Equal(t, 1, conflicted, "the loser must see a conflict, got codes %v", codes)

		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, carID, "PENDING"),
			"only one pending booking may exist for the car")
	})
}

// =============================================================================
// TestPayBooking
// =============================================================================

func (s *BookingSuite) TestPayBooking() {
	s.Run("Normal case: Payment confirms a pending booking", func() {
		t := s.T()

		carID := s.createCar(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		wp := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/pay", nil, token)
		require.Equal(t, http.StatusOK, wp.Code, wp.Body.String())

		var receipt response.PaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, wp.Body, &receipt))
		require.Equal(t, created.ID, receipt.BookingID)
		require.NotEmpty(t, receipt.TransactionID)
		require.Equal(t, "CONFIRMED", receipt.Status)

		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, carID, "CONFIRMED"))
	})

	s.Run("Error case: Paying twice returns 409", func() {
		t := s.T()

		carID := s.createCar(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		payURL := bookingsURL + "/" + created.ID.String() + "/pay"
		wp1 := httptest.PerformRequest(t, s.Router, http.MethodPost, payURL, nil, token)
		require.Equal(t, http.StatusOK, wp1.Code)

		wp2 := httptest.PerformRequest(t, s.Router, http.MethodPost, payURL, nil, token)
		require.Equal(t, http.StatusConflict, wp2.Code)
	})

	s.Run("Error case: Only the owner can pay", func() {
		t := s.T()

		carID := s.createCar(t)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleClient))
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		wp := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/pay", nil, strangerToken)
		require.Equal(t, http.StatusForbidden, wp.Code)
	})
}

// =============================================================================
// TestCancelBooking
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: Admin cancels someone else's confirmed booking", func() {
		t := s.T()

		carID := s.createCar(t)
		clientToken := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), clientToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		wp := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/pay", nil, clientToken)
		require.Equal(t, http.StatusOK, wp.Code)

		wc := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+created.ID.String(), nil, adminToken)
		require.Equal(t, http.StatusNoContent, wc.Code)

		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, carID, "CANCELLED"))
	})

	s.Run("Error case: Stranger cannot cancel", func() {
		t := s.T()

		carID := s.createCar(t)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleClient))
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		wc := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, wc.Code)
	})

	s.Run("Error case: Cancelling twice returns 409", func() {
		t := s.T()

		carID := s.createCar(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := bookingsURL + "/" + created.ID.String()
		wc1 := httptest.PerformRequest(t, s.Router, http.MethodDelete, cancelURL, nil, token)
		require.Equal(t, http.StatusNoContent, wc1.Code)

		wc2 := httptest.PerformRequest(t, s.Router, http.MethodDelete, cancelURL, nil, token)
		require.Equal(t, http.StatusConflict, wc2.Code)
	})
}

// =============================================================================
// TestListBookings
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: Client sees only own bookings, admin sees all", func() {
		t := s.T()

		carID := s.createCar(t)
		tokenA := authtest.CreateAndLogin(t, s.DB, s.Router, "client-a@example.com", string(user.RoleClient))
		tokenB := authtest.CreateAndLogin(t, s.DB, s.Router, "client-b@example.com", string(user.RoleClient))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		wa := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), tokenA)
		require.Equal(t, http.StatusCreated, wa.Code)
		wb := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 20, 2), tokenB)
		require.Equal(t, http.StatusCreated, wb.Code)

		var mine []response.BookingListResponse
		wm := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, tokenA)
		require.Equal(t, http.StatusOK, wm.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, wm.Body, &mine))
		require.Len(t, mine, 1)

		var all []response.BookingListResponse
		wl := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/all", nil, adminToken)
		require.Equal(t, http.StatusOK, wl.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, wl.Body, &all))
		require.Len(t, all, 2)
	})

	s.Run("Error case: Non-admin cannot list all bookings", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/all", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: Client cannot read someone else's booking", func() {
		t := s.T()

		carID := s.createCar(t)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleClient))
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(carID, 7, 2), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		wg := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, wg.Code)
	})
}
