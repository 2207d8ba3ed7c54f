package response

import (
	"time"

	"rentwheels/internal/usecase"
	"rentwheels/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerEmail   string    `json:"customer_email"`
	CarID           uuid.UUID `json:"car_id"`
	CarMake         string    `json:"car_make"`
	CarModel        string    `json:"car_model"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"car_id"`
	CarMake         string    `json:"car_make"`
	CarModel        string    `json:"car_model"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaymentResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
}

func FromBookingView(rm *readmodel.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListItem(rm *readmodel.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPaymentReceipt(receipt *usecase.PaymentReceipt) *PaymentResponse {
	return &PaymentResponse{
		BookingID:     receipt.BookingID,
		TransactionID: receipt.TransactionID,
		Status:        "CONFIRMED",
	}
}
