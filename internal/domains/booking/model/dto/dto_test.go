package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/shared/daterange"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		CustomerID:   "customer-id-123",
		HotelID:      "hotel-id-123",
		RoomID:       "room-id-123",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	rng, err := daterange.Parse(req.CheckInDate, req.CheckOutDate)
	assert.NoError(t, err)

	booking := req.ToModel(rng, "123456789")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, req.CustomerID, booking.CustomerID)
	assert.Equal(t, req.HotelID, booking.HotelID)
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, rng.CheckIn, booking.CheckInDate)
	assert.Equal(t, rng.CheckOut, booking.CheckOutDate)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, "123456789", booking.CreatedBy)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:           "booking-id-123",
		CustomerID:   "customer-id-123",
		HotelID:      "hotel-id-123",
		RoomID:       "room-id-123",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		BookingDate:  time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
		Status:       model.StatusConfirmed,
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, "2026-09-01", response.CheckInDate)
	assert.Equal(t, "2026-09-04", response.CheckOutDate)
	assert.Equal(t, "2026-08-28", response.BookingDate)
	assert.Equal(t, model.StatusConfirmed, response.Status)
}

func TestGetCustomerBookingsResponse_FromModels(t *testing.T) {
	details := []model.BookingDetail{
		{
			ID:         "booking-1",
			HotelName:  "Seaside Grand",
			RoomNumber: "204",
			RoomPrice:  100.00,
			Status:     model.StatusConfirmed,
		},
		{
			ID:         "booking-2",
			HotelName:  "Seaside Grand",
			RoomNumber: "305",
			RoomPrice:  150.00,
			Status:     model.StatusCancelled,
		},
	}

	var response dto.GetCustomerBookingsResponse
	response.FromModels(details)

	assert.Equal(t, 2, response.TotalData)
	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "204", response.Bookings[0].RoomNumber)
	assert.InDelta(t, 150.00, response.Bookings[1].RoomPrice, 0.001)
}
