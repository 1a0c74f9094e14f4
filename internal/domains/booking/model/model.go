package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldHotelID      = "hotel_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldBookingDate  = "booking_date"
	FieldStatus       = "status"

	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	HotelID      string    `db:"hotel_id"`
	RoomID       string    `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	BookingDate  time.Time `db:"booking_date"`
	Status       string    `db:"status"`
	model.Metadata
}

// BookingDetail is the joined row returned by the customer listing.
type BookingDetail struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	HotelID      string    `db:"hotel_id"`
	HotelName    string    `db:"hotel_name"`
	RoomID       string    `db:"room_id"`
	RoomNumber   string    `db:"room_number"`
	RoomPrice    float64   `db:"room_price"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	BookingDate  time.Time `db:"booking_date"`
	Status       string    `db:"status"`
}
