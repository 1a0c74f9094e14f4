package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "rentings"
	EntityName = "renting"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldHotelID      = "hotel_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldEmployeeSSN  = "employee_ssn"
	FieldStatus       = "status"
	FieldTotalPrice   = "total_price"

	StatusActive    = "active"
	StatusCompleted = "completed"
)

const (
	TransformTableName  = "transforms"
	TransformEntityName = "transform"

	PaymentTableName  = "payments"
	PaymentEntityName = "payment"
	PaymentFieldID    = "id"
)

type Renting struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	HotelID      string    `db:"hotel_id"`
	RoomID       string    `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	EmployeeSSN  string    `db:"employee_ssn"`
	Status       string    `db:"status"`
	TotalPrice   *float64  `db:"total_price"`
	model.Metadata
}

// Transform records the provenance link of a booking converted to a renting.
type Transform struct {
	ID          string    `db:"id"`
	RentingID   string    `db:"renting_id"`
	BookingID   string    `db:"booking_id"`
	CheckInDate time.Time `db:"check_in_date"`
	EmployeeSSN string    `db:"employee_ssn"`
	CreatedAt   time.Time `db:"created_at"`
}

// Payment is append-only: rows are inserted, never updated or deleted.
type Payment struct {
	ID            string    `db:"id"`
	RentingID     string    `db:"renting_id"`
	Amount        float64   `db:"amount"`
	Method        string    `db:"method"`
	EmployeeSSN   string    `db:"employee_ssn"`
	ReceiptNumber string    `db:"receipt_number"`
	PaidAt        time.Time `db:"paid_at"`
}

// RentingDetail is the joined row returned by the customer listing, carrying
// the running amount_paid sum.
type RentingDetail struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	HotelID      string    `db:"hotel_id"`
	HotelName    string    `db:"hotel_name"`
	RoomID       string    `db:"room_id"`
	RoomNumber   string    `db:"room_number"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	EmployeeSSN  string    `db:"employee_ssn"`
	Status       string    `db:"status"`
	TotalPrice   *float64  `db:"total_price"`
	AmountPaid   float64   `db:"amount_paid"`
}

// PaymentDetail joins the recording employee's name onto the payment row.
type PaymentDetail struct {
	ID                string    `db:"id"`
	RentingID         string    `db:"renting_id"`
	Amount            float64   `db:"amount"`
	Method            string    `db:"method"`
	EmployeeSSN       string    `db:"employee_ssn"`
	EmployeeFirstName string    `db:"employee_first_name"`
	EmployeeLastName  string    `db:"employee_last_name"`
	ReceiptNumber     string    `db:"receipt_number"`
	PaidAt            time.Time `db:"paid_at"`
}
