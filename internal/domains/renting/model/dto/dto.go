package dto

import (
	customerDto "lodge/internal/domains/customer/model/dto"
	"lodge/internal/domains/renting/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
)

type ConvertBookingRequest struct {
	BookingID   string `json:"booking_id"   validate:"required,uuid"`
	EmployeeSSN string `json:"employee_ssn" validate:"omitempty,len=9,numeric"`
}

type CreateDirectRentingRequest struct {
	CustomerID   string                             `json:"customer_id"    validate:"omitempty,uuid"`
	Customer     *customerDto.CreateCustomerRequest `json:"customer"       validate:"omitempty"`
	HotelID      string                             `json:"hotel_id"       validate:"required,uuid"`
	RoomID       string                             `json:"room_id"        validate:"required,uuid"`
	CheckInDate  string                             `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string                             `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	EmployeeSSN  string                             `json:"employee_ssn"   validate:"omitempty,len=9,numeric"`
}

type RecordPaymentRequest struct {
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
	Method      string  `json:"method"       validate:"required,oneof=cash credit_card debit_card"`
	EmployeeSSN string  `json:"employee_ssn" validate:"omitempty,len=9,numeric"`
}

type RentingResponse struct {
	ID           string   `json:"id"`
	CustomerID   string   `json:"customer_id"`
	HotelID      string   `json:"hotel_id"`
	RoomID       string   `json:"room_id"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	EmployeeSSN  string   `json:"employee_ssn"`
	Status       string   `json:"status"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
	gDto.Metadata
}

func (r *RentingResponse) FromModel(model model.Renting) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.HotelID = model.HotelID
	r.RoomID = model.RoomID
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.CalendarDateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.CalendarDateFormat)
	r.EmployeeSSN = model.EmployeeSSN
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type CustomerRentingResponse struct {
	ID           string   `json:"id"`
	HotelID      string   `json:"hotel_id"`
	HotelName    string   `json:"hotel_name"`
	RoomID       string   `json:"room_id"`
	RoomNumber   string   `json:"room_number"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	Status       string   `json:"status"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
	AmountPaid   float64  `json:"amount_paid"`
}

func (r *CustomerRentingResponse) FromModel(model model.RentingDetail) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.CalendarDateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.CalendarDateFormat)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.AmountPaid = model.AmountPaid
}

type GetCustomerRentingsResponse struct {
	Rentings  []CustomerRentingResponse `json:"rentings"`
	TotalData int                       `json:"total_data"`
}

func (r *GetCustomerRentingsResponse) FromModels(models []model.RentingDetail) {
	r.TotalData = len(models)

	r.Rentings = make([]CustomerRentingResponse, len(models))
	for i, mod := range models {
		r.Rentings[i].FromModel(mod)
	}
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	RentingID     string  `json:"renting_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	EmployeeSSN   string  `json:"employee_ssn"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	ReceiptNumber string  `json:"receipt_number"`
	PaidAt        string  `json:"paid_at"`
}

func (r *PaymentResponse) FromModel(model model.PaymentDetail) {
	r.ID = model.ID
	r.RentingID = model.RentingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.EmployeeSSN = model.EmployeeSSN
	r.EmployeeName = model.EmployeeFirstName + " " + model.EmployeeLastName
	r.ReceiptNumber = model.ReceiptNumber
	r.PaidAt = model.PaidAt.Format(constant.DateFormat)
}

type GetRentingPaymentsResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	AmountPaid float64           `json:"amount_paid"`
	TotalData  int               `json:"total_data"`
}

func (r *GetRentingPaymentsResponse) FromModels(models []model.PaymentDetail) {
	r.TotalData = len(models)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
		r.AmountPaid += mod.Amount
	}
}

type RecordPaymentResponse struct {
	ID            string `json:"id"`
	ReceiptNumber string `json:"receipt_number"`
}

// RentingEvent is the payload published on renting lifecycle changes.
type RentingEvent struct {
	Type         string   `json:"type"`
	RentingID    string   `json:"renting_id"`
	BookingID    string   `json:"booking_id,omitempty"`
	CustomerID   string   `json:"customer_id"`
	HotelID      string   `json:"hotel_id"`
	RoomID       string   `json:"room_id"`
	EmployeeSSN  string   `json:"employee_ssn"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	OccurredAt   string   `json:"occurred_at"`
}
