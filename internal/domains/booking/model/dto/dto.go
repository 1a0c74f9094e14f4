package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID   string `json:"customer_id"    validate:"required,uuid"`
	HotelID      string `json:"hotel_id"       validate:"required,uuid"`
	RoomID       string `json:"room_id"        validate:"required,uuid"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

func (c *CreateBookingRequest) ToModel(rng daterange.Range, user string) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		CustomerID:   c.CustomerID,
		HotelID:      c.HotelID,
		RoomID:       c.RoomID,
		CheckInDate:  rng.CheckIn,
		CheckOutDate: rng.CheckOut,
		BookingDate:  timezone.Now(),
		Status:       model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	HotelID      string `json:"hotel_id"`
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	BookingDate  string `json:"booking_date"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.HotelID = model.HotelID
	r.RoomID = model.RoomID
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.CalendarDateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.CalendarDateFormat)
	r.BookingDate = timezone.Format(model.BookingDate, constant.CalendarDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type CustomerBookingResponse struct {
	ID           string  `json:"id"`
	HotelID      string  `json:"hotel_id"`
	HotelName    string  `json:"hotel_name"`
	RoomID       string  `json:"room_id"`
	RoomNumber   string  `json:"room_number"`
	RoomPrice    float64 `json:"room_price"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	BookingDate  string  `json:"booking_date"`
	Status       string  `json:"status"`
}

func (r *CustomerBookingResponse) FromModel(model model.BookingDetail) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomPrice = model.RoomPrice
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.CalendarDateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.CalendarDateFormat)
	r.BookingDate = timezone.Format(model.BookingDate, constant.CalendarDateFormat)
	r.Status = model.Status
}

type GetCustomerBookingsResponse struct {
	Bookings  []CustomerBookingResponse `json:"bookings"`
	TotalData int                       `json:"total_data"`
}

func (r *GetCustomerBookingsResponse) FromModels(models []model.BookingDetail) {
	r.TotalData = len(models)

	r.Bookings = make([]CustomerBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published on stay lifecycle changes.
type BookingEvent struct {
	Type         string `json:"type"`
	BookingID    string `json:"booking_id"`
	CustomerID   string `json:"customer_id"`
	HotelID      string `json:"hotel_id"`
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	OccurredAt   string `json:"occurred_at"`
}
