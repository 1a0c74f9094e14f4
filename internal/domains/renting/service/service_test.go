package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	customerMocks "lodge/internal/domains/customer/mocks"
	customerDto "lodge/internal/domains/customer/model/dto"
	employeeMocks "lodge/internal/domains/employee/mocks"
	hotelMocks "lodge/internal/domains/hotel/mocks"
	rentingMocks "lodge/internal/domains/renting/mocks"
	"lodge/internal/domains/renting/model"
	"lodge/internal/domains/renting/model/dto"
	"lodge/internal/domains/renting/repository"
	"lodge/internal/domains/renting/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type rentingMockSet struct {
	repo     *rentingMocks.MockRenting
	booking  *bookingMocks.MockBooking
	customer *customerMocks.MockCustomer
	hotel    *hotelMocks.MockHotel
	room     *roomMocks.MockRoom
	employee *employeeMocks.MockEmployee
}

func newRentingService(ctrl *gomock.Controller) (service.Renting, rentingMockSet) {
	m := rentingMockSet{
		repo:     rentingMocks.NewMockRenting(ctrl),
		booking:  bookingMocks.NewMockBooking(ctrl),
		customer: customerMocks.NewMockCustomer(ctrl),
		hotel:    hotelMocks.NewMockHotel(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		employee: employeeMocks.NewMockEmployee(ctrl),
	}

	cfg := &config.Config{}
	kafkaClient := kafka.New(cfg)

	svc := service.New(m.repo, m.booking, m.customer, m.hotel, m.room, m.employee, kafkaClient, cfg, mocks.NewOtel())

	return svc, m
}

func TestRentingService_ConvertFromBooking(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	confirmedBooking := bookingModel.Booking{
		ID:           "booking-id-123",
		CustomerID:   "customer-id-123",
		HotelID:      "hotel-id-123",
		RoomID:       "room-id-123",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       bookingModel.StatusConfirmed,
	}

	validRoom := roomModel.Room{
		ID:      "room-id-123",
		HotelID: "hotel-id-123",
		Price:   100.00,
	}

	validReq := dto.ConvertBookingRequest{
		BookingID:   "booking-id-123",
		EmployeeSSN: "123456789",
	}

	tests := []struct {
		name      string
		req       dto.ConvertBookingRequest
		setupMock func(m rentingMockSet)
		wantCode  int
	}{
		{
			name: "successful conversion",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					ConvertFromBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown employee",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking not found",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking not confirmed",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				cancelled := confirmedBooking
				cancelled.Status = bookingModel.StatusCancelled

				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "referenced entities missing",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlapping active renting",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "booking converted concurrently",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					ConvertFromBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrBookingNotConfirmed)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRentingService(ctrl)
			tt.setupMock(m)

			result, err := svc.ConvertFromBooking(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusActive, result.Status)
				assert.Equal(t, "123456789", result.EmployeeSSN)

				if assert.NotNil(t, result.TotalPrice) {
					assert.InDelta(t, 300.00, *result.TotalPrice, 0.001)
				}
			}
		})
	}
}

func TestRentingService_CreateDirect(t *testing.T) {
	validRoom := roomModel.Room{
		ID:      "room-id-123",
		HotelID: "hotel-id-123",
		Price:   150.00,
	}

	validReq := dto.CreateDirectRentingRequest{
		CustomerID:   "customer-id-123",
		HotelID:      "hotel-id-123",
		RoomID:       "room-id-123",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
		EmployeeSSN:  "123456789",
	}

	tests := []struct {
		name      string
		req       dto.CreateDirectRentingRequest
		setupMock func(m rentingMockSet)
		wantCode  int
	}{
		{
			name: "successful direct renting",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.room.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					CreateDirect(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(nil)
			},
		},
		{
			name: "inline customer created in the same transaction",
			req: dto.CreateDirectRentingRequest{
				Customer: &customerDto.CreateCustomerRequest{
					FirstName: "Walk",
					LastName:  "In",
					IDType:    "passport",
					IDNumber:  "P1234567",
				},
				HotelID:      "hotel-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-03",
				EmployeeSSN:  "123456789",
			},
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.room.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					CreateDirect(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
					Return(nil)
			},
		},
		{
			name: "neither customer_id nor customer",
			req: dto.CreateDirectRentingRequest{
				HotelID:      "hotel-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-03",
				EmployeeSSN:  "123456789",
			},
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "damaged room",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				damaged := validRoom
				damaged.Damaged = true

				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(damaged, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "overlapping confirmed booking",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room taken while inserting",
			req:  validReq,
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.customer.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.hotel.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				m.room.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.room.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					CreateDirect(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(repository.ErrRoomUnavailable)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRentingService(ctrl)
			tt.setupMock(m)

			result, err := svc.CreateDirect(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusActive, result.Status)

				if assert.NotNil(t, result.TotalPrice) {
					assert.InDelta(t, 300.00, *result.TotalPrice, 0.001)
				}
			}
		})
	}
}

func TestRentingService_Complete(t *testing.T) {
	activeRenting := model.Renting{
		ID:     "renting-id-123",
		Status: model.StatusActive,
	}

	tests := []struct {
		name        string
		setupMock   func(m rentingMockSet)
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful completion",
			setupMock: func(m rentingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRenting, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantMessage: "Renting completed successfully",
		},
		{
			name: "renting not found",
			setupMock: func(m rentingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Renting{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already completed is a no-op",
			setupMock: func(m rentingMockSet) {
				completed := activeRenting
				completed.Status = model.StatusCompleted

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantMessage: "Renting already completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRentingService(ctrl)
			tt.setupMock(m)

			message, err := svc.Complete(context.Background(), "renting-id-123")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMessage, message)
			}
		})
	}
}

func TestRentingService_RecordPayment(t *testing.T) {
	activeRenting := model.Renting{
		ID:     "renting-id-123",
		Status: model.StatusActive,
	}

	validReq := dto.RecordPaymentRequest{
		Amount:      120.50,
		Method:      "cash",
		EmployeeSSN: "123456789",
	}

	tests := []struct {
		name      string
		setupMock func(m rentingMockSet)
		wantCode  int
	}{
		{
			name: "successful payment",
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRenting, nil)

				m.repo.EXPECT().
					InsertPayment(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown employee",
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "renting not found",
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Renting{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "insert error",
			setupMock: func(m rentingMockSet) {
				m.employee.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRenting, nil)

				m.repo.EXPECT().
					InsertPayment(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRentingService(ctrl)
			tt.setupMock(m)

			result, err := svc.RecordPayment(context.Background(), validReq, "renting-id-123")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.True(t, strings.HasPrefix(result.ReceiptNumber, "RCPT-"))
			}
		})
	}
}

func TestRentingService_ListPayments(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m rentingMockSet)
		wantCode  int
		wantPaid  float64
	}{
		{
			name: "running sum over payments",
			setupMock: func(m rentingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					ListPaymentsByRenting(gomock.Any(), "renting-id-123").
					Return([]model.PaymentDetail{
						{ID: "payment-1", Amount: 100.00, Method: "cash", PaidAt: timezone.Now()},
						{ID: "payment-2", Amount: 50.25, Method: "credit_card", PaidAt: timezone.Now()},
					}, nil)
			},
			wantPaid: 150.25,
		},
		{
			name: "renting not found",
			setupMock: func(m rentingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newRentingService(ctrl)
			tt.setupMock(m)

			result, err := svc.ListPayments(context.Background(), "renting-id-123")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 2, result.TotalData)
				assert.InDelta(t, tt.wantPaid, result.AmountPaid, 0.001)
			}
		})
	}
}
