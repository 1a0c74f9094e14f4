package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	"lodge/internal/domains/booking/service"
	customerMocks "lodge/internal/domains/customer/mocks"
	hotelMocks "lodge/internal/domains/hotel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	kafkaClient := kafka.New(cfg)

	svc := service.New(mockRepo, mockCustomerRepo, mockHotelRepo, mockRoomRepo, kafkaClient, cfg, mockOtel)

	validRoom := roomModel.Room{
		ID:      "room-id-123",
		HotelID: "hotel-id-123",
		Price:   100.00,
	}

	validReq := dto.CreateBookingRequest{
		CustomerID:   "customer-id-123",
		HotelID:      "hotel-id-123",
		RoomID:       "room-id-123",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRoomRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				mockRoomRepo.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertChecked(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-id-123",
				HotelID:      "hotel-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-04",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "referenced entities missing",
			req:  validReq,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "damaged room",
			req:  validReq,
			setupMock: func() {
				damagedRoom := validRoom
				damagedRoom.Damaged = true

				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(damagedRoom, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "overlapping confirmed booking",
			req:  validReq,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRoomRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "overlapping active renting",
			req:  validReq,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRoomRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				mockRoomRepo.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room taken while inserting",
			req:  validReq,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRoomRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				mockRoomRepo.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertChecked(gomock.Any(), gomock.Any()).
					Return(repository.ErrRoomUnavailable)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Create(ctx, tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusConfirmed, result.Status)
				assert.Equal(t, "2026-09-01", result.CheckInDate)
				assert.Equal(t, "2026-09-04", result.CheckOutDate)
			}
		})
	}
}

func TestBookingService_Create_MissingReferenceDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	kafkaClient := kafka.New(cfg)

	svc := service.New(mockRepo, mockCustomerRepo, mockHotelRepo, mockRoomRepo, kafkaClient, cfg, mockOtel)

	mockCustomerRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockHotelRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{}, nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		CustomerID:   "customer-id-123",
		HotelID:      "hotel-id-123",
		RoomID:       "room-id-123",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	details, ok := failure.GetDetails(err).(map[string]bool)
	assert.True(t, ok)
	assert.False(t, details["customerExists"])
	assert.True(t, details["hotelExists"])
	assert.False(t, details["roomExists"])
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	kafkaClient := kafka.New(cfg)

	svc := service.New(mockRepo, mockCustomerRepo, mockHotelRepo, mockRoomRepo, kafkaClient, cfg, mockOtel)

	confirmedBooking := model.Booking{
		ID:          "booking-id-123",
		CustomerID:  "customer-id-123",
		HotelID:     "hotel-id-123",
		RoomID:      "room-id-123",
		Status:      model.StatusConfirmed,
		BookingDate: timezone.Now(),
	}

	tests := []struct {
		name        string
		setupMock   func()
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful cancel",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantMessage: "Booking cancelled successfully",
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already cancelled is a no-op",
			setupMock: func() {
				cancelled := confirmedBooking
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantMessage: "Booking already cancelled",
		},
		{
			name: "already completed is a no-op",
			setupMock: func() {
				completed := confirmedBooking
				completed.Status = model.StatusCompleted

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantMessage: "Booking already completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			message, err := svc.Cancel(context.Background(), "booking-id-123")

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

func TestBookingService_ListByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	kafkaClient := kafka.New(cfg)

	svc := service.New(mockRepo, mockCustomerRepo, mockHotelRepo, mockRoomRepo, kafkaClient, cfg, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantTotal int
	}{
		{
			name: "successful list",
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ListByCustomer(gomock.Any(), "customer-id-123").
					Return([]model.BookingDetail{
						{
							ID:         "booking-id-123",
							Status:     model.StatusConfirmed,
							HotelName:  "Seaside Grand",
							RoomNumber: "204",
						},
					}, nil)
			},
			wantTotal: 1,
		},
		{
			name: "customer not found",
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.ListByCustomer(context.Background(), "customer-id-123")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
