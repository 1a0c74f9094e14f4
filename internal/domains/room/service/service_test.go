package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	s3Mocks "lodge/infras/s3/mocks"
	hotelMocks "lodge/internal/domains/hotel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/daterange"
	"lodge/shared/failure"
)

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *hotelMocks.MockHotel) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockHotelRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockHotelRepo
}

func TestRoomService_SearchAvailable(t *testing.T) {
	chainName := "Northern Lodges"

	tests := []struct {
		name      string
		req       dto.SearchAvailableRequest
		setupMock func(mockRepo *roomMocks.MockRoom)
		wantCode  int
		wantTotal int
	}{
		{
			name: "rooms found for the window",
			req: dto.SearchAvailableRequest{
				StartDate: "2026-09-01",
				EndDate:   "2026-09-04",
			},
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					SearchAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailableRoom{
						{
							ID:          "room-id-123",
							HotelID:     "hotel-id-123",
							HotelName:   "Seaside Grand",
							HotelRating: 4,
							HotelCity:   "Halifax",
							ChainName:   &chainName,
							RoomNumber:  "204",
							Price:       100.00,
						},
					}, nil)
			},
			wantTotal: 1,
		},
		{
			name: "invalid window",
			req: dto.SearchAvailableRequest{
				StartDate: "2026-09-04",
				EndDate:   "2026-09-04",
			},
			setupMock: func(mockRepo *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newRoomService(ctrl)
			tt.setupMock(mockRepo)

			result, err := svc.SearchAvailable(context.Background(), tt.req)

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

func TestRoomService_IsAvailable(t *testing.T) {
	rng := daterange.New(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
	)

	validRoom := model.Room{
		ID:      "room-id-123",
		HotelID: "hotel-id-123",
		Price:   100.00,
	}

	tests := []struct {
		name          string
		setupMock     func(mockRepo *roomMocks.MockRoom)
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "free room",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", rng).
					Return(false, nil)

				mockRepo.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", rng).
					Return(false, nil)
			},
			wantAvailable: true,
		},
		{
			name: "room not found",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "damaged room is never available",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				damaged := validRoom
				damaged.Damaged = true

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(damaged, nil)
			},
		},
		{
			name: "confirmed booking blocks",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", rng).
					Return(true, nil)
			},
		},
		{
			name: "active renting blocks",
			setupMock: func(mockRepo *roomMocks.MockRoom) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validRoom, nil)

				mockRepo.EXPECT().
					HasBookingOverlap(gomock.Any(), "room-id-123", rng).
					Return(false, nil)

				mockRepo.EXPECT().
					HasRentingOverlap(gomock.Any(), "room-id-123", rng).
					Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newRoomService(ctrl)
			tt.setupMock(mockRepo)

			available, err := svc.IsAvailable(context.Background(), "room-id-123", rng)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, available)
			}
		})
	}
}
