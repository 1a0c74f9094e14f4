package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	customerMocks "lodge/internal/domains/customer/mocks"
	"lodge/internal/domains/customer/model/dto"
	"lodge/internal/domains/customer/service"
	"lodge/shared/failure"
)

func TestCustomerService_Create(t *testing.T) {
	validReq := dto.CreateCustomerRequest{
		FirstName: "Maria",
		LastName:  "Santos",
		City:      "Toronto",
		IDType:    "passport",
		IDNumber:  "P7654321",
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *customerMocks.MockCustomer)
		wantCode  int
	}{
		{
			name: "successful registration",
			setupMock: func(mockRepo *customerMocks.MockCustomer) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate id number",
			setupMock: func(mockRepo *customerMocks.MockCustomer) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "duplicate id number raced past the pre-check",
			setupMock: func(mockRepo *customerMocks.MockCustomer) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := customerMocks.NewMockCustomer(ctrl)
			svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

			tt.setupMock(mockRepo)

			result, err := svc.Create(context.Background(), validReq)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, "Maria", result.FirstName)
			}
		})
	}
}
