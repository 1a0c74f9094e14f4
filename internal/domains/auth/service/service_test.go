package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/jwt"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	employeeMocks "lodge/internal/domains/employee/mocks"
	employeeModel "lodge/internal/domains/employee/model"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockEmployeeRepo, cfg, mockOtel, mockJWT)

	validEmployee := employeeModel.Employee{
		SSN:       "123456789",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Role:      constant.RoleReceptionist,
		HotelID:   "hotel-id-123",
		Password:  "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				SSN:      "123456789",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validEmployee, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validEmployee.SSN, validEmployee.Role, validEmployee.HotelID).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown ssn",
			req: dto.LoginRequest{
				SSN:      "999999999",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, errors.New("employee not found"))
			},
			wantErr: true,
		},
		{
			name: "employee row missing",
			req: dto.LoginRequest{
				SSN:      "999999999",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				SSN:      "123456789",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validEmployee, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				SSN:      "123456789",
				Password: "password",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validEmployee, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validEmployee.SSN, validEmployee.Role, validEmployee.HotelID).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockEmployeeRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RefreshToken(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}
