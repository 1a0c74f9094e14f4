package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel/mocks"
	"lodge/permissions"
	"lodge/transport/http/middleware"
)

func TestAuth_PublicEndpointLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel(), permissions.Get(), &config.Config{})

	mux := chi.NewRouter()
	mux.Use(chiMiddleware.StripSlashes)
	mux.Use(auth.Auth)
	mux.Use(auth.RBAC)

	ok := func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}

	mux.Post("/v1/bookings", ok)
	mux.Get("/v1/employees", ok)

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
	}{
		{
			name:     "public endpoint skips auth",
			method:   http.MethodPost,
			target:   "/v1/bookings",
			wantCode: http.StatusOK,
		},
		{
			name:     "public endpoint with trailing slash skips auth",
			method:   http.MethodPost,
			target:   "/v1/bookings/",
			wantCode: http.StatusOK,
		},
		{
			name:     "protected endpoint demands a token",
			method:   http.MethodGet,
			target:   "/v1/employees",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "protected endpoint with trailing slash demands a token",
			method:   http.MethodGet,
			target:   "/v1/employees/",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
