package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodge/shared/failure"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "bad request",
			err:      failure.BadRequestFromString("check_out_date must be after check_in_date"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "not found",
			err:      failure.NotFound("booking not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room is not available for the requested dates"),
			expected: http.StatusConflict,
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("invalid credentials"),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("managers only"),
			expected: http.StatusForbidden,
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("connection refused")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("something broke"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "wrapped failure keeps its code",
			err:      fmt.Errorf("converting booking: %w", failure.NotFound("employee not found")),
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetDetails(t *testing.T) {
	details := map[string]bool{
		"customerExists": true,
		"hotelExists":    false,
		"roomExists":     true,
	}

	err := failure.BadRequestWithDetails("referenced entities do not exist", details)

	got, ok := failure.GetDetails(err).(map[string]bool)
	if !ok {
		t.Fatalf("expected map details, got %T", failure.GetDetails(err))
	}

	if got["hotelExists"] {
		t.Error("expected hotelExists to be false")
	}

	if failure.GetDetails(errors.New("plain")) != nil {
		t.Error("expected nil details for a plain error")
	}
}

func TestErrorMessage(t *testing.T) {
	err := failure.NotFound("renting not found")

	if err.Error() != "renting not found" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "renting not found")
	}
}
