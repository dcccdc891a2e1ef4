package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ehotel/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	err := failure.BadRequest(errors.New("validation failed"))

	var fail *failure.Failure
	if !errors.As(err, &fail) {
		t.Fatal("expected a Failure")
	}

	if fail.Code != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, fail.Code)
	}

	if failure.BadRequest(nil) != nil {
		t.Error("expected nil error to stay nil")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("hotel not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("customer already exists"),
			code: http.StatusConflict,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}

	wrapped := fmt.Errorf("outer: %w", failure.NotFound("room not found"))
	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure code to survive, got %d", got)
	}
}
