package output

import (
	"errors"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("invalid project name"),
			wantCode:    ExitUserError,
			wantMessage: "invalid project name",
		},
		{
			name:        "system error",
			err:         NewSystemError("write failed"),
			wantCode:    ExitSystemError,
			wantMessage: "write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("disk full")
	err := NewSystemErrorWithCause("writing manifest file", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
	if err.Error() != "writing manifest file" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user error", err: NewUserError("bad input"), expected: ExitUserError},
		{name: "system error", err: NewSystemError("io failed"), expected: ExitSystemError},
		{name: "untyped error", err: errors.New("anything"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
