package errors

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNoWitness, "source %s has no witness", "(1,2)")

	if err.Code != ErrCodeNoWitness {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNoWitness)
	}

	if err.Message != "source (1,2) has no witness" {
		t.Errorf("Message = %v, want %v", err.Message, "source (1,2) has no witness")
	}

	expected := "NO_WITNESS: source (1,2) has no witness"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidInput, cause, "failed to read")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_INPUT: failed to read: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeGapNotFound, "test"),
			code:     ErrCodeGapNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeGapNotFound, "test"),
			code:     ErrCodeNoWitness,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidRadius, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("search: %w", New(ErrCodeGapNotFound, "inner")),
			code:     ErrCodeGapNotFound,
			expected: true,
		},
		{
			name:     "record error",
			err:      &RecordError{Line: 3, Text: "junk"},
			code:     ErrCodeInvalidRecord,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidQuery, "test"),
			expected: ErrCodeInvalidQuery,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRecordError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		_, cause := strconv.ParseInt("x", 10, 64)
		err := &RecordError{Line: 4, Text: "Sensor at x=x", Err: cause}
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Error("RecordError should unwrap to the parse failure")
		}
	})

	t.Run("without cause", func(t *testing.T) {
		err := &RecordError{Line: 2, Text: "junk"}
		expected := `line 2: invalid record "junk"`
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &RecordError{}
		if err.Code() != ErrCodeInvalidRecord {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeInvalidRecord)
		}
	})
}
