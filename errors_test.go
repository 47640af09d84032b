package readtext

import (
	"errors"
	"testing"
)

func TestConversionErrorUnwraps(t *testing.T) {
	e := &ConversionError{Row: 3, Column: 1, TargetType: "int64", Err: ErrOverflow}
	if !errors.Is(e, ErrOverflow) {
		t.Error("ConversionError should unwrap to its underlying sentinel")
	}
	if e.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestRaggedRowErrorMessage(t *testing.T) {
	e := &RaggedRowError{Row: 5, Expected: 3, Got: 2}
	if e.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestArgumentErrorUnwraps(t *testing.T) {
	e := &ArgumentError{Arg: "delimiter", Err: ErrInvalidChars}
	if !errors.Is(e, ErrInvalidChars) {
		t.Error("ArgumentError should unwrap to its underlying error")
	}
}
