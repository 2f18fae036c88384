package uerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mhucka/typedunits/uerr"
	"github.com/mhucka/typedunits/unitarray"
)

func TestMismatchIsErrUnitMismatch(t *testing.T) {
	err := uerr.Mismatch("add", unitarray.Singleton("m"), unitarray.Singleton("s"))
	if !errors.Is(err, uerr.ErrUnitMismatch) {
		t.Fatalf("errors.Is(%v, ErrUnitMismatch) = false, want true", err)
	}
	if errors.Is(err, uerr.ErrUnknownUnit) {
		t.Fatalf("%v should not match ErrUnknownUnit", err)
	}
}

func TestUnknownIsErrUnknownUnit(t *testing.T) {
	err := uerr.Unknown("furlong")
	if !errors.Is(err, uerr.ErrUnknownUnit) {
		t.Fatalf("errors.Is(%v, ErrUnknownUnit) = false, want true", err)
	}
}

func TestDuplicateIsErrDuplicateUnit(t *testing.T) {
	err := uerr.Duplicate("kg")
	if !errors.Is(err, uerr.ErrDuplicateUnit) {
		t.Fatalf("errors.Is(%v, ErrDuplicateUnit) = false, want true", err)
	}
}

func TestParseIsErrParse(t *testing.T) {
	err := uerr.Parse("unexpected token %q", "+")
	if !errors.Is(err, uerr.ErrParse) {
		t.Fatalf("errors.Is(%v, ErrParse) = false, want true", err)
	}
}

func TestTypeIsErrType(t *testing.T) {
	err := uerr.Type("unsupported unit operand %T", 3.14)
	if !errors.Is(err, uerr.ErrType) {
		t.Fatalf("errors.Is(%v, ErrType) = false, want true", err)
	}
}

func TestErrorMessagesIncludeContext(t *testing.T) {
	err := uerr.Unknown("furlong")
	if got := err.Error(); got == "" {
		t.Fatal("expected non-empty error message")
	}
	if got := err.Error(); !strings.Contains(got, "furlong") {
		t.Fatalf("Error() = %q, want it to name the unit %q", got, "furlong")
	}
	var target error = uerr.ErrUnknownUnit
	if errors.Unwrap(err).Error() != target.Error() {
		t.Fatalf("Unwrap() = %q, want %q", errors.Unwrap(err), target)
	}
}
