// Package uerr defines the error kinds surfaced by the units engine:
// UnitMismatch, UnknownUnit, DuplicateUnit, ParseError, and TypeError.
// Errors are sentinel values wrapped with context so callers can use
// errors.Is against the sentinels while still getting a useful message.
package uerr

import (
	"errors"
	"fmt"

	"github.com/mhucka/typedunits/unitarray"
)

// Sentinel error kinds, checked with errors.Is.
var (
	ErrUnitMismatch  = errors.New("unit mismatch")
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrDuplicateUnit = errors.New("duplicate unit")
	ErrParse         = errors.New("parse error")
	ErrType          = errors.New("type error")
)

type wrapped struct {
	sentinel error
	msg      string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.sentinel }

// Mismatch builds a UnitMismatch error naming the two incompatible base
// unit arrays.
func Mismatch(op string, a, b unitarray.Array) error {
	return &wrapped{
		sentinel: ErrUnitMismatch,
		msg:      fmt.Sprintf("%s: incommensurable units %q and %q", op, unitarray.Format(a), unitarray.Format(b)),
	}
}

// Unknown builds an UnknownUnit error naming the unresolved symbol.
func Unknown(name string) error {
	return &wrapped{sentinel: ErrUnknownUnit, msg: fmt.Sprintf("unknown unit: %q", name)}
}

// Duplicate builds a DuplicateUnit error naming the name already registered.
func Duplicate(name string) error {
	return &wrapped{sentinel: ErrDuplicateUnit, msg: fmt.Sprintf("unit already registered: %q", name)}
}

// Parse builds a ParseError whose message is formatted from format and args;
// it unwraps to ErrParse only, not to any error passed in args.
func Parse(format string, args ...any) error {
	return &wrapped{sentinel: ErrParse, msg: fmt.Sprintf(format, args...)}
}

// Type builds a TypeError describing the unsupported value.
func Type(format string, args ...any) error {
	return &wrapped{sentinel: ErrType, msg: fmt.Sprintf(format, args...)}
}
