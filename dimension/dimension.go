// Package dimension provides a phantom-dimension wrapper: a generic type
// that tags a quantity.Quantity with a compile-time dimension marker, so a
// function signature like func Speed(d Length, t Time) can't accidentally
// be called with a Mass where a Length belongs. A single Typed[D Tag]
// wrapper covers every dimension; only a handful are instantiated here
// (Length, Time, Mass, Angle) as the common cases callers reach for.
package dimension

import (
	"fmt"

	"github.com/mhucka/typedunits/quantity"
	"github.com/mhucka/typedunits/unitarray"
)

// Tag identifies a physical dimension by its base units, e.g. Length's tag
// reports the base units of the meter.
type Tag interface {
	BaseUnits() unitarray.Array
}

// Typed wraps a quantity.Quantity known to carry the base units of D.
type Typed[D Tag] struct {
	Quantity quantity.Quantity
}

// New validates q against D's base units and panics if they don't match.
func New[D Tag](q quantity.Quantity) Typed[D] {
	var tag D
	if !unitarray.Equal(q.Base, tag.BaseUnits()) {
		panic(fmt.Sprintf("dimension: %q is not commensurable with %s", unitarray.Format(q.Base), unitarray.Format(tag.BaseUnits())))
	}
	return Typed[D]{Quantity: q}
}

// lengthTag, timeTag, massTag, angleTag are the demonstration dimensions.

type lengthTag struct{}

func (lengthTag) BaseUnits() unitarray.Array { return unitarray.Singleton("m") }

type timeTag struct{}

func (timeTag) BaseUnits() unitarray.Array { return unitarray.Singleton("s") }

type massTag struct{}

func (massTag) BaseUnits() unitarray.Array { return unitarray.Singleton("kg") }

type angleTag struct{}

func (angleTag) BaseUnits() unitarray.Array { return unitarray.Singleton("rad") }

// Length, Time, Mass, and Angle are the demonstration phantom dimensions.
type (
	Length = Typed[lengthTag]
	Time   = Typed[timeTag]
	Mass   = Typed[massTag]
	Angle  = Typed[angleTag]
)

// NewLength, NewTime, NewMass, and NewAngle validate q and tag it with the
// corresponding dimension.
func NewLength(q quantity.Quantity) Length { return New[lengthTag](q) }
func NewTime(q quantity.Quantity) Time     { return New[timeTag](q) }
func NewMass(q quantity.Quantity) Mass     { return New[massTag](q) }
func NewAngle(q quantity.Quantity) Angle   { return New[angleTag](q) }
