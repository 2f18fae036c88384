// Package quantity implements the core of the units-of-measurement engine:
// the Quantity type (value + Scale + display/base UnitArrays), its algebra,
// and the unit-formula tokenizer/parser built on top of it. The tokenizer,
// AST, and parser live alongside the Quantity type in one flat package,
// keeping formula evaluation and the values it produces close together.
package quantity

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/mhucka/typedunits/scale"
	"github.com/mhucka/typedunits/uerr"
	"github.com/mhucka/typedunits/unitarray"
)

// Quantity is a numeric value tagged with unit information: how it was
// displayed, its reduced base dimensions, and the scale relating the two.
type Quantity struct {
	Value   complex128
	Display unitarray.Array
	Base    unitarray.Array
	Scale   scale.Scale
}

// Raw builds a Quantity directly, trusting its arguments (no validation).
func Raw(value complex128, sc scale.Scale, display, base unitarray.Array) Quantity {
	return Quantity{Value: value, Display: display, Base: base, Scale: sc}
}

// FromNumber wraps a plain number as a dimensionless Quantity.
func FromNumber(x complex128) Quantity {
	return Quantity{Value: x, Display: unitarray.Empty, Base: unitarray.Empty, Scale: scale.One()}
}

// baseMagnitude returns the quantity's value expressed in base units.
func (q Quantity) baseMagnitude() complex128 {
	return q.Value * complex(scale.Value(q.Scale), 0)
}

// IsDimensionless reports whether the quantity's base units are empty.
func (q Quantity) IsDimensionless() bool {
	return unitarray.IsEmpty(q.Base)
}

// IsCompatible reports whether q and other share the same base units.
func (q Quantity) IsCompatible(other Quantity) bool {
	return unitarray.Equal(q.Base, other.Base)
}

// Add implements a + b: requires commensurable base units. The result's
// display units are a's; both operands are scaled to a's Scale before the
// numeric addition.
func Add(a, b Quantity) (Quantity, error) {
	if !a.IsCompatible(b) {
		return Quantity{}, uerr.Mismatch("add", a.Base, b.Base)
	}
	bScaled := convertValue(b.Value, b.Scale, a.Scale)
	return Quantity{Value: a.Value + bScaled, Display: a.Display, Base: a.Base, Scale: a.Scale}, nil
}

// Sub implements a - b, with the same rules as Add.
func Sub(a, b Quantity) (Quantity, error) {
	if !a.IsCompatible(b) {
		return Quantity{}, uerr.Mismatch("subtract", a.Base, b.Base)
	}
	bScaled := convertValue(b.Value, b.Scale, a.Scale)
	return Quantity{Value: a.Value - bScaled, Display: a.Display, Base: a.Base, Scale: a.Scale}, nil
}

// Mul implements a * b: no commensurability requirement.
func Mul(a, b Quantity) Quantity {
	return Quantity{
		Value:   a.Value * b.Value,
		Display: unitarray.Multiply(a.Display, b.Display),
		Base:    unitarray.Multiply(a.Base, b.Base),
		Scale:   scale.Multiply(a.Scale, b.Scale),
	}
}

// Inverse returns 1/a.
func (q Quantity) Inverse() Quantity {
	return Quantity{
		Value:   1 / q.Value,
		Display: unitarray.Inverse(q.Display),
		Base:    unitarray.Inverse(q.Base),
		Scale:   scale.Inverse(q.Scale),
	}
}

// Div implements a / b as a * b.Inverse(). Division by zero follows
// complex128 semantics (±Inf/NaN), not an error.
func Div(a, b Quantity) Quantity {
	return Mul(a, b.Inverse())
}

// FloorDiv implements a // b: requires commensurable base units; the result
// is a dimensionless plain number, not a Quantity, matching divmod's
// quotient/remainder split (quotient is unitless, remainder keeps units).
func FloorDiv(a, b Quantity) (float64, error) {
	if !a.IsCompatible(b) {
		return 0, uerr.Mismatch("floor-divide", a.Base, b.Base)
	}
	ratio := real(a.baseMagnitude()) / real(b.baseMagnitude())
	return math.Floor(ratio), nil
}

// Mod implements a % b: requires commensurable base units; the result is a
// Quantity commensurable with both operands (expressed in a's units), per
// the original's testDivmod.
func Mod(a, b Quantity) (Quantity, error) {
	if !a.IsCompatible(b) {
		return Quantity{}, uerr.Mismatch("modulo", a.Base, b.Base)
	}
	q, err := FloorDiv(a, b)
	if err != nil {
		return Quantity{}, err
	}
	bScaled := convertValue(b.Value, b.Scale, a.Scale)
	remainder := a.Value - complex(q, 0)*bScaled
	return Quantity{Value: remainder, Display: a.Display, Base: a.Base, Scale: a.Scale}, nil
}

// Pow implements a ** (numer/denom). Fractional exponents are always legal
// at this layer; UnitArray and Scale carry no integrality constraint.
func (q Quantity) Pow(numer, denom int64) Quantity {
	r := complex(float64(numer)/float64(denom), 0)
	return Quantity{
		Value:   cmplx.Pow(q.Value, r),
		Display: unitarray.Pow(q.Display, numer, denom),
		Base:    unitarray.Pow(q.Base, numer, denom),
		Scale:   scale.Pow(q.Scale, numer, denom),
	}
}

// Equal implements a == b: dimensionless quantities compare equal to raw
// numerics of equal value; incommensurable quantities compare unequal, not
// an error. Converts b into a's scale via convertValue, which takes the
// exact rational path when both scales are rational-only, rather than
// comparing each side's independently-rounded base magnitude.
func Equal(a, b Quantity) bool {
	if !a.IsCompatible(b) {
		return false
	}
	return a.Value == convertValue(b.Value, b.Scale, a.Scale)
}

// EqualNumber reports whether a dimensionless Quantity equals a plain number.
func (q Quantity) EqualNumber(x complex128) bool {
	if !q.IsDimensionless() {
		return false
	}
	return q.baseMagnitude() == x
}

// Compare orders two commensurable quantities by their real base magnitude.
// Returns -1, 0, or 1; error if the quantities are not commensurable.
func Compare(a, b Quantity) (int, error) {
	if !a.IsCompatible(b) {
		return 0, uerr.Mismatch("compare", a.Base, b.Base)
	}
	av, bv := real(a.baseMagnitude()), real(b.baseMagnitude())
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

// InUnitsOf converts q to be expressed in target's units. target must be
// commensurable with q. When both scales are rational-only, the exact
// rational ratio is used to avoid float error.
func (q Quantity) InUnitsOf(target Quantity) (Quantity, error) {
	if !q.IsCompatible(target) {
		return Quantity{}, uerr.Mismatch("convert", q.Base, target.Base)
	}
	scaled := convertValue(q.Value, q.Scale, target.Scale)
	return Quantity{Value: scaled, Display: target.Display, Base: target.Base, Scale: target.Scale}, nil
}

// At returns q's numeric value expressed in target's units.
func (q Quantity) At(target Quantity) (complex128, error) {
	converted, err := q.InUnitsOf(target)
	if err != nil {
		return 0, err
	}
	return converted.Value, nil
}

// InBaseUnits returns an equivalent Quantity whose display units equal its
// base units and whose Scale is One().
func (q Quantity) InBaseUnits() Quantity {
	return Quantity{Value: q.baseMagnitude(), Display: q.Base, Base: q.Base, Scale: scale.One()}
}

// convertValue rescales a numeric value from "from" to "to", using an exact
// rational ratio when both scales are rational-only.
func convertValue(value complex128, from, to scale.Scale) complex128 {
	if n, d, ok := scale.RatioTo(from, to); ok {
		nf := new(big.Float).SetInt(n)
		df := new(big.Float).SetInt(d)
		ratio, _ := nf.Quo(nf, df).Float64()
		return value * complex(ratio, 0)
	}
	ratio := scale.Value(from) / scale.Value(to)
	return value * complex(ratio, 0)
}

// Hash returns a hash consistent with Equal: commensurable, equal-magnitude
// quantities hash equal, since it is derived from (magnitude in base units,
// base units) and never from display units or scale.
func (q Quantity) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v|%s", q.baseMagnitude(), unitarray.Key(q.Base))
	return h.Sum64()
}

// String renders a bare unit string when the value is 1 and display units
// are non-empty; otherwise "<value> <display_units>"; dimensionless
// quantities with empty units print just the value.
func (q Quantity) String() string {
	units := unitarray.Format(q.Display)
	if units == "" {
		return formatComplex(q.Value)
	}
	if q.Value == 1 {
		return units
	}
	return formatComplex(q.Value) + " " + units
}

// GoString renders a constructor call: Value(<numeric>, '<display_units>'),
// with the unit wrapped in single quotes to match the round-trippable
// representation used elsewhere in this ecosystem.
func (q Quantity) GoString() string {
	return fmt.Sprintf("Value(%s, '%s')", formatComplex(q.Value), unitarray.Format(q.Display))
}

// formatFloat renders f the way Python's repr does: always with a decimal
// point, so 1.0 prints as "1.0" rather than Go's default "1".
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatComplex renders v with a real-valued fast path and, for complex
// values, the "(a+bj)" notation (imaginary unit j, not Go's i).
func formatComplex(v complex128) string {
	if imag(v) == 0 {
		return formatFloat(real(v))
	}
	re := formatFloat(real(v))
	im := formatFloat(imag(v))
	sign := "+"
	if strings.HasPrefix(im, "-") {
		sign = ""
	}
	return fmt.Sprintf("(%s%s%sj)", re, sign, im)
}
