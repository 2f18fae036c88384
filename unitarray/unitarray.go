// Package unitarray implements the canonical multiset of (base-unit-name,
// rational-exponent) pairs used to tag a Quantity's display and base units.
// The set of names is open-ended, so the array is a sorted slice of Term
// rather than a fixed-size exponent vector.
package unitarray

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Term is one (name, exponent) entry. Exponent is numer/denom, reduced to
// lowest terms with denom > 0.
type Term struct {
	Name  string
	Numer int64
	Denom int64
}

// Array is a canonical UnitArray: non-zero terms, sorted by Name, each
// exponent reduced to lowest terms.
type Array []Term

// gcd returns the greatest common divisor of the absolute values of a and b.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func reduce(numer, denom int64) (int64, int64) {
	if denom < 0 {
		numer, denom = -numer, -denom
	}
	g := gcd(numer, denom)
	return numer / g, denom / g
}

// Empty is the dimensionless UnitArray.
var Empty = Array(nil)

// Singleton returns the UnitArray {name: 1}.
func Singleton(name string) Array {
	return Array{{Name: name, Numer: 1, Denom: 1}}
}

// New builds a canonical Array from raw terms, dropping zero exponents,
// reducing fractions, and merging duplicate names by summing exponents.
func New(terms ...Term) Array {
	acc := map[string][2]int64{}
	order := []string{}
	for _, t := range terms {
		if t.Denom == 0 {
			panic("unitarray: zero denominator")
		}
		n, d := reduce(t.Numer, t.Denom)
		cur, ok := acc[t.Name]
		if !ok {
			order = append(order, t.Name)
			cur = [2]int64{0, 1}
		}
		// cur[0]/cur[1] + n/d
		num := cur[0]*d + n*cur[1]
		den := cur[1] * d
		num, den = reduce(num, den)
		acc[t.Name] = [2]int64{num, den}
	}
	sort.Strings(order)
	out := make(Array, 0, len(order))
	for _, name := range order {
		v := acc[name]
		if v[0] == 0 {
			continue
		}
		out = append(out, Term{Name: name, Numer: v[0], Denom: v[1]})
	}
	return out
}

// Multiply sums the exponents per name, dropping zero entries.
func Multiply(a, b Array) Array {
	terms := make([]Term, 0, len(a)+len(b))
	terms = append(terms, a...)
	terms = append(terms, b...)
	return New(terms...)
}

// Inverse negates every exponent.
func Inverse(a Array) Array {
	out := make(Array, len(a))
	for i, t := range a {
		out[i] = Term{Name: t.Name, Numer: -t.Numer, Denom: t.Denom}
	}
	return out
}

// Pow scales every exponent by r = rNumer/rDenom, dropping zero entries.
// Raising to exponent 0 yields Empty for any non-zero rDenom; rDenom == 0
// panics.
func Pow(a Array, rNumer, rDenom int64) Array {
	if rDenom == 0 {
		panic("unitarray: zero exponent denominator")
	}
	if rNumer == 0 {
		return Empty
	}
	terms := make([]Term, len(a))
	for i, t := range a {
		terms[i] = Term{Name: t.Name, Numer: t.Numer * rNumer, Denom: t.Denom * rDenom}
	}
	return New(terms...)
}

// Equal reports whether a and b contain the same non-zero exponents.
func Equal(a, b Array) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether a is the dimensionless array.
func IsEmpty(a Array) bool {
	return len(a) == 0
}

// Key returns a stable string suitable for use as a map key or hash input.
func Key(a Array) string {
	var sb strings.Builder
	for i, t := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.Name)
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(t.Numer, 10))
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatInt(t.Denom, 10))
	}
	return sb.String()
}

// Format renders the canonical display string: positive-exponent factors
// first, joined by "*", then negative factors after "/". Integral exponents
// print as plain integers; fractional exponents print as "^(n/d)".
func Format(a Array) string {
	if len(a) == 0 {
		return ""
	}

	var pos, neg []string
	for _, t := range a {
		if t.Numer > 0 {
			pos = append(pos, formatTerm(t.Name, t.Numer, t.Denom))
		} else {
			neg = append(neg, formatTerm(t.Name, -t.Numer, t.Denom))
		}
	}

	var sb strings.Builder
	if len(pos) == 0 {
		sb.WriteString("1")
	} else {
		sb.WriteString(strings.Join(pos, "*"))
	}
	if len(neg) > 0 {
		sb.WriteString("/")
		sb.WriteString(strings.Join(neg, "/"))
	}
	return sb.String()
}

func formatTerm(name string, numer, denom int64) string {
	if denom == 1 {
		if numer == 1 {
			return name
		}
		return fmt.Sprintf("%s^%d", name, numer)
	}
	return fmt.Sprintf("%s^(%d/%d)", name, numer, denom)
}
