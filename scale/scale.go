// Package scale implements the exact-plus-floating scale factor that
// preserves precision across unit conversions: factor * (numer/denom) *
// 10^exp10. The rational part is carried in math/big so that prefix
// products like yotta*yotta don't overflow machine words or drift under
// repeated float multiplication.
package scale

import (
	"math"
	"math/big"
)

// Scale is (Factor, Numer/Denom, Exp10). Invariant: Denom > 0,
// gcd(Numer, Denom) == 1, sign carried in Numer. A Scale is rational-only
// when Factor == 1.0.
type Scale struct {
	Factor float64
	Numer  *big.Int
	Denom  *big.Int
	Exp10  *big.Int
}

// One is the identity scale.
func One() Scale {
	return Scale{Factor: 1.0, Numer: big.NewInt(1), Denom: big.NewInt(1), Exp10: big.NewInt(0)}
}

// New builds a Scale from plain int64 ratio and exp10 components.
func New(factor float64, numer, denom, exp10 int64) Scale {
	return reduce(Scale{Factor: factor, Numer: big.NewInt(numer), Denom: big.NewInt(denom), Exp10: big.NewInt(exp10)})
}

func reduce(s Scale) Scale {
	n, d := new(big.Int).Set(s.Numer), new(big.Int).Set(s.Denom)
	if d.Sign() == 0 {
		panic("scale: zero denominator")
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Scale{Factor: s.Factor, Numer: n, Denom: d, Exp10: new(big.Int).Set(s.Exp10)}
}

// IsRationalOnly reports whether Factor is exactly 1.0.
func (s Scale) IsRationalOnly() bool {
	return s.Factor == 1.0
}

// Multiply returns s*t.
func Multiply(s, t Scale) Scale {
	return reduce(Scale{
		Factor: s.Factor * t.Factor,
		Numer:  new(big.Int).Mul(s.Numer, t.Numer),
		Denom:  new(big.Int).Mul(s.Denom, t.Denom),
		Exp10:  new(big.Int).Add(s.Exp10, t.Exp10),
	})
}

// Inverse returns 1/s.
func Inverse(s Scale) Scale {
	factor := s.Factor
	if factor != 1.0 {
		factor = 1.0 / factor
	}
	numer := new(big.Int).Set(s.Numer)
	denom := new(big.Int).Set(s.Denom)
	if numer.Sign() < 0 {
		numer.Neg(numer)
		denom.Neg(denom)
	}
	return reduce(Scale{Factor: factor, Numer: denom, Denom: numer, Exp10: new(big.Int).Neg(s.Exp10)})
}

// exactNthRoot returns x^(1/n) if it is an exact integer, and true;
// otherwise it returns (nil, false). n must be positive.
func exactNthRoot(x *big.Int, n int64) (*big.Int, bool) {
	if x.Sign() == 0 {
		return big.NewInt(0), true
	}
	neg := x.Sign() < 0
	abs := new(big.Int).Abs(x)
	if neg && n%2 == 0 {
		return nil, false
	}

	// Newton's method on big.Int, then verify exactly.
	guess := new(big.Int).Set(abs)
	if guess.Sign() == 0 {
		return big.NewInt(0), true
	}
	one := big.NewInt(1)
	bigN := big.NewInt(n)
	for i := 0; i < 256; i++ {
		// guess' = ((n-1)*guess + abs/guess^(n-1)) / n
		pow := new(big.Int).Exp(guess, big.NewInt(n-1), nil)
		if pow.Sign() == 0 {
			break
		}
		term := new(big.Int).Quo(abs, pow)
		next := new(big.Int).Mul(guess, big.NewInt(n-1))
		next.Add(next, term)
		next.Quo(next, bigN)
		if next.Cmp(guess) == 0 || new(big.Int).Sub(next, guess).CmpAbs(one) == 0 {
			guess = next
			break
		}
		guess = next
	}
	// Search a tiny neighborhood for the exact root (Newton's method may
	// land off-by-one for integer arithmetic).
	for d := int64(-2); d <= 2; d++ {
		cand := new(big.Int).Add(guess, big.NewInt(d))
		if cand.Sign() < 0 {
			continue
		}
		if new(big.Int).Exp(cand, bigN, nil).Cmp(abs) == 0 {
			if neg {
				cand.Neg(cand)
			}
			return cand, true
		}
	}
	return nil, false
}

// Pow returns s^r where r = pNumer/pDenom. If s is rational-only and the
// numer/denom each have an exact qth root and exp10*r is an integer, the
// result is computed exactly; otherwise it falls back to a pure float
// Scale carrying the whole value in Factor.
func Pow(s Scale, pNumer, pDenom int64) Scale {
	if pDenom == 0 {
		panic("scale: zero exponent denominator")
	}
	if pNumer == 0 {
		return One()
	}

	if s.IsRationalOnly() {
		base := s
		if pNumer < 0 {
			base = Inverse(s)
			pNumer = -pNumer
		}

		numerRoot, ok1 := exactNthRoot(base.Numer, pDenom)
		denomRoot, ok2 := exactNthRoot(base.Denom, pDenom)

		exp10Val := new(big.Int).Mul(base.Exp10, big.NewInt(pNumer))
		exp10Div := big.NewInt(pDenom)
		exp10Quot, exp10Rem := new(big.Int).QuoRem(exp10Val, exp10Div, new(big.Int))

		if ok1 && ok2 && exp10Rem.Sign() == 0 {
			return reduce(Scale{
				Factor: 1.0,
				Numer:  new(big.Int).Exp(numerRoot, big.NewInt(pNumer), nil),
				Denom:  new(big.Int).Exp(denomRoot, big.NewInt(pNumer), nil),
				Exp10:  exp10Quot,
			})
		}
	}

	v := Value(s)
	r := float64(pNumer) / float64(pDenom)
	return Scale{Factor: math.Pow(v, r), Numer: big.NewInt(1), Denom: big.NewInt(1), Exp10: big.NewInt(0)}
}

// Value returns factor * numer/denom * 10^exp10 as a float64.
func Value(s Scale) float64 {
	ratio := new(big.Float).Quo(new(big.Float).SetInt(s.Numer), new(big.Float).SetInt(s.Denom))
	ten := new(big.Float).SetFloat64(10)
	pow := new(big.Float).SetInt64(1)
	exp := s.Exp10.Int64()
	if exp >= 0 {
		for i := int64(0); i < exp; i++ {
			pow.Mul(pow, ten)
		}
	} else {
		for i := int64(0); i < -exp; i++ {
			pow.Quo(pow, ten)
		}
	}
	ratio.Mul(ratio, pow)
	f, _ := ratio.Float64()
	return s.Factor * f
}

// RatioTo returns s/t as an exact rational (numer, denom) when both s and t
// are rational-only; ok is false otherwise, in which case the caller should
// fall back to Value(s)/Value(t).
func RatioTo(s, t Scale) (numer, denom *big.Int, ok bool) {
	if !s.IsRationalOnly() || !t.IsRationalOnly() {
		return nil, nil, false
	}
	inv := Inverse(t)
	combined := Multiply(s, inv)

	// Fold exp10 into numer/denom as an exact power of ten.
	n := new(big.Int).Set(combined.Numer)
	d := new(big.Int).Set(combined.Denom)
	exp := combined.Exp10.Int64()
	ten := big.NewInt(10)
	if exp > 0 {
		n.Mul(n, new(big.Int).Exp(ten, big.NewInt(exp), nil))
	} else if exp < 0 {
		d.Mul(d, new(big.Int).Exp(ten, big.NewInt(-exp), nil))
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return n, d, true
}

// Equal reports whether s and t represent the same value. When both are
// rational-only, this is an exact comparison; otherwise it compares the
// float64 Value.
func Equal(s, t Scale) bool {
	if n, d, ok := RatioTo(s, t); ok {
		return n.Cmp(d) == 0
	}
	return Value(s) == Value(t)
}
