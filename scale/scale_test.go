package scale

import (
	"math/big"
	"testing"
)

func TestMultiplyExact(t *testing.T) {
	kilo := New(1.0, 1, 1, 3) // 10^3
	mega := New(1.0, 1, 1, 6) // 10^6
	got := Multiply(kilo, mega)
	want := New(1.0, 1, 1, 9)
	if !Equal(got, want) {
		t.Errorf("kilo*mega = %+v, want 10^9", got)
	}
}

func TestPrefixExactness(t *testing.T) {
	// 1 kilogram == 1000 gram exactly: kg has exp10 0, g = kg*10^-3.
	kg := One()
	g := New(1.0, 1, 1, -3)
	ratio := Multiply(g, New(1.0, 1000, 1, 0))
	if !Equal(ratio, kg) {
		t.Errorf("1000*gram scale should equal kilogram scale exactly")
	}
}

func TestPowExactSqrt(t *testing.T) {
	// (mm^2)^0.5 -> mm, exactly, no float drift: mm's scale is 10^-3, so
	// mm^2's scale (via Multiply) is 10^-6.
	mm := New(1.0, 1, 1, -3)
	mmSquared := Multiply(mm, mm)
	got := Pow(mmSquared, 1, 2)
	if !Equal(got, mm) {
		t.Errorf("sqrt(mm^2) = %+v, want mm scale %+v", got, mm)
	}
}

func TestPowFallsBackToFloat(t *testing.T) {
	s := New(1.0, 2, 1, 0) // sqrt(2) is irrational
	got := Pow(s, 1, 2)
	if got.IsRationalOnly() && got.Numer.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("expected float fallback for irrational sqrt")
	}
	want := 1.4142135623730951
	if v := Value(got); v < want-1e-9 || v > want+1e-9 {
		t.Errorf("Pow(2, 1/2) = %v, want ~%v", v, want)
	}
}

func TestInverse(t *testing.T) {
	s := New(1.0, 3, 7, 2)
	inv := Inverse(s)
	got := Multiply(s, inv)
	if !Equal(got, One()) {
		t.Errorf("s * (1/s) = %+v, want One()", got)
	}
}

func TestRatioToExact(t *testing.T) {
	km := New(1.0, 1, 1, 3)
	m := One()
	n, d, ok := RatioTo(km, m)
	if !ok {
		t.Fatalf("expected exact ratio")
	}
	if n.Cmp(big.NewInt(1000)) != 0 || d.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("km/m ratio = %v/%v, want 1000/1", n, d)
	}
}

func TestFactorFallback(t *testing.T) {
	inch := New(0.0254, 1, 1, 0)
	meter := One()
	_, _, ok := RatioTo(inch, meter)
	if ok {
		t.Errorf("expected RatioTo to report not-exact when a factor is present")
	}
}
