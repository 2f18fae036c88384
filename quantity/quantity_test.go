package quantity

import (
	"math"
	"testing"

	"github.com/mhucka/typedunits/scale"
	"github.com/mhucka/typedunits/unitarray"
)

func meters(value complex128) Quantity {
	ua := unitarray.Singleton("m")
	return Raw(value, scale.One(), ua, ua)
}

func seconds(value complex128) Quantity {
	ua := unitarray.Singleton("s")
	return Raw(value, scale.One(), ua, ua)
}

func kilometers(value complex128) Quantity {
	ua := unitarray.Singleton("km")
	base := unitarray.Singleton("m")
	return Raw(value, scale.New(1, 1, 1, 3), ua, base)
}

func TestAddRequiresCommensurability(t *testing.T) {
	_, err := Add(meters(1), seconds(1))
	if err == nil {
		t.Fatal("expected an error adding meters to seconds")
	}
}

func TestAddConvertsScale(t *testing.T) {
	got, err := Add(meters(1), kilometers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != 1001 {
		t.Fatalf("1 m + 1 km = %v, want 1001", got.Value)
	}
}

func TestMulCombinesUnits(t *testing.T) {
	area := Mul(meters(2), meters(3))
	if area.Value != 6 {
		t.Fatalf("2m * 3m = %v, want 6", area.Value)
	}
	want := unitarray.New(unitarray.Term{Name: "m", Numer: 2, Denom: 1})
	if !unitarray.Equal(area.Base, want) {
		t.Fatalf("2m * 3m has base %v, want %v", area.Base, want)
	}
}

func TestDivIsMulByInverse(t *testing.T) {
	speed := Div(meters(10), seconds(2))
	if speed.Value != 5 {
		t.Fatalf("10m / 2s = %v, want 5", speed.Value)
	}
}

func TestEqualIsFalseForIncommensurable(t *testing.T) {
	if Equal(meters(1), seconds(1)) {
		t.Fatal("meters and seconds should never compare equal")
	}
}

func TestEqualComparesBaseMagnitude(t *testing.T) {
	if !Equal(meters(1000), kilometers(1)) {
		t.Fatal("1000 m should equal 1 km")
	}
}

func TestFloorDivReturnsPlainNumber(t *testing.T) {
	q, err := FloorDiv(meters(7), meters(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != 3 {
		t.Fatalf("7m // 2m = %v, want 3", q)
	}
}

func TestModReturnsQuantity(t *testing.T) {
	rem, err := Mod(meters(7), meters(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rem.Value != 1 {
		t.Fatalf("7m %% 2m = %v, want 1 m", rem.Value)
	}
	if !unitarray.Equal(rem.Base, unitarray.Singleton("m")) {
		t.Fatalf("7m %% 2m has base %v, want meters", rem.Base)
	}
}

func TestPowRaisesUnitsAndValue(t *testing.T) {
	area := meters(3).Pow(2, 1)
	if area.Value != 9 {
		t.Fatalf("3m^2 value = %v, want 9", area.Value)
	}
	want := unitarray.New(unitarray.Term{Name: "m", Numer: 2, Denom: 1})
	if !unitarray.Equal(area.Base, want) {
		t.Fatalf("3m^2 base = %v, want %v", area.Base, want)
	}
}

func TestInUnitsOfConvertsExactly(t *testing.T) {
	converted, err := meters(1500).InUnitsOf(kilometers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if converted.Value != 1.5 {
		t.Fatalf("1500 m in km = %v, want 1.5", converted.Value)
	}
}

func TestAtIndexesIntoUnits(t *testing.T) {
	v, err := meters(1500).At(kilometers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1.5 {
		t.Fatalf("1500m[km] = %v, want 1.5", v)
	}
}

func TestHashLawMatchesEqual(t *testing.T) {
	a := meters(1000)
	b := kilometers(1)
	if Equal(a, b) && a.Hash() != b.Hash() {
		t.Fatal("equal quantities must hash equal")
	}
}

func TestHashIgnoresDisplayUnits(t *testing.T) {
	a := meters(1000)
	b := kilometers(1)
	if a.Hash() != b.Hash() {
		t.Fatalf("hash should depend only on base magnitude and base units: %d != %d", a.Hash(), b.Hash())
	}
}

func TestStringFormatsBareUnitWhenValueIsOne(t *testing.T) {
	if got := meters(1).String(); got != "m" {
		t.Fatalf("String() = %q, want %q", got, "m")
	}
}

func TestStringFormatsValueAndUnit(t *testing.T) {
	if got := meters(5).String(); got != "5.0 m" {
		t.Fatalf("String() = %q, want %q", got, "5.0 m")
	}
}

func TestDimensionlessEqualsPlainNumber(t *testing.T) {
	q := FromNumber(42)
	if !q.EqualNumber(42) {
		t.Fatal("FromNumber(42) should equal the plain number 42")
	}
}

func TestCompareOrdersByBaseMagnitude(t *testing.T) {
	cmp, err := Compare(meters(1), kilometers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmp != -1 {
		t.Fatalf("Compare(1m, 1km) = %d, want -1", cmp)
	}
}

func TestInBaseUnitsNormalizesScale(t *testing.T) {
	base := kilometers(2).InBaseUnits()
	if base.Value != 2000 {
		t.Fatalf("2km in base units = %v, want 2000", base.Value)
	}
	if !unitarray.Equal(base.Display, base.Base) {
		t.Fatal("InBaseUnits should display in base units")
	}
}

func TestPowZeroYieldsDimensionless(t *testing.T) {
	q := meters(5).Pow(0, 1)
	if !q.IsDimensionless() {
		t.Fatal("raising to the zeroth power should yield a dimensionless quantity")
	}
	if real(q.Value) != 1 {
		t.Fatalf("5m^0 = %v, want 1", q.Value)
	}
}

func TestComplexValuesRoundTrip(t *testing.T) {
	q := meters(complex(3, 4))
	if cmplxAbs(q.Value) != 5 {
		t.Fatalf("|3+4i| m = %v, want 5", cmplxAbs(q.Value))
	}
}

func cmplxAbs(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}
