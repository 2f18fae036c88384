package dimension_test

import (
	"testing"

	"github.com/mhucka/typedunits/dimension"
	"github.com/mhucka/typedunits/quantity"
	"github.com/mhucka/typedunits/scale"
	"github.com/mhucka/typedunits/unitarray"
)

func TestNewLengthAcceptsMeters(t *testing.T) {
	ua := unitarray.Singleton("m")
	q := quantity.Raw(5, scale.One(), ua, ua)
	l := dimension.NewLength(q)
	if l.Quantity.Value != 5 {
		t.Fatalf("Length value = %v, want 5", l.Quantity.Value)
	}
}

func TestNewLengthPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic constructing a Length from a mass quantity")
		}
	}()
	ua := unitarray.Singleton("kg")
	q := quantity.Raw(5, scale.One(), ua, ua)
	dimension.NewLength(q)
}

func TestNewTimeAcceptsSeconds(t *testing.T) {
	ua := unitarray.Singleton("s")
	q := quantity.Raw(1, scale.One(), ua, ua)
	dimension.NewTime(q) // must not panic
}

func TestNewAngleAcceptsRadians(t *testing.T) {
	ua := unitarray.Singleton("rad")
	q := quantity.Raw(1, scale.One(), ua, ua)
	dimension.NewAngle(q) // must not panic
}
