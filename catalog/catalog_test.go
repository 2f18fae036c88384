package catalog_test

import (
	"testing"

	"github.com/mhucka/typedunits/catalog"
	"github.com/mhucka/typedunits/database"
	"github.com/mhucka/typedunits/quantity"
)

func TestPopulateRegistersBaseUnits(t *testing.T) {
	db := database.New(false)
	if err := catalog.Populate(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"m", "kg", "s", "A", "K", "mol", "cd"} {
		if _, err := db.GetUnit(name); err != nil {
			t.Fatalf("expected %q to be registered: %v", name, err)
		}
	}
}

func TestPopulateDoesNotPanicOnDuplicateRegistration(t *testing.T) {
	db := database.New(false)
	if err := catalog.Populate(db); err != nil {
		t.Fatalf("unexpected error populating catalog: %v", err)
	}
}

func TestDefaultIsMemoizedAndUsable(t *testing.T) {
	a := catalog.Default()
	b := catalog.Default()
	if a != b {
		t.Fatal("catalog.Default() should return the same *database.Database instance")
	}
	if _, err := a.GetUnit("kg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseSugarMatchesDefaultDatabase(t *testing.T) {
	q, err := catalog.Parse("N")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := catalog.Default().ParseFormula("N")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quantity.Equal(q, want) {
		t.Fatalf("catalog.Parse(\"N\") = %v, want %v", q, want)
	}
}

func TestBinaryPrefixesApplyOnlyToBitAndByte(t *testing.T) {
	db := database.New(false)
	if err := catalog.Populate(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kibibyte, err := db.GetUnit("Kibyte")
	if err != nil {
		t.Fatalf("expected Kibyte to be registered: %v", err)
	}
	byteUnit, err := db.GetUnit("byte")
	if err != nil {
		t.Fatalf("expected byte to be registered: %v", err)
	}
	ratio, err := kibibyte.At(byteUnit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if real(ratio) != 1024 {
		t.Fatalf("1 Kibyte = %v bytes, want 1024", ratio)
	}
	if _, err := db.GetUnit("Kim"); err == nil {
		t.Fatal("binary prefix Ki should not be registered against meters")
	}
}
