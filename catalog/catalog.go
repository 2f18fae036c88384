// Package catalog ships the default SI unit data registered into a
// database.Database: base units, derived units, and the SI/binary prefixes,
// plus supplementary non-SI units. This is data, not logic.
package catalog

import (
	"fmt"
	"sync"

	"github.com/mhucka/typedunits/database"
	"github.com/mhucka/typedunits/quantity"
)

// Prefixes are the standard SI decimal prefixes, yotta through yocto.
var Prefixes = []database.PrefixData{
	{Symbol: "Y", Name: "yotta", Exp10: 24},
	{Symbol: "Z", Name: "zetta", Exp10: 21},
	{Symbol: "E", Name: "exa", Exp10: 18},
	{Symbol: "P", Name: "peta", Exp10: 15},
	{Symbol: "T", Name: "tera", Exp10: 12},
	{Symbol: "G", Name: "giga", Exp10: 9},
	{Symbol: "M", Name: "mega", Exp10: 6},
	{Symbol: "k", Name: "kilo", Exp10: 3},
	{Symbol: "h", Name: "hecto", Exp10: 2},
	{Symbol: "da", Name: "deka", Exp10: 1},
	{Symbol: "d", Name: "deci", Exp10: -1},
	{Symbol: "c", Name: "centi", Exp10: -2},
	{Symbol: "m", Name: "milli", Exp10: -3},
	{Symbol: "u", Name: "micro", Exp10: -6},
	{Symbol: "n", Name: "nano", Exp10: -9},
	{Symbol: "p", Name: "pico", Exp10: -12},
	{Symbol: "f", Name: "femto", Exp10: -15},
	{Symbol: "a", Name: "atto", Exp10: -18},
	{Symbol: "z", Name: "zepto", Exp10: -21},
	{Symbol: "y", Name: "yocto", Exp10: -24},
}

// binaryPrefix is an IEC binary prefix (kibi, mebi, ...): a power-of-two
// factor, not a power of ten, so it cannot reuse database.PrefixData's
// Exp10 (which Scale always interprets as base 10).
type binaryPrefix struct {
	Symbol   string
	Name     string
	PowerOf2 int64
}

// BinaryPrefixes are the IEC binary prefixes, registered only against
// bit/byte in Populate, never as generic SI prefixes.
var BinaryPrefixes = []binaryPrefix{
	{Symbol: "Ki", Name: "kibi", PowerOf2: 10},
	{Symbol: "Mi", Name: "mebi", PowerOf2: 20},
	{Symbol: "Gi", Name: "gibi", PowerOf2: 30},
	{Symbol: "Ti", Name: "tebi", PowerOf2: 40},
	{Symbol: "Pi", Name: "pebi", PowerOf2: 50},
	{Symbol: "Ei", Name: "exbi", PowerOf2: 60},
}

// BaseUnits are the seven SI base units, plus the radian, the logarithmic
// dB/dBm units, and the bit, each registered as its own root unit.
var BaseUnits = []database.BaseUnitData{
	{Symbol: "m", Name: "meter", UsePrefixes: true},
	{Symbol: "kg", Name: "kilogram", UsePrefixes: true},
	{Symbol: "s", Name: "second", UsePrefixes: true},
	{Symbol: "A", Name: "ampere", UsePrefixes: true},
	{Symbol: "K", Name: "kelvin", UsePrefixes: true},
	{Symbol: "mol", Name: "mole", UsePrefixes: true},
	{Symbol: "cd", Name: "candela", UsePrefixes: true},
	// Angular units: radian and steradian are formally dimensionless in SI,
	// but the radian is kept as a root unit here (sr is derived below as
	// rad^2) so formulas like "rad/s" display meaningfully.
	{Symbol: "rad", Name: "radian", UsePrefixes: false},
	// dB/dBm are incommensurable logarithmic root units, not scaled units
	// of anything, deliberately.
	{Symbol: "dB", Name: "decibel", UsePrefixes: false},
	{Symbol: "dBm", Name: "decibel-milliwatt", UsePrefixes: false},
	{Symbol: "bit", Name: "bit", UsePrefixes: false},
}

// DerivedUnits are the named SI-derived units plus common non-SI
// engineering and everyday units.
var DerivedUnits = []database.DerivedUnitData{
	{Symbol: "Hz", Name: "hertz", Formula: "1/s", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "N", Name: "newton", Formula: "kg*m/s^2", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "Pa", Name: "pascal", Formula: "N/m^2", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "J", Name: "joule", Formula: "N*m", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "W", Name: "watt", Formula: "J/s", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "C", Name: "coulomb", Formula: "A*s", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "V", Name: "volt", Formula: "W/A", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "ohm", Name: "ohm", Formula: "V/A", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "S", Name: "siemens", Formula: "1/ohm", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "F", Name: "farad", Formula: "C/V", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "H", Name: "henry", Formula: "V*s/A", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "T", Name: "tesla", Formula: "V*s/m^2", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "Wb", Name: "weber", Formula: "V*s", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "lm", Name: "lumen", Formula: "cd", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},
	{Symbol: "lx", Name: "lux", Formula: "lm/m^2", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: true},

	// Angle: cyc = 2*pi*rad by construction (lossy factor, since pi has no
	// exact rational representation); sr = rad^2 falls out of the formula.
	{Symbol: "sr", Name: "steradian", Formula: "rad^2", Factor: 1, Numerator: 1, Denominator: 1, UsePrefixes: false},
	{Symbol: "cyc", Name: "cycle", Formula: "rad", Factor: 6.283185307179586, Numerator: 1, Denominator: 1, UsePrefixes: false},

	// Common non-SI time units.
	{Symbol: "min", Name: "minute", Formula: "s", Factor: 1, Numerator: 60, Denominator: 1, UsePrefixes: false},
	{Symbol: "h", Name: "hour", Formula: "s", Factor: 1, Numerator: 3600, Denominator: 1, UsePrefixes: false},
	{Symbol: "day", Name: "day", Formula: "s", Factor: 1, Numerator: 86400, Denominator: 1, UsePrefixes: false},

	// Length (imperial).
	{Symbol: "in", Name: "inch", Formula: "m", Factor: 0.0254, Numerator: 1, Denominator: 1, UsePrefixes: false},
	{Symbol: "ft", Name: "foot", Formula: "in", Factor: 1, Numerator: 12, Denominator: 1, UsePrefixes: false},
	{Symbol: "mi", Name: "mile", Formula: "ft", Factor: 1, Numerator: 5280, Denominator: 1, UsePrefixes: false},

	// Mass (imperial).
	{Symbol: "lb", Name: "pound", Formula: "kg", Factor: 0.45359237, Numerator: 1, Denominator: 1, UsePrefixes: false},
	{Symbol: "oz", Name: "ounce", Formula: "lb", Factor: 1, Numerator: 1, Denominator: 16, UsePrefixes: false},

	// Volume.
	{Symbol: "liter", Name: "liter", Formula: "m^3", Factor: 1, Numerator: 1, Denominator: 1000, UsePrefixes: true},
	{Symbol: "gallon", Name: "gallon", Formula: "liter", Factor: 3.785411784, Numerator: 1, Denominator: 1, UsePrefixes: false},

	// Pressure / energy / power, non-SI.
	{Symbol: "bar", Name: "bar", Formula: "Pa", Factor: 1, Numerator: 100000, Denominator: 1, UsePrefixes: false},
	{Symbol: "atm", Name: "atmosphere", Formula: "Pa", Factor: 101325, Numerator: 1, Denominator: 1, UsePrefixes: false},
	{Symbol: "cal", Name: "calorie", Formula: "J", Factor: 4.184, Numerator: 1, Denominator: 1, UsePrefixes: false},
	{Symbol: "btu", Name: "british-thermal-unit", Formula: "J", Factor: 1055.06, Numerator: 1, Denominator: 1, UsePrefixes: false},
	{Symbol: "hp", Name: "horsepower", Formula: "W", Factor: 745.7, Numerator: 1, Denominator: 1, UsePrefixes: false},

	// Speed.
	{Symbol: "knot", Name: "knot", Formula: "m/s", Factor: 0.5144444444444445, Numerator: 1, Denominator: 1, UsePrefixes: false},

	// Magnetic flux density, non-SI (CGS).
	{Symbol: "gauss", Name: "gauss", Formula: "T", Factor: 1, Numerator: 1, Denominator: 10000, UsePrefixes: false},

	// Data size: registered as scaled units of bit, with IEC binary prefixes
	// wired separately in Populate (not SI decimal prefixes).
	{Symbol: "byte", Name: "byte", Formula: "bit", Factor: 1, Numerator: 8, Denominator: 1, UsePrefixes: false},
}

// Populate registers every base unit, derived unit, and binary-prefixed
// bit/byte variant into db. Call this once against a fresh database.Database.
func Populate(db *database.Database) error {
	for _, b := range BaseUnits {
		if err := db.AddBaseUnitData(b, Prefixes); err != nil {
			return err
		}
	}
	for _, d := range DerivedUnits {
		if err := db.AddDerivedUnitData(d, Prefixes); err != nil {
			return err
		}
	}
	for _, pre := range BinaryPrefixes {
		// 2^60 fits in an int64, so this stays an exact rational scale
		// rather than falling back to a lossy float factor.
		numer := int64(1) << uint(pre.PowerOf2)
		if err := db.AddScaledUnit(pre.Symbol+"bit", "bit", 1.0, numer, 1, 0); err != nil {
			return err
		}
		if err := db.AddScaledUnit(pre.Symbol+"byte", "byte", 1.0, numer, 1, 0); err != nil {
			return err
		}
		if err := db.AddAlias(pre.Name+"bit", pre.Symbol+"bit"); err != nil {
			return err
		}
		if err := db.AddAlias(pre.Name+"byte", pre.Symbol+"byte"); err != nil {
			return err
		}
	}
	return nil
}

var defaultDB = sync.OnceValue(func() *database.Database {
	db := database.New(true)
	if err := Populate(db); err != nil {
		panic(fmt.Sprintf("catalog: populating default database: %v", err))
	}
	return db
})

// Default returns the package-level database.Database, populated once with
// the catalog above.
func Default() *database.Database {
	return defaultDB()
}

// Parse parses formula against the default database, sugar for
// Default().ParseFormula(formula).
func Parse(formula string) (quantity.Quantity, error) {
	return Default().ParseFormula(formula)
}
