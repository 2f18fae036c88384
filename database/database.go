// Package database implements the unit registry: a name-to-Quantity table
// that the formula parser resolves identifiers against, with auto-create
// semantics and prefix/alias expansion.
package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mhucka/typedunits/quantity"
	"github.com/mhucka/typedunits/scale"
	"github.com/mhucka/typedunits/uerr"
	"github.com/mhucka/typedunits/unitarray"
)

// Database is a UnitDatabase: a registry of known units, resolved by name.
// Safe for concurrent use; writes take an exclusive lock, reads a shared one.
//
// The ID field exists only for log correlation, never consulted for unit
// semantics.
type Database struct {
	mu              sync.RWMutex
	units           map[string]quantity.Quantity
	AutoCreateUnits bool
	ID              uuid.UUID
}

// New returns an empty Database. autoCreate controls whether an unresolved
// identifier is treated as an error (false) or silently registered as a new
// root unit (true).
func New(autoCreate bool) *Database {
	return &Database{
		units:           make(map[string]quantity.Quantity),
		AutoCreateUnits: autoCreate,
		ID:              uuid.New(),
	}
}

// GetUnit returns the Quantity registered under name, auto-creating a root
// unit for it first if the database allows that and the name is unknown.
func (db *Database) GetUnit(name string) (quantity.Quantity, error) {
	db.mu.RLock()
	q, ok := db.units[name]
	db.mu.RUnlock()
	if ok {
		return q, nil
	}

	if !db.AutoCreateUnits {
		return quantity.Quantity{}, uerr.Unknown(name)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	// Re-check under the write lock: another goroutine may have created
	// this exact unit while we were waiting for it.
	if q, ok := db.units[name]; ok {
		return q, nil
	}
	q = rootQuantity(name)
	db.units[name] = q
	return q, nil
}

// Resolve implements quantity.Resolver, so a Database can be handed directly
// to quantity.ParseFormula as the symbol resolver.
func (db *Database) Resolve(symbol string) (quantity.Quantity, error) {
	return db.GetUnit(symbol)
}

func rootQuantity(name string) quantity.Quantity {
	ua := unitarray.Singleton(name)
	return quantity.Raw(1, scale.One(), ua, ua)
}

// AddUnit registers q under name. Fails if name is already taken.
func (db *Database) AddUnit(name string, q quantity.Quantity) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.addUnitLocked(name, q)
}

func (db *Database) addUnitLocked(name string, q quantity.Quantity) error {
	if _, ok := db.units[name]; ok {
		return uerr.Duplicate(name)
	}
	db.units[name] = q
	return nil
}

// AddRootUnit registers a plain unit, not defined in terms of anything else.
func (db *Database) AddRootUnit(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.addUnitLocked(name, rootQuantity(name))
}

// AddAlias registers alternateName as exactly the value already registered
// under name.
func (db *Database) AddAlias(alternateName, name string) error {
	existing, err := db.GetUnit(name)
	if err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.addUnitLocked(alternateName, existing)
}

// AddScaledUnit creates and registers a derived unit computed by parsing
// formula against the units already known, then applying factor/numer/
// denom/exp10 as an additional scale on top of the parsed value.
func (db *Database) AddScaledUnit(name, formula string, factor float64, numer, denom, exp10 int64) error {
	parent, err := db.ParseFormula(formula)
	if err != nil {
		return fmt.Errorf("resolving formula %q for unit %q: %w", formula, name, err)
	}

	combined := scale.Multiply(parent.Scale, scale.New(factor*real(parent.Value), numer, denom, exp10))
	q := quantity.Raw(1, combined, unitarray.Singleton(name), parent.Base)

	db.mu.Lock()
	defer db.mu.Unlock()
	return db.addUnitLocked(name, q)
}

// ParseFormula parses formula against this database's known units.
func (db *Database) ParseFormula(formula string) (quantity.Quantity, error) {
	return quantity.ParseFormula(db, formula)
}

// NewQuantity builds value units, where units is either a unit-formula
// string or an existing quantity.Quantity to copy the display/base/scale
// from.
func (db *Database) NewQuantity(value complex128, units any) (quantity.Quantity, error) {
	switch u := units.(type) {
	case string:
		parsed, err := db.ParseFormula(u)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Raw(value, parsed.Scale, parsed.Display, parsed.Base), nil
	case quantity.Quantity:
		return quantity.Raw(value, u.Scale, u.Display, u.Base), nil
	default:
		return quantity.Quantity{}, uerr.Type("NewQuantity: unsupported units type %T", units)
	}
}

// BaseUnitData describes a fundamental (non-derived) unit, e.g. the meter.
type BaseUnitData struct {
	Symbol      string
	Name        string
	UsePrefixes bool
}

// DerivedUnitData describes a unit defined as a scaled formula over other
// units, e.g. the newton as kg*m/s^2.
type DerivedUnitData struct {
	Symbol      string
	Name        string
	Formula     string
	Factor      float64
	Numerator   int64
	Denominator int64
	Exp10       int64
	UsePrefixes bool
}

// PrefixData describes an SI-style multiplicative prefix, e.g. "k" / "kilo".
type PrefixData struct {
	Symbol string
	Name   string
	Exp10  int64
}

// AddBaseUnitData registers a base unit, its long name, and (if requested)
// every prefixed/alias variant. Special-cases kilogram: prefixes attach to
// "g"/"gram", not "kg"/"kilogram", and "kg" itself is skipped when applying
// the "k" prefix to avoid a duplicate registration.
func (db *Database) AddBaseUnitData(data BaseUnitData, prefixes []PrefixData) error {
	if err := db.AddRootUnit(data.Symbol); err != nil {
		return err
	}
	if data.Name != data.Symbol {
		if err := db.AddAlias(data.Name, data.Symbol); err != nil {
			return err
		}
	}

	symbol, name := data.Symbol, data.Name
	if symbol == "kg" {
		symbol, name = "g", "gram"
		if err := db.AddScaledUnit("g", "kg", 1.0, 1, 1, -3); err != nil {
			return err
		}
		if err := db.AddAlias("gram", "g"); err != nil {
			return err
		}
	}

	if !data.UsePrefixes {
		return nil
	}
	for _, pre := range prefixes {
		if symbol == "g" && pre.Symbol == "k" {
			continue
		}
		if err := db.AddScaledUnit(pre.Symbol+symbol, symbol, 1.0, 1, 1, pre.Exp10); err != nil {
			return err
		}
		if err := db.AddAlias(pre.Name+name, pre.Symbol+symbol); err != nil {
			return err
		}
	}
	return nil
}

// AddDerivedUnitData registers a derived unit under both its symbol and its
// long name, and (if requested) every prefixed variant under its symbol.
func (db *Database) AddDerivedUnitData(data DerivedUnitData, prefixes []PrefixData) error {
	keys := []string{data.Symbol}
	if data.Name != data.Symbol {
		keys = append(keys, data.Name)
	}
	for _, key := range keys {
		if err := db.AddScaledUnit(key, data.Formula, data.Factor, data.Numerator, data.Denominator, data.Exp10); err != nil {
			return err
		}
	}

	if !data.UsePrefixes {
		return nil
	}
	for _, pre := range prefixes {
		if err := db.AddScaledUnit(pre.Symbol+data.Symbol, data.Formula, data.Factor, data.Numerator, data.Denominator, data.Exp10+pre.Exp10); err != nil {
			return err
		}
		if err := db.AddAlias(pre.Name+data.Name, pre.Symbol+data.Symbol); err != nil {
			return err
		}
	}
	return nil
}

// Names returns every registered unit name, sorted, for introspection
// (e.g. "typedunits units list" / GET /v1/units).
func (db *Database) Names() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, 0, len(db.units))
	for name := range db.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
