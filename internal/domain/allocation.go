package domain

import (
	"github.com/shopspring/decimal"
)

// InstrumentClass is an asset class an allocation target can weight
type InstrumentClass string

const (
	InstrumentStock InstrumentClass = "stock"
	InstrumentBond  InstrumentClass = "bond"
	InstrumentCash  InstrumentClass = "cash"
)

// instrumentOrder fixes iteration order so sums and output stay deterministic
var instrumentOrder = []InstrumentClass{InstrumentStock, InstrumentBond, InstrumentCash}

// Valid reports whether c is a known instrument class
func (c InstrumentClass) Valid() bool {
	for _, known := range instrumentOrder {
		if c == known {
			return true
		}
	}
	return false
}

var (
	hundred = decimal.NewFromInt(100)

	// DefaultRatioTolerance is how far the ratios of a target may drift from 100 in total
	DefaultRatioTolerance = decimal.NewFromFloat(0.01)
)

// AllocationTarget maps instrument classes to percentage ratios (0-100).
// The two-key stock/cash form is the minimal case; a three-way target adds bond.
type AllocationTarget struct {
	Ratios map[InstrumentClass]decimal.Decimal
}

// NewAllocationTarget builds a stock/cash target
func NewAllocationTarget(stock, cash decimal.Decimal) AllocationTarget {
	return AllocationTarget{Ratios: map[InstrumentClass]decimal.Decimal{
		InstrumentStock: stock,
		InstrumentCash:  cash,
	}}
}

// NewThreeWayTarget builds a stock/bond/cash target
func NewThreeWayTarget(stock, bond, cash decimal.Decimal) AllocationTarget {
	return AllocationTarget{Ratios: map[InstrumentClass]decimal.Decimal{
		InstrumentStock: stock,
		InstrumentBond:  bond,
		InstrumentCash:  cash,
	}}
}

// Ratio returns the ratio of class, zero when absent
func (t AllocationTarget) Ratio(class InstrumentClass) decimal.Decimal {
	if r, ok := t.Ratios[class]; ok {
		return r
	}
	return decimal.Zero
}

// Stock returns the stock ratio
func (t AllocationTarget) Stock() decimal.Decimal { return t.Ratio(InstrumentStock) }

// Cash returns the cash ratio (bond is not included; see Collapse)
func (t AllocationTarget) Cash() decimal.Decimal { return t.Ratio(InstrumentCash) }

// Classes returns the classes present in the target in canonical order
func (t AllocationTarget) Classes() []InstrumentClass {
	classes := make([]InstrumentClass, 0, len(t.Ratios))
	for _, c := range instrumentOrder {
		if _, ok := t.Ratios[c]; ok {
			classes = append(classes, c)
		}
	}
	return classes
}

// Sum returns the total of all ratios
func (t AllocationTarget) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, c := range t.Classes() {
		total = total.Add(t.Ratios[c])
	}
	return total
}

// Validate ensures every class is known, every ratio lies in [0, 100]
// and the ratios sum to 100 within tolerance. Targets are never re-normalised.
func (t AllocationTarget) Validate(tolerance decimal.Decimal) error {
	if len(t.Ratios) == 0 {
		return InvalidInputf("allocation target must have at least one ratio")
	}
	for class, ratio := range t.Ratios {
		if !class.Valid() {
			return InvalidInputf("unknown instrument class %q", class)
		}
		if ratio.IsNegative() || ratio.GreaterThan(hundred) {
			return InvalidInputf("%s ratio must be between 0 and 100", class)
		}
	}
	if t.Sum().Sub(hundred).Abs().GreaterThan(tolerance) {
		return InvalidInputf("allocation ratios must sum to 100, got %s", t.Sum().String())
	}
	return nil
}

// Collapse folds every non-stock class into cash, producing the stock/cash
// model used for rebalancing.
func (t AllocationTarget) Collapse() AllocationTarget {
	stock := t.Stock()
	rest := t.Sum().Sub(stock)
	return NewAllocationTarget(stock, rest)
}

// Equal reports whether both targets weight every class within tolerance
func (t AllocationTarget) Equal(other AllocationTarget, tolerance decimal.Decimal) bool {
	for _, c := range instrumentOrder {
		if t.Ratio(c).Sub(other.Ratio(c)).Abs().GreaterThan(tolerance) {
			return false
		}
	}
	return true
}

// HorizonBand is one row of the glide path: goals up to MaxMonths away get Split.
// A negative MaxMonths marks the open-ended last band.
type HorizonBand struct {
	MaxMonths int
	Horizon   Horizon
	Split     AllocationTarget
}

// Contains reports whether monthsToGoal falls within the band's inclusive upper bound
func (b HorizonBand) Contains(monthsToGoal int) bool {
	return b.MaxMonths < 0 || monthsToGoal <= b.MaxMonths
}
