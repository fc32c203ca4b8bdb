package allocator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Share is the part of a contribution assigned to one instrument class
type Share struct {
	Class  domain.InstrumentClass
	Amount decimal.Decimal
}

// SplitContribution divides a monthly contribution across the classes of target.
// Logic:
//  1. Walk the classes in canonical order (stock, bond, cash)
//  2. Give every class but the last floor(amount x ratio / 100) whole units
//  3. Assign the leftover to the last class present (cash when the target has it)
//
// The shares always add up to amount exactly.
func SplitContribution(amount decimal.Decimal, target domain.AllocationTarget) ([]Share, error) {
	if !amount.IsPositive() {
		return nil, domain.InvalidInputf("contribution amount must be positive")
	}
	if err := target.Validate(domain.DefaultRatioTolerance); err != nil {
		return nil, err
	}

	classes := target.Classes()
	shares := make([]Share, 0, len(classes))
	remaining := amount

	for _, class := range classes[:len(classes)-1] {
		part := amount.Mul(target.Ratio(class)).Div(hundred).Floor()
		if part.GreaterThan(remaining) {
			part = remaining
		}
		shares = append(shares, Share{Class: class, Amount: part})
		remaining = remaining.Sub(part)
	}
	shares = append(shares, Share{Class: classes[len(classes)-1], Amount: remaining})

	// Safety check: nothing lost to rounding
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	if !total.Equal(amount) {
		return nil, errors.New("split total does not equal contribution")
	}

	return shares, nil
}
