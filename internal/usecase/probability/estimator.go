// Package probability estimates how likely a goal is to be reached.
//
// The estimate is a deterministic heuristic, not a statistical model: it rewards
// overshoot and penalises shortfall asymmetrically and never reports 0% or 100%.
// Changing its shape changes user-visible numbers.
package probability

import (
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	MinPercent = 1
	MaxPercent = 99
)

var (
	overshootWeight = decimal.NewFromFloat(0.8)
	shortfallWeight = decimal.NewFromFloat(0.2)
	ceiling         = decimal.NewFromFloat(0.99)
	floor           = decimal.NewFromFloat(0.01)
	hundred         = decimal.NewFromInt(100)
)

// Estimate returns the goal attainment likelihood as an integer percent in [1, 99].
// Logic:
//   - projected >= goal: min(0.99, projected/goal * 0.8)
//   - projected <  goal: max(0.01, goal/projected * 0.2)
//   - projected <= 0:    the floor, since the ratio has no usable denominator
func Estimate(projectedFinalValue, goalAmount decimal.Decimal) (int, error) {
	if !goalAmount.IsPositive() {
		return 0, domain.InvalidInputf("goal amount must be positive")
	}

	var p decimal.Decimal
	switch {
	case projectedFinalValue.GreaterThanOrEqual(goalAmount):
		p = decimal.Min(ceiling, projectedFinalValue.Div(goalAmount).Mul(overshootWeight))
	case projectedFinalValue.IsPositive():
		p = decimal.Max(floor, goalAmount.Div(projectedFinalValue).Mul(shortfallWeight))
	default:
		p = floor
	}

	percent := p.Mul(hundred).Round(0).IntPart()
	switch {
	case percent < MinPercent:
		return MinPercent, nil
	case percent > MaxPercent:
		return MaxPercent, nil
	}
	return int(percent), nil
}

// Outlook returns the headline verdict for a probability percent
func Outlook(percent int) domain.Outlook {
	switch {
	case percent > 80:
		return domain.OutlookPromising
	case percent > 50:
		return domain.OutlookPossible
	default:
		return domain.OutlookNeedsAdjustment
	}
}
