// Package projector simulates month-by-month portfolio growth.
package projector

import (
	"math"

	"github.com/peekport/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// MonthlyRate converts an annual return into the equivalent monthly compounding rate:
// (1 + annual)^(1/12) - 1. Geometric conversion keeps long horizons from being understated.
func MonthlyRate(annualReturnRate decimal.Decimal) decimal.Decimal {
	annual := annualReturnRate.InexactFloat64()
	return decimal.NewFromFloat(math.Pow(1+annual, 1.0/12) - 1)
}

// AnnualReturn resolves a risk tier to its configured annual return
func AnnualReturn(level domain.RiskLevel, rates map[domain.RiskLevel]decimal.Decimal) (decimal.Decimal, error) {
	rate, ok := rates[level]
	if !ok {
		return decimal.Zero, domain.InvalidInputf("no annual return configured for risk level %q", level)
	}
	return rate, nil
}

// Project simulates the portfolio value for months 0..months.
// Logic:
//  1. value[0] = currentTotal
//  2. value[m] = value[m-1] + value[m-1]*monthlyRate + monthlyContribution
//  3. GoalMarker = goalAmount for every month >= goalMonth, nil before
//
// A negative currentTotal is passed through unchanged; it is never clamped.
func Project(
	currentTotal decimal.Decimal,
	monthlyContribution decimal.Decimal,
	annualReturnRate decimal.Decimal,
	months int,
	goalAmount decimal.Decimal,
	goalMonth int,
) ([]domain.ProjectionPoint, error) {
	if months < 0 {
		return nil, domain.InvalidInputf("simulation length cannot be negative")
	}
	if months > domain.MaxSimulationMonths {
		return nil, domain.InvalidInputf("simulation length cannot exceed %d months", domain.MaxSimulationMonths)
	}
	if goalMonth < 0 {
		return nil, domain.InvalidInputf("goal month cannot be negative")
	}
	if monthlyContribution.IsNegative() {
		return nil, domain.InvalidInputf("monthly contribution cannot be negative")
	}
	if annualReturnRate.IsNegative() || annualReturnRate.GreaterThanOrEqual(one) {
		return nil, domain.InvalidInputf("annual return rate must be in [0, 1)")
	}

	monthlyRate := MonthlyRate(annualReturnRate)

	points := make([]domain.ProjectionPoint, 0, months+1)
	value := currentTotal
	for month := 0; month <= months; month++ {
		if month > 0 {
			growth := value.Mul(monthlyRate)
			value = value.Add(growth).Add(monthlyContribution).Round(domain.MoneyScale)
		}

		point := domain.ProjectionPoint{Month: month, Value: value}
		if month >= goalMonth {
			marker := goalAmount
			point.GoalMarker = &marker
		}
		points = append(points, point)
	}

	return points, nil
}

// ValueAt returns the projected value at month, or the last point's value when
// month lies beyond the simulated horizon. An empty projection yields zero.
func ValueAt(points []domain.ProjectionPoint, month int) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	if month < 0 {
		month = 0
	}
	if month >= len(points) {
		return points[len(points)-1].Value
	}
	return points[month].Value
}
