package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target attached to a portfolio
type Goal struct {
	ID           uuid.UUID
	PortfolioID  uuid.UUID
	Name         string
	Amount       decimal.Decimal
	MonthsToGoal int
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if g.Name == "" {
		return InvalidInputf("goal name cannot be empty")
	}
	if !g.Amount.IsPositive() {
		return InvalidInputf("goal amount must be positive")
	}
	if g.MonthsToGoal < 0 {
		return InvalidInputf("months to goal cannot be negative")
	}
	if g.MonthsToGoal > MaxSimulationMonths {
		return InvalidInputf("months to goal cannot exceed %d", MaxSimulationMonths)
	}
	return nil
}
