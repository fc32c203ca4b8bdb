package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioType is the risk profile chosen when the portfolio was created
type PortfolioType string

const (
	PortfolioTypeConservative PortfolioType = "CONSERVATIVE"
	PortfolioTypeBalanced     PortfolioType = "BALANCED"
	PortfolioTypeAggressive   PortfolioType = "AGGRESSIVE"
)

// RiskLevel maps the portfolio type onto a projection risk tier.
// Unknown types fall back to RiskModerate, the BALANCED default.
func (t PortfolioType) RiskLevel() RiskLevel {
	switch t {
	case PortfolioTypeConservative:
		return RiskConservative
	case PortfolioTypeAggressive:
		return RiskAggressive
	default:
		return RiskModerate
	}
}

// PortfolioSnapshot is the holdings and cash of a portfolio at analysis time
type PortfolioSnapshot struct {
	Holdings []Holding
	Cash     decimal.Decimal
}

// HoldingsValue returns the sum of every holding's market value
func (s PortfolioSnapshot) HoldingsValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range s.Holdings {
		total = total.Add(h.Value())
	}
	return total
}

// TotalValue returns Cash + HoldingsValue
func (s PortfolioSnapshot) TotalValue() decimal.Decimal {
	return s.Cash.Add(s.HoldingsValue())
}

// Validate ensures cash and every holding are non-negative
func (s PortfolioSnapshot) Validate() error {
	if s.Cash.IsNegative() {
		return InvalidInputf("cash cannot be negative")
	}
	for _, h := range s.Holdings {
		if err := h.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Portfolio represents a stored portfolio record.
// Target is nil when the user never saved an allocation target.
type Portfolio struct {
	ID       uuid.UUID
	Name     string
	Type     PortfolioType
	Snapshot PortfolioSnapshot
	Target   *AllocationTarget
}

// Validate ensures the portfolio adheres to domain rules
func (p *Portfolio) Validate() error {
	if p.Name == "" {
		return InvalidInputf("portfolio name cannot be empty")
	}
	if err := p.Snapshot.Validate(); err != nil {
		return err
	}
	if p.Target != nil {
		if err := p.Target.Validate(DefaultRatioTolerance); err != nil {
			return err
		}
	}
	return nil
}
