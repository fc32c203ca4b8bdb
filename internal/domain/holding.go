package domain

import (
	"github.com/shopspring/decimal"
)

// Horizon is the investment horizon a holding was bought for
type Horizon string

const (
	HorizonShort Horizon = "short"
	HorizonMid   Horizon = "mid"
	HorizonLong  Horizon = "long"
)

// Valid reports whether h is one of the known horizons
func (h Horizon) Valid() bool {
	switch h {
	case HorizonShort, HorizonMid, HorizonLong:
		return true
	}
	return false
}

// Holding is a read-only snapshot of one position inside a portfolio
type Holding struct {
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Horizon       Horizon
}

// Value returns Quantity x CurrentPrice
func (h Holding) Value() decimal.Decimal {
	return h.Quantity.Mul(h.CurrentPrice)
}

// CostBasis returns Quantity x PurchasePrice
func (h Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.PurchasePrice)
}

// ProfitLoss returns the unrealised gain (positive) or loss (negative) of the position
func (h Holding) ProfitLoss() decimal.Decimal {
	return h.Value().Sub(h.CostBasis())
}

// Validate ensures the holding adheres to domain rules
func (h Holding) Validate() error {
	if h.Symbol == "" {
		return InvalidInputf("holding symbol cannot be empty")
	}
	if h.Quantity.IsNegative() {
		return InvalidInputf("holding %s quantity cannot be negative", h.Symbol)
	}
	if h.PurchasePrice.IsNegative() {
		return InvalidInputf("holding %s purchase price cannot be negative", h.Symbol)
	}
	if h.CurrentPrice.IsNegative() {
		return InvalidInputf("holding %s current price cannot be negative", h.Symbol)
	}
	if !h.Horizon.Valid() {
		return InvalidInputf("holding %s horizon must be short, mid or long", h.Symbol)
	}
	return nil
}
