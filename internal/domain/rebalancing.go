package domain

import "github.com/shopspring/decimal"

// Action is the trade direction of a rebalancing recommendation
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Severity classifies how far the stock ratio has drifted from its target
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RebalancingRecommendation is one suggested trade for an instrument class.
// Deviation is CurrentRatio - TargetRatio; positive means overweight.
type RebalancingRecommendation struct {
	Action            Action
	InstrumentClass   InstrumentClass
	CurrentRatio      decimal.Decimal
	TargetRatio       decimal.Decimal
	Deviation         decimal.Decimal
	RecommendedAmount decimal.Decimal
	Priority          int // 1 = largest deviation
	Reason            string
}

// RebalancingResult is the outcome of comparing a snapshot with its target split
type RebalancingResult struct {
	NeedsRebalancing bool
	Severity         Severity

	TotalValue decimal.Decimal
	StockValue decimal.Decimal
	CashValue  decimal.Decimal

	CurrentStockRatio decimal.Decimal
	CurrentCashRatio  decimal.Decimal
	TargetStockRatio  decimal.Decimal
	TargetCashRatio   decimal.Decimal
	StockDeviation    decimal.Decimal
	CashDeviation     decimal.Decimal
	TotalDeviation    decimal.Decimal

	// StockAdjustment is the signed amount that brings stock back to target
	StockAdjustment decimal.Decimal

	Recommendations []RebalancingRecommendation
	EstimatedCost   decimal.Decimal
	CashRequirement decimal.Decimal
	Summary         string
}

// HoldingRecommendation is one suggested trade for a single symbol.
// Deviation is CurrentRatio - TargetRatio of the whole portfolio value.
type HoldingRecommendation struct {
	Symbol       string
	Name         string
	Action       Action
	CurrentRatio decimal.Decimal
	TargetRatio  decimal.Decimal
	Deviation    decimal.Decimal
	CurrentValue decimal.Decimal
	TargetValue  decimal.Decimal
	CurrentPrice decimal.Decimal
	// RecommendedShares is a whole share count; zero while the price is unknown
	RecommendedShares decimal.Decimal
	RecommendedAmount decimal.Decimal
	Priority          int
	Reason            string
}

// HoldingRebalancingResult is the outcome of comparing each holding with a per-symbol target
type HoldingRebalancingResult struct {
	NeedsRebalancing bool
	Severity         Severity
	TotalValue       decimal.Decimal
	TotalDeviation   decimal.Decimal
	Recommendations  []HoldingRecommendation
	EstimatedCost    decimal.Decimal
	CashRequirement  decimal.Decimal
	Summary          string
}
