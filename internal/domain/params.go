package domain

import (
	"github.com/shopspring/decimal"
)

// RebalancingParams holds the thresholds of the rebalancing policy
type RebalancingParams struct {
	// ToleranceBand is the |stock deviation| (percentage points) above which
	// rebalancing is required
	ToleranceBand  decimal.Decimal
	SeverityMedium decimal.Decimal
	SeverityHigh   decimal.Decimal
	// FeeRate is applied uniformly to buy and sell notional
	FeeRate        decimal.Decimal
	RatioTolerance decimal.Decimal
	// Currency is the ISO 4217 code used when amounts are rendered in reasons
	Currency string
}

// EngineParams gathers every tunable constant of the planning engine
type EngineParams struct {
	ReturnRates map[RiskLevel]decimal.Decimal
	Bands       []HorizonBand
	Rebalancing RebalancingParams

	SimulationMonths            int
	DefaultMonthlyContribution  decimal.Decimal
	ContributionAdviceThreshold decimal.Decimal
	DefaultTarget               AllocationTarget
}

// DefaultHorizonBands returns the glide path: <=12 months 20/30/50,
// 13-60 months 50/40/10, beyond 60 months 70/25/5 (stock/bond/cash).
func DefaultHorizonBands() []HorizonBand {
	return []HorizonBand{
		{
			MaxMonths: 12,
			Horizon:   HorizonShort,
			Split:     NewThreeWayTarget(decimal.NewFromInt(20), decimal.NewFromInt(30), decimal.NewFromInt(50)),
		},
		{
			MaxMonths: 60,
			Horizon:   HorizonMid,
			Split:     NewThreeWayTarget(decimal.NewFromInt(50), decimal.NewFromInt(40), decimal.NewFromInt(10)),
		},
		{
			MaxMonths: -1,
			Horizon:   HorizonLong,
			Split:     NewThreeWayTarget(decimal.NewFromInt(70), decimal.NewFromInt(25), decimal.NewFromInt(5)),
		},
	}
}

// DefaultRebalancingParams returns a 10 point tolerance band, severity at 10/20 points
// and a flat 0.3% trading fee.
func DefaultRebalancingParams() RebalancingParams {
	return RebalancingParams{
		ToleranceBand:  decimal.NewFromInt(10),
		SeverityMedium: decimal.NewFromInt(10),
		SeverityHigh:   decimal.NewFromInt(20),
		FeeRate:        decimal.NewFromFloat(0.003),
		RatioTolerance: DefaultRatioTolerance,
		Currency:       "KRW",
	}
}

// DefaultEngineParams returns the reference configuration of the engine
func DefaultEngineParams() EngineParams {
	return EngineParams{
		ReturnRates: map[RiskLevel]decimal.Decimal{
			RiskConservative: decimal.NewFromFloat(0.04),
			RiskModerate:     decimal.NewFromFloat(0.07),
			RiskAggressive:   decimal.NewFromFloat(0.10),
		},
		Bands:                       DefaultHorizonBands(),
		Rebalancing:                 DefaultRebalancingParams(),
		SimulationMonths:            60,
		DefaultMonthlyContribution:  decimal.NewFromInt(500_000),
		ContributionAdviceThreshold: decimal.NewFromInt(1_000_000),
		DefaultTarget:               NewAllocationTarget(decimal.NewFromInt(70), decimal.NewFromInt(30)),
	}
}
