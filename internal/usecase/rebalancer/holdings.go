package rebalancer

import (
	"fmt"
	"slices"

	"github.com/peekport/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// position aggregates every lot of one symbol
type position struct {
	name  string
	value decimal.Decimal
	price decimal.Decimal
}

// AnalyzeHoldings compares each holding's share of the portfolio with a per-symbol
// target ratio (percent of total value, cash included).
// Logic:
//  1. Symbols are the union of held symbols and targeted symbols; a held symbol
//     without a target is aimed at 0%
//  2. Targets must lie in [0, 100] and may not sum above 100; the rest is cash
//  3. A symbol needs a trade when |deviation| exceeds params.ToleranceBand
//  4. Shares = |target value - current value| / price rounded half-up, zero when
//     the symbol has no positive price
//  5. Recommendations are ordered by |deviation|, EstimatedCost = traded amount x FeeRate
func AnalyzeHoldings(snapshot domain.PortfolioSnapshot, targets map[string]decimal.Decimal, params domain.RebalancingParams) (*domain.HoldingRebalancingResult, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	if err := validateHoldingTargets(targets, params.RatioTolerance); err != nil {
		return nil, err
	}

	total := snapshot.TotalValue()
	result := &domain.HoldingRebalancingResult{
		Severity:        domain.SeverityNone,
		TotalValue:      total,
		Recommendations: []domain.HoldingRecommendation{},
	}
	if total.IsZero() {
		result.Summary = "The portfolio holds no assets; there is nothing to rebalance."
		return result, nil
	}

	positions := aggregate(snapshot.Holdings)
	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	for symbol := range targets {
		if _, held := positions[symbol]; !held {
			symbols = append(symbols, symbol)
		}
	}
	slices.Sort(symbols)

	maxDeviation := decimal.Zero
	flagged := 0
	for _, symbol := range symbols {
		pos := positions[symbol]
		target := targets[symbol]

		rec := domain.HoldingRecommendation{
			Symbol:            symbol,
			Name:              pos.name,
			Action:            domain.ActionHold,
			CurrentRatio:      pos.value.Mul(hundred).Div(total),
			TargetRatio:       target,
			CurrentValue:      pos.value,
			TargetValue:       total.Mul(target).Div(hundred).Round(domain.MoneyScale),
			CurrentPrice:      pos.price,
			RecommendedShares: decimal.Zero,
			RecommendedAmount: decimal.Zero,
		}
		rec.Deviation = rec.CurrentRatio.Sub(target)

		if rec.Deviation.Abs().GreaterThan(params.ToleranceBand) {
			flagged++
			gap := rec.TargetValue.Sub(rec.CurrentValue).Abs()
			rec.RecommendedAmount = gap.Round(domain.MoneyScale)
			if pos.price.IsPositive() {
				rec.RecommendedShares = gap.Div(pos.price).Round(0)
			}
			if rec.Deviation.IsPositive() {
				rec.Action = domain.ActionSell
			} else {
				rec.Action = domain.ActionBuy
			}
		}
		rec.Reason = holdingReason(rec, params)

		result.TotalDeviation = result.TotalDeviation.Add(rec.Deviation.Abs())
		if rec.Deviation.Abs().GreaterThan(maxDeviation) {
			maxDeviation = rec.Deviation.Abs()
		}
		result.Recommendations = append(result.Recommendations, rec)
	}

	slices.SortStableFunc(result.Recommendations, func(a, b domain.HoldingRecommendation) int {
		return b.Deviation.Abs().Cmp(a.Deviation.Abs())
	})
	for i := range result.Recommendations {
		rec := &result.Recommendations[i]
		rec.Priority = i + 1
		result.EstimatedCost = result.EstimatedCost.Add(rec.RecommendedAmount.Mul(params.FeeRate))
		if rec.Action == domain.ActionBuy {
			result.CashRequirement = result.CashRequirement.Add(rec.RecommendedAmount)
		}
	}
	result.EstimatedCost = result.EstimatedCost.Round(domain.MoneyScale)
	result.Severity = Classify(maxDeviation, params)
	result.NeedsRebalancing = flagged > 0

	if result.NeedsRebalancing {
		result.Summary = fmt.Sprintf("%d of %d holdings are outside the %s%%p tolerance band.",
			flagged, len(result.Recommendations), params.ToleranceBand.StringFixed(1))
	} else {
		result.Summary = "Every holding is within the tolerance band."
	}

	return result, nil
}

func validateHoldingTargets(targets map[string]decimal.Decimal, tolerance decimal.Decimal) error {
	sum := decimal.Zero
	for symbol, ratio := range targets {
		if symbol == "" {
			return domain.InvalidInputf("holding target symbol cannot be empty")
		}
		if ratio.IsNegative() || ratio.GreaterThan(hundred) {
			return domain.InvalidInputf("target ratio of %s must be between 0 and 100", symbol)
		}
		sum = sum.Add(ratio)
	}
	if sum.Sub(hundred).GreaterThan(tolerance) {
		return domain.InvalidInputf("holding targets sum to %s, above 100", sum.String())
	}
	return nil
}

// aggregate merges lots by symbol; the first positive price wins
func aggregate(holdings []domain.Holding) map[string]position {
	positions := make(map[string]position, len(holdings))
	for _, h := range holdings {
		pos := positions[h.Symbol]
		pos.value = pos.value.Add(h.Value())
		if pos.name == "" {
			pos.name = h.Name
		}
		if !pos.price.IsPositive() && h.CurrentPrice.IsPositive() {
			pos.price = h.CurrentPrice
		}
		positions[h.Symbol] = pos
	}
	return positions
}

func holdingReason(rec domain.HoldingRecommendation, params domain.RebalancingParams) string {
	gap := rec.Deviation.Abs().StringFixed(1)
	amount := FormatAmount(rec.RecommendedAmount, params.Currency)

	trade := "about " + amount
	if rec.RecommendedShares.IsPositive() {
		trade = fmt.Sprintf("%s shares (about %s)", rec.RecommendedShares.String(), amount)
	}

	switch rec.Action {
	case domain.ActionSell:
		return fmt.Sprintf("%s weight exceeds target by %s%%p; sell %s", rec.Symbol, gap, trade)
	case domain.ActionBuy:
		return fmt.Sprintf("%s weight is %s%%p below target; buy %s", rec.Symbol, gap, trade)
	default:
		return fmt.Sprintf("%s weight is %s%%p from target, within the %s%%p tolerance band",
			rec.Symbol, gap, params.ToleranceBand.StringFixed(1))
	}
}
