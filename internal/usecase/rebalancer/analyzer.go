// Package rebalancer compares a portfolio's stock/cash split with its target
// and sizes the trades that would restore it.
package rebalancer

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// Classify returns the severity of a deviation expressed in percentage points
func Classify(deviation decimal.Decimal, params domain.RebalancingParams) domain.Severity {
	abs := deviation.Abs()
	switch {
	case abs.GreaterThanOrEqual(params.SeverityHigh):
		return domain.SeverityHigh
	case abs.GreaterThanOrEqual(params.SeverityMedium):
		return domain.SeverityMedium
	case abs.IsPositive():
		return domain.SeverityLow
	default:
		return domain.SeverityNone
	}
}

// Analyze compares the snapshot with target and builds recommendations.
// Logic:
//  1. Reject invalid snapshots and targets not summing to 100 (no re-normalisation)
//  2. A zero-value portfolio returns a zero result without error
//  3. Stock ratio = holdings / total, cash ratio = cash / total (percent)
//  4. Rebalancing is needed when |stock deviation| exceeds params.ToleranceBand
//  5. Overweight stock -> SELL stock + BUY cash, underweight -> BUY stock + SELL cash,
//     within the band -> HOLD both, exact match -> nothing
//  6. EstimatedCost = sum of recommended amounts x params.FeeRate
func Analyze(snapshot domain.PortfolioSnapshot, target domain.AllocationTarget, params domain.RebalancingParams) (*domain.RebalancingResult, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(params.RatioTolerance); err != nil {
		return nil, err
	}

	split := target.Collapse()
	stockValue := snapshot.HoldingsValue()
	cashValue := snapshot.Cash
	total := stockValue.Add(cashValue)

	result := &domain.RebalancingResult{
		Severity:         domain.SeverityNone,
		TotalValue:       total,
		StockValue:       stockValue,
		CashValue:        cashValue,
		TargetStockRatio: split.Stock(),
		TargetCashRatio:  split.Cash(),
		Recommendations:  []domain.RebalancingRecommendation{},
	}

	if total.IsZero() {
		result.Summary = "The portfolio holds no assets; there is nothing to rebalance."
		return result, nil
	}

	result.CurrentStockRatio = stockValue.Mul(hundred).Div(total)
	result.CurrentCashRatio = cashValue.Mul(hundred).Div(total)
	result.StockDeviation = result.CurrentStockRatio.Sub(split.Stock())
	result.CashDeviation = result.CurrentCashRatio.Sub(split.Cash())
	result.TotalDeviation = result.StockDeviation.Abs().Add(result.CashDeviation.Abs())
	result.StockAdjustment = total.Mul(split.Stock()).Div(hundred).Sub(stockValue).Round(domain.MoneyScale)

	result.Severity = Classify(result.StockDeviation, params)
	result.NeedsRebalancing = result.StockDeviation.Abs().GreaterThan(params.ToleranceBand)

	result.Recommendations = recommend(result, params)

	for _, rec := range result.Recommendations {
		result.EstimatedCost = result.EstimatedCost.Add(rec.RecommendedAmount.Mul(params.FeeRate))
		if rec.Action == domain.ActionBuy && rec.InstrumentClass == domain.InstrumentStock {
			result.CashRequirement = result.CashRequirement.Add(rec.RecommendedAmount)
		}
	}
	result.EstimatedCost = result.EstimatedCost.Round(domain.MoneyScale)
	result.Summary = summarize(result, params)

	return result, nil
}

// recommend builds the stock and cash recommendations ordered by |deviation|
func recommend(result *domain.RebalancingResult, params domain.RebalancingParams) []domain.RebalancingRecommendation {
	stockDev := result.StockDeviation
	if stockDev.IsZero() {
		return []domain.RebalancingRecommendation{}
	}

	stock := domain.RebalancingRecommendation{
		InstrumentClass: domain.InstrumentStock,
		CurrentRatio:    result.CurrentStockRatio,
		TargetRatio:     result.TargetStockRatio,
		Deviation:       stockDev,
	}
	cash := domain.RebalancingRecommendation{
		InstrumentClass: domain.InstrumentCash,
		CurrentRatio:    result.CurrentCashRatio,
		TargetRatio:     result.TargetCashRatio,
		Deviation:       result.CashDeviation,
	}

	if !result.NeedsRebalancing {
		stock.Action, cash.Action = domain.ActionHold, domain.ActionHold
		stock.RecommendedAmount, cash.RecommendedAmount = decimal.Zero, decimal.Zero
	} else {
		amount := stockDev.Abs().Mul(result.TotalValue).Div(hundred).Round(domain.MoneyScale)
		stock.RecommendedAmount, cash.RecommendedAmount = amount, amount
		if stockDev.IsPositive() {
			stock.Action, cash.Action = domain.ActionSell, domain.ActionBuy
		} else {
			stock.Action, cash.Action = domain.ActionBuy, domain.ActionSell
		}
	}

	stock.Reason = reason(stock, params)
	cash.Reason = reason(cash, params)

	recs := []domain.RebalancingRecommendation{stock, cash}
	slices.SortStableFunc(recs, func(a, b domain.RebalancingRecommendation) int {
		return b.Deviation.Abs().Cmp(a.Deviation.Abs())
	})
	for i := range recs {
		recs[i].Priority = i + 1
	}
	return recs
}

// reason renders the gap in percentage points and the suggested direction
func reason(rec domain.RebalancingRecommendation, params domain.RebalancingParams) string {
	gap := rec.Deviation.Abs().StringFixed(1)
	amount := FormatAmount(rec.RecommendedAmount, params.Currency)

	switch {
	case rec.Action == domain.ActionHold:
		return fmt.Sprintf("%s weight is %s%%p from target, within the %s%%p tolerance band",
			rec.InstrumentClass, gap, params.ToleranceBand.StringFixed(1))
	case rec.InstrumentClass == domain.InstrumentStock && rec.Action == domain.ActionSell:
		return fmt.Sprintf("stock weight exceeds target by %s%%p; sell about %s of stock", gap, amount)
	case rec.InstrumentClass == domain.InstrumentStock:
		return fmt.Sprintf("stock weight is %s%%p below target; buy about %s of stock", gap, amount)
	case rec.Action == domain.ActionBuy:
		return fmt.Sprintf("cash weight is %s%%p below target; raise about %s of cash", gap, amount)
	default:
		return fmt.Sprintf("cash weight exceeds target by %s%%p; deploy about %s of cash into stock", gap, amount)
	}
}

// summarize returns the one-sentence verdict shown in alerts
func summarize(result *domain.RebalancingResult, params domain.RebalancingParams) string {
	if !result.NeedsRebalancing {
		return "The current allocation is within the tolerance band."
	}

	gap := result.StockDeviation.Abs().StringFixed(1)
	amount := FormatAmount(result.StockAdjustment.Abs(), params.Currency)
	if result.StockDeviation.IsPositive() {
		return fmt.Sprintf("Stock weight is %s%%p over target. Selling about %s of stock to raise cash is recommended.", gap, amount)
	}
	return fmt.Sprintf("Stock weight is %s%%p under target. Buying about %s of additional stock is recommended.", gap, amount)
}

// FormatAmount renders amount in the currency's display format (e.g. "₩1,500,000").
// Amounts are rounded to the currency's minor unit. Amounts whose minor units
// overflow int64 are printed ungrouped in the same template.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	cur := money.New(0, currencyCode).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		display := strings.Replace(cur.Template, "1", amount.Abs().StringFixed(int32(cur.Fraction)), 1)
		display = strings.Replace(display, "$", cur.Grapheme, 1)
		if amount.IsNegative() {
			return "-" + display
		}
		return display
	}
	return money.New(minor.IntPart(), currencyCode).Display()
}
