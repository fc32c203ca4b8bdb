package grpc

import (
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	peekportv1 "github.com/peekport/planning-engine/internal/adapter/grpc/peekport/v1"
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/allocator"
	"github.com/peekport/planning-engine/internal/usecase/dashboard"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
)

// pointsToProto converts projection points; GoalMarker stays empty before the goal month
func pointsToProto(points []domain.ProjectionPoint) []*peekportv1.ProjectionPoint {
	protoPoints := make([]*peekportv1.ProjectionPoint, 0, len(points))
	for _, p := range points {
		protoPoint := &peekportv1.ProjectionPoint{
			Month: int32(p.Month),
			Value: p.Value.String(),
		}
		if p.GoalMarker != nil {
			protoPoint.GoalMarker = p.GoalMarker.String()
		}
		protoPoints = append(protoPoints, protoPoint)
	}
	return protoPoints
}

// targetToProto converts an allocation target to a class -> ratio map
func targetToProto(target domain.AllocationTarget) map[string]string {
	ratios := make(map[string]string, len(target.Ratios))
	for _, class := range target.Classes() {
		ratios[string(class)] = target.Ratio(class).String()
	}
	return ratios
}

// targetFromProto parses a class -> ratio map; validation happens in the analyzer
func targetFromProto(ratios map[string]string) (domain.AllocationTarget, error) {
	target := domain.AllocationTarget{Ratios: make(map[domain.InstrumentClass]decimal.Decimal, len(ratios))}
	for class, raw := range ratios {
		ratio, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.AllocationTarget{}, status.Errorf(codes.InvalidArgument, "invalid %s ratio format: %v", class, err)
		}
		target.Ratios[domain.InstrumentClass(class)] = ratio
	}
	return target, nil
}

// snapshotFromProto parses holdings and cash into a snapshot
func snapshotFromProto(holdings []*peekportv1.Holding, cash string) (domain.PortfolioSnapshot, error) {
	snapshot := domain.PortfolioSnapshot{Holdings: make([]domain.Holding, 0, len(holdings))}

	cashAmount, err := optionalDecimal(cash, decimal.Zero)
	if err != nil {
		return snapshot, status.Errorf(codes.InvalidArgument, "invalid cash format: %v", err)
	}
	snapshot.Cash = cashAmount

	for i, h := range holdings {
		if h == nil {
			return snapshot, status.Errorf(codes.InvalidArgument, "holding %d is empty", i)
		}
		holding, err := holdingFromProto(h)
		if err != nil {
			return snapshot, status.Errorf(codes.InvalidArgument, "holding %d: %v", i, err)
		}
		snapshot.Holdings = append(snapshot.Holdings, holding)
	}
	return snapshot, nil
}

func holdingFromProto(h *peekportv1.Holding) (domain.Holding, error) {
	quantity, err := decimal.NewFromString(h.Quantity)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("invalid quantity format: %w", err)
	}
	purchasePrice, err := optionalDecimal(h.PurchasePrice, decimal.Zero)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("invalid purchase_price format: %w", err)
	}
	currentPrice, err := decimal.NewFromString(h.CurrentPrice)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("invalid current_price format: %w", err)
	}

	horizon := domain.Horizon(h.Horizon)
	if horizon == "" {
		horizon = domain.HorizonLong
	}

	return domain.Holding{
		Symbol:        h.Symbol,
		Name:          h.Name,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentPrice:  currentPrice,
		Horizon:       horizon,
	}, nil
}

// holdingTargetsFromProto parses a symbol -> ratio map; nil when empty
func holdingTargetsFromProto(ratios map[string]string) (map[string]decimal.Decimal, error) {
	if len(ratios) == 0 {
		return nil, nil
	}
	targets := make(map[string]decimal.Decimal, len(ratios))
	for symbol, raw := range ratios {
		ratio, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s holding target format: %v", symbol, err)
		}
		targets[symbol] = ratio
	}
	return targets, nil
}

// resultToProto converts a rebalancing result
func resultToProto(result *domain.RebalancingResult) *peekportv1.RebalancingResult {
	recs := make([]*peekportv1.RebalancingRecommendation, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recs = append(recs, &peekportv1.RebalancingRecommendation{
			Action:            string(rec.Action),
			InstrumentClass:   string(rec.InstrumentClass),
			CurrentRatio:      rec.CurrentRatio.String(),
			TargetRatio:       rec.TargetRatio.String(),
			Deviation:         rec.Deviation.String(),
			RecommendedAmount: rec.RecommendedAmount.String(),
			Priority:          int32(rec.Priority),
			Reason:            rec.Reason,
		})
	}

	return &peekportv1.RebalancingResult{
		NeedsRebalancing:  result.NeedsRebalancing,
		Severity:          string(result.Severity),
		TotalValue:        result.TotalValue.String(),
		StockValue:        result.StockValue.String(),
		CashValue:         result.CashValue.String(),
		CurrentStockRatio: result.CurrentStockRatio.String(),
		CurrentCashRatio:  result.CurrentCashRatio.String(),
		TargetStockRatio:  result.TargetStockRatio.String(),
		TargetCashRatio:   result.TargetCashRatio.String(),
		StockDeviation:    result.StockDeviation.String(),
		CashDeviation:     result.CashDeviation.String(),
		TotalDeviation:    result.TotalDeviation.String(),
		StockAdjustment:   result.StockAdjustment.String(),
		Recommendations:   recs,
		EstimatedCost:     result.EstimatedCost.String(),
		CashRequirement:   result.CashRequirement.String(),
		Summary:           result.Summary,
	}
}

// holdingResultToProto converts a per-symbol rebalancing result
func holdingResultToProto(result *domain.HoldingRebalancingResult) *peekportv1.HoldingRebalancingResult {
	recs := make([]*peekportv1.HoldingRecommendation, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recs = append(recs, &peekportv1.HoldingRecommendation{
			Symbol:            rec.Symbol,
			Name:              rec.Name,
			Action:            string(rec.Action),
			CurrentRatio:      rec.CurrentRatio.String(),
			TargetRatio:       rec.TargetRatio.String(),
			Deviation:         rec.Deviation.String(),
			CurrentValue:      rec.CurrentValue.String(),
			TargetValue:       rec.TargetValue.String(),
			CurrentPrice:      rec.CurrentPrice.String(),
			RecommendedShares: rec.RecommendedShares.String(),
			RecommendedAmount: rec.RecommendedAmount.String(),
			Priority:          int32(rec.Priority),
			Reason:            rec.Reason,
		})
	}

	return &peekportv1.HoldingRebalancingResult{
		NeedsRebalancing: result.NeedsRebalancing,
		Severity:         string(result.Severity),
		TotalValue:       result.TotalValue.String(),
		TotalDeviation:   result.TotalDeviation.String(),
		Recommendations:  recs,
		EstimatedCost:    result.EstimatedCost.String(),
		CashRequirement:  result.CashRequirement.String(),
		Summary:          result.Summary,
	}
}

// analysisToProto converts a goal analysis
func analysisToProto(a *goalplan.GoalAnalysis) *peekportv1.GoalAnalysis {
	return &peekportv1.GoalAnalysis{
		GoalId:               a.Goal.ID.String(),
		GoalName:             a.Goal.Name,
		GoalAmount:           a.Goal.Amount.String(),
		MonthsToGoal:         int32(a.Goal.MonthsToGoal),
		RiskLevel:            string(a.RiskLevel),
		AnnualReturnRate:     a.AnnualReturn.String(),
		MonthlyContribution:  a.MonthlyContribution.String(),
		Points:               pointsToProto(a.Projection),
		ProjectedValue:       a.ProjectedValue.String(),
		Probability:          int32(a.Probability),
		Outlook:              string(a.Outlook),
		Horizon:              string(a.Horizon),
		Allocation:           targetToProto(a.RecommendedAllocation),
		Detailed:             targetToProto(a.DetailedAllocation),
		IncreaseContribution: a.IncreaseContribution,
		AlignAllocation:      a.AlignAllocation,
	}
}

// sharesToProto converts a contribution split to a class -> amount map
func sharesToProto(shares []allocator.Share) map[string]string {
	amounts := make(map[string]string, len(shares))
	for _, share := range shares {
		amounts[string(share.Class)] = share.Amount.String()
	}
	return amounts
}

// summaryToProto converts a portfolio summary
func summaryToProto(summary *dashboard.Summary) *peekportv1.PortfolioSummary {
	byHorizon := make(map[string]string, len(summary.ByHorizon))
	for _, hv := range summary.ByHorizon {
		byHorizon[string(hv.Horizon)] = hv.Value.String()
	}

	return &peekportv1.PortfolioSummary{
		PortfolioId:       summary.PortfolioID.String(),
		PortfolioName:     summary.PortfolioName,
		TotalValue:        summary.Total.String(),
		Cash:              summary.Cash.String(),
		HoldingsValue:     summary.HoldingsValue.String(),
		CostBasis:         summary.CostBasis.String(),
		ProfitLoss:        summary.ProfitLoss.String(),
		ProfitLossPercent: summary.ProfitLossPercent.String(),
		ByHorizon:         byHorizon,
	}
}
