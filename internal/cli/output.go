package cli

import (
	"fmt"
	"io"

	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/allocator"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
	"github.com/peekport/planning-engine/internal/usecase/rebalancer"
)

func printPoints(out io.Writer, points []domain.ProjectionPoint, every int, currency string) {
	if every < 1 {
		every = 1
	}

	fmt.Fprintf(out, "%-7s %22s %22s\n", "Month", "Value", "Goal")
	for i, p := range points {
		if p.Month%every != 0 && i != len(points)-1 {
			continue
		}
		goal := "-"
		if p.GoalMarker != nil {
			goal = rebalancer.FormatAmount(*p.GoalMarker, currency)
		}
		fmt.Fprintf(out, "%-7d %22s %22s\n", p.Month, rebalancer.FormatAmount(p.Value, currency), goal)
	}
}

func printTarget(out io.Writer, label string, target domain.AllocationTarget) {
	fmt.Fprintf(out, "%-19s", label+":")
	for _, class := range target.Classes() {
		fmt.Fprintf(out, "%s %s%%  ", class, target.Ratio(class).StringFixed(1))
	}
	fmt.Fprintln(out)
}

func printShares(out io.Writer, shares []allocator.Share, currency string) {
	fmt.Fprintln(out, "Monthly split:")
	for _, share := range shares {
		fmt.Fprintf(out, "  %-5s %18s\n", share.Class, rebalancer.FormatAmount(share.Amount, currency))
	}
}

func printRebalancing(out io.Writer, result *domain.RebalancingResult, currency string) {
	fmt.Fprintf(out, "Total value:       %s\n", rebalancer.FormatAmount(result.TotalValue, currency))
	fmt.Fprintf(out, "Stock:             %s%% (target %s%%)\n", result.CurrentStockRatio.StringFixed(1), result.TargetStockRatio.StringFixed(1))
	fmt.Fprintf(out, "Cash:              %s%% (target %s%%)\n", result.CurrentCashRatio.StringFixed(1), result.TargetCashRatio.StringFixed(1))
	fmt.Fprintf(out, "Severity:          %s\n", result.Severity)
	fmt.Fprintf(out, "Needs rebalancing: %t\n", result.NeedsRebalancing)
	fmt.Fprintln(out)

	for _, rec := range result.Recommendations {
		fmt.Fprintf(out, "  %d. %-4s %-5s %s\n", rec.Priority, rec.Action, rec.InstrumentClass, rec.Reason)
	}
	if len(result.Recommendations) > 0 {
		fmt.Fprintf(out, "Estimated cost:    %s\n", rebalancer.FormatAmount(result.EstimatedCost, currency))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, result.Summary)
}

func printGoal(out io.Writer, a *goalplan.GoalAnalysis, currency string) {
	fmt.Fprintf(out, "Goal:              %s in %d months\n", rebalancer.FormatAmount(a.Goal.Amount, currency), a.Goal.MonthsToGoal)
	fmt.Fprintf(out, "Projected value:   %s\n", rebalancer.FormatAmount(a.ProjectedValue, currency))
	fmt.Fprintf(out, "Probability:       %d%% (%s)\n", a.Probability, a.Outlook)
	fmt.Fprintf(out, "Horizon:           %s\n", a.Horizon)
	printTarget(out, "Recommended", a.RecommendedAllocation)

	if a.IncreaseContribution {
		fmt.Fprintf(out, "Advice:            consider raising the monthly contribution above %s\n",
			rebalancer.FormatAmount(a.MonthlyContribution, currency))
	}
}
