// Package cli implements peekctl, an offline front end to the planning engine.
// Every command computes locally from flags; no server or database is needed.
package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/peekport/planning-engine/internal/config"
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/advisor"
	"github.com/peekport/planning-engine/internal/usecase/allocator"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
	"github.com/peekport/planning-engine/internal/usecase/probability"
	"github.com/peekport/planning-engine/internal/usecase/projector"
	"github.com/peekport/planning-engine/internal/usecase/rebalancer"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Populated from the environment before any subcommand runs
	params := domain.DefaultEngineParams()

	rootCmd := &cobra.Command{
		Use:   "peekctl",
		Short: "peekctl - portfolio projection and rebalancing calculator",
		Long: `peekctl runs the planning engine locally: growth projections, horizon based
allocation advice, goal probability and stock/cash rebalancing checks.
Engine parameters can be overridden with the same environment variables as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			params = cfg.Engine
			return nil
		},
	}

	rootCmd.AddCommand(newProjectCmd(&params))
	rootCmd.AddCommand(newAllocateCmd(&params))
	rootCmd.AddCommand(newProbabilityCmd())
	rootCmd.AddCommand(newRebalanceCmd(&params))
	rootCmd.AddCommand(newGoalCmd(&params))

	return rootCmd
}

// newProjectCmd creates the project command
func newProjectCmd(params *domain.EngineParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project portfolio growth month by month",
		Long: `Project the portfolio value with monthly compounding and contributions.
Example: peekctl project --total=65000000 --contribution=500000 --risk=moderate --months=60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := decimalFlag(cmd, "total")
			if err != nil {
				return err
			}
			contribution, err := decimalFlag(cmd, "contribution")
			if err != nil {
				return err
			}
			goal, err := decimalFlag(cmd, "goal")
			if err != nil {
				return err
			}
			riskName, _ := cmd.Flags().GetString("risk")
			months, _ := cmd.Flags().GetInt("months")
			goalMonth, _ := cmd.Flags().GetInt("goal-month")
			every, _ := cmd.Flags().GetInt("every")

			risk, err := domain.ParseRiskLevel(riskName)
			if err != nil {
				return err
			}
			rate, err := projector.AnnualReturn(risk, params.ReturnRates)
			if err != nil {
				return err
			}

			points, err := projector.Project(total, contribution, rate, months, goal, goalMonth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			currency := params.Rebalancing.Currency
			fmt.Fprintf(out, "Risk level:        %s (%s%% a year)\n", risk, rate.Shift(2).String())
			fmt.Fprintf(out, "Monthly rate:      %s\n", projector.MonthlyRate(rate).StringFixed(6))
			fmt.Fprintln(out)
			printPoints(out, points, every, currency)
			return nil
		},
	}

	cmd.Flags().String("total", "0", "Current portfolio total")
	cmd.Flags().String("contribution", "500000", "Monthly contribution")
	cmd.Flags().String("risk", "moderate", "Risk level: conservative, moderate or aggressive")
	cmd.Flags().Int("months", 60, "Number of months to simulate")
	cmd.Flags().String("goal", "0", "Goal amount marked on the projection")
	cmd.Flags().Int("goal-month", 0, "Month the goal marker starts")
	cmd.Flags().Int("every", 12, "Print every Nth month (the last month is always printed)")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

// newAllocateCmd creates the allocate command
func newAllocateCmd(params *domain.EngineParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Recommend an allocation for a goal horizon",
		Long: `Recommend the stock/bond/cash split for a goal that many months away.
With --contribution the monthly amount is divided along the same split.
Example: peekctl allocate --months=24 --contribution=500000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			months, _ := cmd.Flags().GetInt("months")

			band, err := advisor.HorizonFor(months, params.Bands)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Horizon:           %s\n", band.Horizon)
			printTarget(out, "Detailed", band.Split)
			printTarget(out, "Stock/cash", band.Split.Collapse())

			if !cmd.Flags().Changed("contribution") {
				return nil
			}
			contribution, err := decimalFlag(cmd, "contribution")
			if err != nil {
				return err
			}
			shares, err := allocator.SplitContribution(contribution, band.Split)
			if err != nil {
				return err
			}
			printShares(out, shares, params.Rebalancing.Currency)
			return nil
		},
	}

	cmd.Flags().Int("months", 0, "Months until the goal")
	cmd.Flags().String("contribution", "", "Monthly contribution to split across the classes")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}

// newProbabilityCmd creates the probability command
func newProbabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Estimate the likelihood of reaching a goal",
		Long: `Estimate the goal attainment percent from a projected value.
Example: peekctl probability --projected=110000000 --goal=100000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projected, err := decimalFlag(cmd, "projected")
			if err != nil {
				return err
			}
			goal, err := decimalFlag(cmd, "goal")
			if err != nil {
				return err
			}

			percent, err := probability.Estimate(projected, goal)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Probability:       %d%% (%s)\n", percent, probability.Outlook(percent))
			return nil
		},
	}

	cmd.Flags().String("projected", "", "Projected value at the goal month")
	cmd.Flags().String("goal", "", "Goal amount")
	_ = cmd.MarkFlagRequired("projected")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

// newRebalanceCmd creates the rebalance command
func newRebalanceCmd(params *domain.EngineParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Check a stock/cash split against a target",
		Long: `Compare current stock and cash values with a target split and size the trades.
Example: peekctl rebalance --stock=8500000 --cash=1500000 --target-stock=70`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := decimalFlag(cmd, "stock")
			if err != nil {
				return err
			}
			cash, err := decimalFlag(cmd, "cash")
			if err != nil {
				return err
			}

			target := params.DefaultTarget
			if cmd.Flags().Changed("target-stock") {
				targetStock, err := decimalFlag(cmd, "target-stock")
				if err != nil {
					return err
				}
				target = domain.NewAllocationTarget(targetStock, decimal.NewFromInt(100).Sub(targetStock))
			}

			snapshot := domain.PortfolioSnapshot{
				Holdings: []domain.Holding{{
					Symbol:        "STOCK",
					Quantity:      decimal.NewFromInt(1),
					PurchasePrice: stock,
					CurrentPrice:  stock,
					Horizon:       domain.HorizonLong,
				}},
				Cash: cash,
			}

			result, err := rebalancer.Analyze(snapshot, target, params.Rebalancing)
			if err != nil {
				return err
			}

			printRebalancing(cmd.OutOrStdout(), result, params.Rebalancing.Currency)
			return nil
		},
	}

	cmd.Flags().String("stock", "0", "Current stock value")
	cmd.Flags().String("cash", "0", "Current cash value")
	cmd.Flags().String("target-stock", "", "Target stock ratio in percent (cash is the remainder)")

	return cmd
}

// newGoalCmd creates the goal command
func newGoalCmd(params *domain.EngineParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Analyse a savings goal end to end",
		Long: `Project the portfolio, estimate the goal probability and recommend an allocation.
Example: peekctl goal --total=65000000 --amount=100000000 --months=36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := decimalFlag(cmd, "total")
			if err != nil {
				return err
			}
			amount, err := decimalFlag(cmd, "amount")
			if err != nil {
				return err
			}
			contribution := params.DefaultMonthlyContribution
			if cmd.Flags().Changed("contribution") {
				if contribution, err = decimalFlag(cmd, "contribution"); err != nil {
					return err
				}
			}
			riskName, _ := cmd.Flags().GetString("risk")
			months, _ := cmd.Flags().GetInt("months")

			risk, err := domain.ParseRiskLevel(riskName)
			if err != nil {
				return err
			}

			service := goalplan.NewService(nil, nil, *params, zerolog.Nop())
			analysis, err := service.Evaluate(goalplan.EvaluateInput{
				CurrentTotal:        total,
				MonthlyContribution: contribution,
				RiskLevel:           risk,
				Goal: domain.Goal{
					ID:           uuid.New(),
					Name:         "goal",
					Amount:       amount,
					MonthsToGoal: months,
				},
			})
			if err != nil {
				return err
			}

			printGoal(cmd.OutOrStdout(), analysis, params.Rebalancing.Currency)
			return nil
		},
	}

	cmd.Flags().String("total", "0", "Current portfolio total")
	cmd.Flags().String("amount", "", "Goal amount")
	cmd.Flags().String("contribution", "", "Monthly contribution (configured default when omitted)")
	cmd.Flags().String("risk", "moderate", "Risk level: conservative, moderate or aggressive")
	cmd.Flags().Int("months", 0, "Months until the goal")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}

// decimalFlag parses a string flag as a decimal
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s value %q: %w", name, raw, err)
	}
	return d, nil
}
