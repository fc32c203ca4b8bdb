package goalplan

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/advisor"
	"github.com/peekport/planning-engine/internal/usecase/probability"
	"github.com/peekport/planning-engine/internal/usecase/projector"
)

// EvaluateInput represents the explicit inputs of one goal analysis
type EvaluateInput struct {
	CurrentTotal        decimal.Decimal
	MonthlyContribution decimal.Decimal
	RiskLevel           domain.RiskLevel
	Goal                domain.Goal
	// CurrentTarget is the portfolio's stored target, nil when none is saved
	CurrentTarget *domain.AllocationTarget
}

// GoalAnalysis bundles everything the goal view renders for one goal
type GoalAnalysis struct {
	Goal                domain.Goal
	RiskLevel           domain.RiskLevel
	AnnualReturn        decimal.Decimal
	MonthlyContribution decimal.Decimal

	Projection     []domain.ProjectionPoint
	ProjectedValue decimal.Decimal // value at the goal month
	Probability    int
	Outlook        domain.Outlook

	Horizon               domain.Horizon
	DetailedAllocation    domain.AllocationTarget
	RecommendedAllocation domain.AllocationTarget

	// IncreaseContribution is set while the contribution is below the advice threshold
	IncreaseContribution bool
	// AlignAllocation is set when the stored target differs from the recommended one
	AlignAllocation bool
}

// AnalyzeGoalInput represents a request to analyse a stored goal
type AnalyzeGoalInput struct {
	PortfolioID uuid.UUID
	GoalID      uuid.UUID
	// MonthlyContribution defaults to the configured contribution when nil
	MonthlyContribution *decimal.Decimal
	// RiskLevel defaults to the portfolio type's tier when empty
	RiskLevel domain.RiskLevel
}

// Service composes the projector, advisor and estimator for portfolio goals
type Service struct {
	PortfolioRepo domain.PortfolioRepository
	GoalRepo      domain.GoalRepository
	Params        domain.EngineParams

	log zerolog.Logger
}

// NewService creates a new goal planning Service instance
func NewService(
	portfolioRepo domain.PortfolioRepository,
	goalRepo domain.GoalRepository,
	params domain.EngineParams,
	log zerolog.Logger,
) *Service {
	return &Service{
		PortfolioRepo: portfolioRepo,
		GoalRepo:      goalRepo,
		Params:        params,
		log:           log.With().Str("service", "goalplan").Logger(),
	}
}

// Evaluate runs the goal analysis on explicit inputs.
// Logic:
//  1. Resolve the annual return of the risk tier
//  2. Project over max(SimulationMonths, MonthsToGoal) so the goal month is always covered
//  3. Estimate the probability from the value at the goal month
//  4. Recommend the horizon allocation and derive the advice flags
func (s *Service) Evaluate(input EvaluateInput) (*GoalAnalysis, error) {
	if err := input.Goal.Validate(); err != nil {
		return nil, err
	}

	annualReturn, err := projector.AnnualReturn(input.RiskLevel, s.Params.ReturnRates)
	if err != nil {
		return nil, err
	}

	months := max(s.Params.SimulationMonths, input.Goal.MonthsToGoal)
	points, err := projector.Project(
		input.CurrentTotal,
		input.MonthlyContribution,
		annualReturn,
		months,
		input.Goal.Amount,
		input.Goal.MonthsToGoal,
	)
	if err != nil {
		return nil, err
	}

	projected := projector.ValueAt(points, input.Goal.MonthsToGoal)
	percent, err := probability.Estimate(projected, input.Goal.Amount)
	if err != nil {
		return nil, err
	}

	band, err := advisor.HorizonFor(input.Goal.MonthsToGoal, s.Params.Bands)
	if err != nil {
		return nil, err
	}
	recommended := band.Split.Collapse()

	analysis := &GoalAnalysis{
		Goal:                  input.Goal,
		RiskLevel:             input.RiskLevel,
		AnnualReturn:          annualReturn,
		MonthlyContribution:   input.MonthlyContribution,
		Projection:            points,
		ProjectedValue:        projected,
		Probability:           percent,
		Outlook:               probability.Outlook(percent),
		Horizon:               band.Horizon,
		DetailedAllocation:    band.Split,
		RecommendedAllocation: recommended,
		IncreaseContribution:  input.MonthlyContribution.LessThan(s.Params.ContributionAdviceThreshold),
	}
	if input.CurrentTarget != nil {
		analysis.AlignAllocation = !input.CurrentTarget.Collapse().Equal(recommended, s.Params.Rebalancing.RatioTolerance)
	}

	return analysis, nil
}

// AnalyzeGoal loads the portfolio and goal and evaluates them
func (s *Service) AnalyzeGoal(ctx context.Context, input AnalyzeGoalInput) (*GoalAnalysis, error) {
	portfolio, err := s.PortfolioRepo.GetByID(ctx, input.PortfolioID)
	if err != nil {
		return nil, err
	}

	goal, err := s.GoalRepo.GetByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	if goal.PortfolioID != portfolio.ID {
		return nil, domain.InvalidInputf("goal %s does not belong to portfolio %s", goal.ID, portfolio.ID)
	}

	analysis, err := s.Evaluate(s.evaluateInput(portfolio, goal, input))
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("portfolio_id", portfolio.ID.String()).
		Str("goal_id", goal.ID.String()).
		Int("probability", analysis.Probability).
		Str("outlook", string(analysis.Outlook)).
		Msg("Goal analysed")

	return analysis, nil
}

// AnalyzeGoals evaluates every goal of a portfolio concurrently.
// Results keep the repository order; the first failure is returned.
func (s *Service) AnalyzeGoals(ctx context.Context, portfolioID uuid.UUID, contribution *decimal.Decimal, risk domain.RiskLevel) ([]*GoalAnalysis, error) {
	portfolio, err := s.PortfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	goals, err := s.GoalRepo.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	results := make([]*GoalAnalysis, len(goals))
	errs := make([]error, len(goals))

	var wg sync.WaitGroup
	for i, goal := range goals {
		wg.Add(1)
		go func(i int, goal *domain.Goal) {
			defer wg.Done()
			input := AnalyzeGoalInput{PortfolioID: portfolioID, GoalID: goal.ID, MonthlyContribution: contribution, RiskLevel: risk}
			results[i], errs[i] = s.Evaluate(s.evaluateInput(portfolio, goal, input))
		}(i, goal)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("goal %s: %w", goals[i].ID, err)
		}
	}

	s.log.Debug().
		Str("portfolio_id", portfolioID.String()).
		Int("goals", len(results)).
		Msg("Portfolio goals analysed")

	return results, nil
}

// evaluateInput fills request defaults from the portfolio and configuration
func (s *Service) evaluateInput(portfolio *domain.Portfolio, goal *domain.Goal, input AnalyzeGoalInput) EvaluateInput {
	contribution := s.Params.DefaultMonthlyContribution
	if input.MonthlyContribution != nil {
		contribution = *input.MonthlyContribution
	}

	risk := input.RiskLevel
	if risk == "" {
		risk = portfolio.Type.RiskLevel()
	}

	return EvaluateInput{
		CurrentTotal:        portfolio.Snapshot.TotalValue(),
		MonthlyContribution: contribution,
		RiskLevel:           risk,
		Goal:                *goal,
		CurrentTarget:       portfolio.Target,
	}
}
