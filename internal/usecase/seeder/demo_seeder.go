package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
)

// Fixed UUIDs for the demo records so seeding is idempotent
var (
	DEMO_PORTFOLIO      = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	DEMO_GOAL_HOUSE     = uuid.MustParse("00000000-0000-0000-0000-000000000201")
	DEMO_GOAL_EMERGENCY = uuid.MustParse("00000000-0000-0000-0000-000000000202")
)

// DemoSeeder creates a sample portfolio with goals for local runs
type DemoSeeder struct {
	portfolioRepo domain.PortfolioRepository
	goalRepo      domain.GoalRepository
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(portfolioRepo domain.PortfolioRepository, goalRepo domain.GoalRepository) *DemoSeeder {
	return &DemoSeeder{
		portfolioRepo: portfolioRepo,
		goalRepo:      goalRepo,
	}
}

// DemoPortfolio returns the seeded portfolio: 35,000,000 of stock and
// 30,000,000 of cash with no stored target.
func DemoPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		ID:   DEMO_PORTFOLIO,
		Name: "Demo portfolio",
		Type: domain.PortfolioTypeBalanced,
		Snapshot: domain.PortfolioSnapshot{
			Holdings: []domain.Holding{
				{
					Symbol:        "069500",
					Name:          "KODEX 200",
					Quantity:      decimal.NewFromInt(1_000),
					PurchasePrice: decimal.NewFromInt(30_000),
					CurrentPrice:  decimal.NewFromInt(35_000),
					Horizon:       domain.HorizonLong,
				},
			},
			Cash: decimal.NewFromInt(30_000_000),
		},
	}
}

// DemoGoals returns the goals attached to the demo portfolio
func DemoGoals() []*domain.Goal {
	return []*domain.Goal{
		{
			ID:           DEMO_GOAL_EMERGENCY,
			PortfolioID:  DEMO_PORTFOLIO,
			Name:         "Emergency fund",
			Amount:       decimal.NewFromInt(10_000_000),
			MonthsToGoal: 6,
		},
		{
			ID:           DEMO_GOAL_HOUSE,
			PortfolioID:  DEMO_PORTFOLIO,
			Name:         "House down payment",
			Amount:       decimal.NewFromInt(100_000_000),
			MonthsToGoal: 36,
		},
	}
}

// Seed ensures the demo portfolio and its goals exist.
// Records are created only when the repository reports them missing;
// any other lookup error aborts seeding.
func (s *DemoSeeder) Seed(ctx context.Context) error {
	portfolio := DemoPortfolio()
	_, err := s.portfolioRepo.GetByID(ctx, portfolio.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := portfolio.Validate(); err != nil {
			return err
		}
		if err := s.portfolioRepo.Create(ctx, portfolio); err != nil {
			return fmt.Errorf("failed to seed demo portfolio: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up demo portfolio: %w", err)
	}

	for _, goal := range DemoGoals() {
		_, err := s.goalRepo.GetByID(ctx, goal.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to look up demo goal %s: %w", goal.Name, err)
		}

		if err := goal.Validate(); err != nil {
			return err
		}
		if err := s.goalRepo.Create(ctx, goal); err != nil {
			return fmt.Errorf("failed to seed demo goal %s: %w", goal.Name, err)
		}
	}

	return nil
}
