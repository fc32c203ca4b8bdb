package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/peekport/planning-engine/internal/domain"
)

// MockPortfolioRepository is a mock implementation of PortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) List(ctx context.Context) ([]*domain.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) Create(ctx context.Context, portfolio *domain.Portfolio) error {
	args := m.Called(ctx, portfolio)
	return args.Error(0)
}

// MockGoalRepository is a mock implementation of GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Goal, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func TestDemoSeeder_Seed_RecordsMissing(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	goalRepo := new(MockGoalRepository)
	seeder := NewDemoSeeder(portfolioRepo, goalRepo)

	portfolioRepo.On("GetByID", ctx, DEMO_PORTFOLIO).Return(nil, domain.ErrNotFound)
	goalRepo.On("GetByID", ctx, DEMO_GOAL_HOUSE).Return(nil, domain.ErrNotFound)
	goalRepo.On("GetByID", ctx, DEMO_GOAL_EMERGENCY).Return(nil, domain.ErrNotFound)

	portfolioRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Portfolio) bool {
		return p.ID == DEMO_PORTFOLIO &&
			p.Target == nil &&
			p.Snapshot.TotalValue().Equal(decimal.NewFromInt(65_000_000))
	})).Return(nil)
	goalRepo.On("Create", ctx, mock.MatchedBy(func(g *domain.Goal) bool {
		return g.ID == DEMO_GOAL_HOUSE && g.MonthsToGoal == 36 && g.PortfolioID == DEMO_PORTFOLIO
	})).Return(nil)
	goalRepo.On("Create", ctx, mock.MatchedBy(func(g *domain.Goal) bool {
		return g.ID == DEMO_GOAL_EMERGENCY && g.MonthsToGoal == 6
	})).Return(nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	portfolioRepo.AssertExpectations(t)
	goalRepo.AssertExpectations(t)
}

func TestDemoSeeder_Seed_AlreadySeeded(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	goalRepo := new(MockGoalRepository)
	seeder := NewDemoSeeder(portfolioRepo, goalRepo)

	portfolioRepo.On("GetByID", ctx, DEMO_PORTFOLIO).Return(DemoPortfolio(), nil)
	for _, g := range DemoGoals() {
		goalRepo.On("GetByID", ctx, g.ID).Return(g, nil)
	}

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	portfolioRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	goalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDemoSeeder_Seed_LookupFails(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	goalRepo := new(MockGoalRepository)
	seeder := NewDemoSeeder(portfolioRepo, goalRepo)

	portfolioRepo.On("GetByID", ctx, DEMO_PORTFOLIO).Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up demo portfolio")
	portfolioRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDemoSeeder_Seed_CreateFails(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	goalRepo := new(MockGoalRepository)
	seeder := NewDemoSeeder(portfolioRepo, goalRepo)

	portfolioRepo.On("GetByID", ctx, DEMO_PORTFOLIO).Return(DemoPortfolio(), nil)
	goalRepo.On("GetByID", ctx, DEMO_GOAL_EMERGENCY).Return(nil, domain.ErrNotFound)
	goalRepo.On("Create", ctx, mock.Anything).Return(errors.New("duplicate key"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed demo goal Emergency fund")
}
