package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peekport/planning-engine/internal/domain"
)

// MockPortfolioRepository is a mock implementation of PortfolioRepository for testing
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

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		ID:   uuid.New(),
		Name: "Retirement",
		Type: domain.PortfolioTypeBalanced,
		Snapshot: domain.PortfolioSnapshot{
			Holdings: []domain.Holding{
				// value 12,000,000, cost 10,000,000
				{Symbol: "SPY", Quantity: d(100), PurchasePrice: d(100_000), CurrentPrice: d(120_000), Horizon: domain.HorizonLong},
				// value 4,000,000, cost 5,000,000
				{Symbol: "KODEX", Quantity: d(200), PurchasePrice: d(25_000), CurrentPrice: d(20_000), Horizon: domain.HorizonShort},
				// value 1,000,000, cost 1,000,000
				{Symbol: "QQQ", Quantity: d(10), PurchasePrice: d(100_000), CurrentPrice: d(100_000), Horizon: domain.HorizonLong},
			},
			Cash: d(3_000_000),
		},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(testPortfolio())

	assert.Equal(t, "Retirement", summary.PortfolioName)
	assert.True(t, summary.HoldingsValue.Equal(d(17_000_000)), "holdings value, got %s", summary.HoldingsValue)
	assert.True(t, summary.Cash.Equal(d(3_000_000)))
	assert.True(t, summary.Total.Equal(d(20_000_000)), "total, got %s", summary.Total)
	assert.True(t, summary.CostBasis.Equal(d(16_000_000)), "cost basis, got %s", summary.CostBasis)
	assert.True(t, summary.ProfitLoss.Equal(d(1_000_000)), "profit, got %s", summary.ProfitLoss)
	// 1,000,000 / 16,000,000 = 6.25%
	assert.True(t, summary.ProfitLossPercent.Equal(decimal.RequireFromString("6.25")), "percent, got %s", summary.ProfitLossPercent)

	require.Len(t, summary.ByHorizon, 2)
	assert.Equal(t, domain.HorizonShort, summary.ByHorizon[0].Horizon)
	assert.True(t, summary.ByHorizon[0].Value.Equal(d(4_000_000)))
	assert.Equal(t, domain.HorizonLong, summary.ByHorizon[1].Horizon)
	assert.True(t, summary.ByHorizon[1].Value.Equal(d(13_000_000)))
}

func TestSummarize_CashOnly(t *testing.T) {
	portfolio := &domain.Portfolio{
		ID:       uuid.New(),
		Name:     "Savings",
		Snapshot: domain.PortfolioSnapshot{Cash: d(5_000_000)},
	}

	summary := Summarize(portfolio)

	assert.True(t, summary.Total.Equal(d(5_000_000)))
	assert.True(t, summary.ProfitLoss.IsZero())
	assert.True(t, summary.ProfitLossPercent.IsZero())
	assert.Empty(t, summary.ByHorizon)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPortfolioRepository)
	service := NewDashboardService(mockRepo)

	portfolio := testPortfolio()
	mockRepo.On("GetByID", ctx, portfolio.ID).Return(portfolio, nil)

	summary, err := service.GetSummary(ctx, portfolio.ID)

	require.NoError(t, err)
	assert.Equal(t, portfolio.ID, summary.PortfolioID)
	assert.True(t, summary.Total.Equal(d(20_000_000)))
	mockRepo.AssertExpectations(t)
}

func TestGetSummary_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPortfolioRepository)
	service := NewDashboardService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

	summary, err := service.GetSummary(ctx, id)

	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetNetWorth(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPortfolioRepository)
	service := NewDashboardService(mockRepo)

	savings := &domain.Portfolio{ID: uuid.New(), Name: "Savings", Snapshot: domain.PortfolioSnapshot{Cash: d(5_000_000)}}
	mockRepo.On("List", ctx).Return([]*domain.Portfolio{testPortfolio(), savings}, nil)

	result, err := service.GetNetWorth(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Portfolios)
	assert.True(t, result.Liquidity.Equal(d(8_000_000)), "liquidity, got %s", result.Liquidity)
	assert.True(t, result.Equity.Equal(d(17_000_000)), "equity, got %s", result.Equity)
	assert.True(t, result.Total.Equal(d(25_000_000)), "total, got %s", result.Total)
}

func TestGetNetWorth_Empty(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPortfolioRepository)
	service := NewDashboardService(mockRepo)

	mockRepo.On("List", ctx).Return([]*domain.Portfolio{}, nil)

	result, err := service.GetNetWorth(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Portfolios)
	assert.True(t, result.Total.IsZero())
}

func TestGetNetWorth_ListError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPortfolioRepository)
	service := NewDashboardService(mockRepo)

	mockRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

	result, err := service.GetNetWorth(ctx)

	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list portfolios")
}
