package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// NetWorthResult represents the value held across every stored portfolio
type NetWorthResult struct {
	Total      decimal.Decimal
	Liquidity  decimal.Decimal
	Equity     decimal.Decimal
	Portfolios int
}

// HorizonValue is the market value of the holdings bought for one horizon
type HorizonValue struct {
	Horizon domain.Horizon
	Value   decimal.Decimal
}

// Summary is the valuation of a single portfolio
type Summary struct {
	PortfolioID   uuid.UUID
	PortfolioName string
	Total         decimal.Decimal
	Cash          decimal.Decimal
	HoldingsValue decimal.Decimal
	CostBasis     decimal.Decimal
	ProfitLoss    decimal.Decimal
	// ProfitLossPercent is ProfitLoss / CostBasis x 100, zero without a cost basis
	ProfitLossPercent decimal.Decimal
	ByHorizon         []HorizonValue
}

// DashboardService handles portfolio valuation
type DashboardService struct {
	PortfolioRepo domain.PortfolioRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(portfolioRepo domain.PortfolioRepository) *DashboardService {
	return &DashboardService{PortfolioRepo: portfolioRepo}
}

// GetNetWorth calculates the total net worth
// Logic:
//   - Liquidity: Sum of the cash of every portfolio
//   - Equity: Sum of the market value of every holding
//   - Total: Liquidity + Equity
func (s *DashboardService) GetNetWorth(ctx context.Context) (*NetWorthResult, error) {
	portfolios, err := s.PortfolioRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	liquidity := decimal.Zero
	equity := decimal.Zero
	for _, p := range portfolios {
		liquidity = liquidity.Add(p.Snapshot.Cash)
		equity = equity.Add(p.Snapshot.HoldingsValue())
	}

	return &NetWorthResult{
		Total:      liquidity.Add(equity),
		Liquidity:  liquidity,
		Equity:     equity,
		Portfolios: len(portfolios),
	}, nil
}

// GetSummary values one portfolio and its unrealised profit or loss
func (s *DashboardService) GetSummary(ctx context.Context, portfolioID uuid.UUID) (*Summary, error) {
	portfolio, err := s.PortfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return Summarize(portfolio), nil
}

// Summarize values a loaded portfolio
func Summarize(portfolio *domain.Portfolio) *Summary {
	snapshot := portfolio.Snapshot

	costBasis := decimal.Zero
	profitLoss := decimal.Zero
	byHorizon := map[domain.Horizon]decimal.Decimal{}
	for _, h := range snapshot.Holdings {
		costBasis = costBasis.Add(h.CostBasis())
		profitLoss = profitLoss.Add(h.ProfitLoss())
		byHorizon[h.Horizon] = byHorizon[h.Horizon].Add(h.Value())
	}

	percent := decimal.Zero
	if costBasis.IsPositive() {
		percent = profitLoss.Div(costBasis).Mul(hundred).Round(2)
	}

	horizons := make([]HorizonValue, 0, len(byHorizon))
	for _, horizon := range []domain.Horizon{domain.HorizonShort, domain.HorizonMid, domain.HorizonLong} {
		if value, ok := byHorizon[horizon]; ok {
			horizons = append(horizons, HorizonValue{Horizon: horizon, Value: value})
		}
	}

	return &Summary{
		PortfolioID:       portfolio.ID,
		PortfolioName:     portfolio.Name,
		Total:             snapshot.TotalValue(),
		Cash:              snapshot.Cash,
		HoldingsValue:     snapshot.HoldingsValue(),
		CostBasis:         costBasis,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: percent,
		ByHorizon:         horizons,
	}
}
