package rebalancing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/rebalancer"
)

// PortfolioStatus is the rebalancing verdict for one stored portfolio
type PortfolioStatus struct {
	PortfolioID   uuid.UUID
	PortfolioName string
	// Target is the stored target, or the configured default when none is saved
	Target        domain.AllocationTarget
	DefaultTarget bool
	Result        *domain.RebalancingResult
}

// Service checks stored portfolios against their allocation targets
type Service struct {
	PortfolioRepo domain.PortfolioRepository
	Params        domain.EngineParams

	log zerolog.Logger
}

// NewService creates a new rebalancing Service instance
func NewService(portfolioRepo domain.PortfolioRepository, params domain.EngineParams, log zerolog.Logger) *Service {
	return &Service{
		PortfolioRepo: portfolioRepo,
		Params:        params,
		log:           log.With().Str("service", "rebalancing").Logger(),
	}
}

// SnapshotStatus is the rebalancing verdict for an explicit snapshot
type SnapshotStatus struct {
	Target        domain.AllocationTarget
	DefaultTarget bool
	Result        *domain.RebalancingResult
	// Holdings is set only when per-symbol targets were supplied
	Holdings *domain.HoldingRebalancingResult
}

// AnalyzeSnapshot analyses an explicit snapshot.
// A nil target falls back to the configured default target and sets DefaultTarget.
// Non-empty holdingTargets add a per-symbol analysis next to the stock/cash one.
func (s *Service) AnalyzeSnapshot(
	snapshot domain.PortfolioSnapshot,
	target *domain.AllocationTarget,
	holdingTargets map[string]decimal.Decimal,
) (*SnapshotStatus, error) {
	resolved, isDefault := s.resolveTarget(target)

	result, err := rebalancer.Analyze(snapshot, resolved, s.Params.Rebalancing)
	if err != nil {
		return nil, err
	}

	status := &SnapshotStatus{
		Target:        resolved,
		DefaultTarget: isDefault,
		Result:        result,
	}
	if len(holdingTargets) > 0 {
		status.Holdings, err = rebalancer.AnalyzeHoldings(snapshot, holdingTargets, s.Params.Rebalancing)
		if err != nil {
			return nil, err
		}
	}

	return status, nil
}

// Check loads a portfolio and analyses it against its stored target
func (s *Service) Check(ctx context.Context, portfolioID uuid.UUID) (*PortfolioStatus, error) {
	portfolio, err := s.PortfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	status, err := s.check(portfolio)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("portfolio_id", portfolio.ID.String()).
		Bool("needs_rebalancing", status.Result.NeedsRebalancing).
		Str("severity", string(status.Result.Severity)).
		Msg("Portfolio checked")

	return status, nil
}

// CheckAll analyses every stored portfolio.
// Logic:
//  1. List portfolios (summaries only)
//  2. Load each one with its holdings and analyse it
//  3. A portfolio that vanished between list and load is skipped
func (s *Service) CheckAll(ctx context.Context) ([]*PortfolioStatus, error) {
	summaries, err := s.PortfolioRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	statuses := make([]*PortfolioStatus, 0, len(summaries))
	flagged := 0
	for _, summary := range summaries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := s.Check(ctx, summary.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.Warn().Str("portfolio_id", summary.ID.String()).Msg("Portfolio disappeared during check")
				continue
			}
			return nil, fmt.Errorf("portfolio %s: %w", summary.ID, err)
		}
		if status.Result.NeedsRebalancing {
			flagged++
		}
		statuses = append(statuses, status)
	}

	s.log.Info().
		Int("portfolios", len(statuses)).
		Int("needs_rebalancing", flagged).
		Msg("Rebalancing check completed")

	return statuses, nil
}

func (s *Service) check(portfolio *domain.Portfolio) (*PortfolioStatus, error) {
	target, isDefault := s.resolveTarget(portfolio.Target)

	result, err := rebalancer.Analyze(portfolio.Snapshot, target, s.Params.Rebalancing)
	if err != nil {
		return nil, err
	}

	return &PortfolioStatus{
		PortfolioID:   portfolio.ID,
		PortfolioName: portfolio.Name,
		Target:        target,
		DefaultTarget: isDefault,
		Result:        result,
	}, nil
}

// resolveTarget returns target, or the configured default and true when target is nil
func (s *Service) resolveTarget(target *domain.AllocationTarget) (domain.AllocationTarget, bool) {
	if target == nil {
		return s.Params.DefaultTarget, true
	}
	return *target, false
}
