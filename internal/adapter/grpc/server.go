package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	peekportv1 "github.com/peekport/planning-engine/internal/adapter/grpc/peekport/v1"
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/advisor"
	"github.com/peekport/planning-engine/internal/usecase/allocator"
	"github.com/peekport/planning-engine/internal/usecase/dashboard"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
	"github.com/peekport/planning-engine/internal/usecase/probability"
	"github.com/peekport/planning-engine/internal/usecase/projector"
	"github.com/peekport/planning-engine/internal/usecase/rebalancing"
)

// Server implements the PlanningService gRPC server
type Server struct {
	peekportv1.UnimplementedPlanningServiceServer

	Params             domain.EngineParams
	GoalPlanService    *goalplan.Service
	RebalancingService *rebalancing.Service
	DashboardService   *dashboard.DashboardService
}

// NewServer creates a new gRPC server instance
func NewServer(
	params domain.EngineParams,
	goalPlanService *goalplan.Service,
	rebalancingService *rebalancing.Service,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		Params:             params,
		GoalPlanService:    goalPlanService,
		RebalancingService: rebalancingService,
		DashboardService:   dashboardService,
	}
}

// NewGRPCServer builds a grpc.Server with recovery, logging and auth
// interceptors and the PlanningService registered.
func NewGRPCServer(srv *Server, apiToken string, log zerolog.Logger) *grpclib.Server {
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			RecoveryInterceptor(log),
			LoggingInterceptor(log),
			AuthInterceptor(apiToken),
		),
	)
	peekportv1.RegisterPlanningServiceServer(grpcServer, srv)
	return grpcServer
}

// ProjectGrowth handles the ProjectGrowth RPC
func (s *Server) ProjectGrowth(ctx context.Context, req *peekportv1.ProjectGrowthRequest) (*peekportv1.ProjectGrowthResponse, error) {
	currentTotal, err := decimal.NewFromString(req.CurrentTotal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid current_total format: %v", err)
	}

	contribution, err := optionalDecimal(req.MonthlyContribution, s.Params.DefaultMonthlyContribution)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_contribution format: %v", err)
	}

	goalAmount, err := optionalDecimal(req.GoalAmount, decimal.Zero)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid goal_amount format: %v", err)
	}

	// An explicit rate wins over the risk tier
	var rate decimal.Decimal
	if req.AnnualReturnRate != "" {
		rate, err = decimal.NewFromString(req.AnnualReturnRate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid annual_return_rate format: %v", err)
		}
	} else {
		level, err := domain.ParseRiskLevel(req.RiskLevel)
		if err != nil {
			return nil, mapError(err)
		}
		rate, err = projector.AnnualReturn(level, s.Params.ReturnRates)
		if err != nil {
			return nil, mapError(err)
		}
	}

	points, err := projector.Project(currentTotal, contribution, rate, int(req.Months), goalAmount, int(req.GoalMonth))
	if err != nil {
		return nil, mapError(err)
	}

	return &peekportv1.ProjectGrowthResponse{
		AnnualReturnRate: rate.String(),
		MonthlyRate:      projector.MonthlyRate(rate).String(),
		Points:           pointsToProto(points),
	}, nil
}

// RecommendAllocation handles the RecommendAllocation RPC
func (s *Server) RecommendAllocation(ctx context.Context, req *peekportv1.RecommendAllocationRequest) (*peekportv1.RecommendAllocationResponse, error) {
	band, err := advisor.HorizonFor(int(req.MonthsToGoal), s.Params.Bands)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &peekportv1.RecommendAllocationResponse{
		Horizon:    string(band.Horizon),
		Allocation: targetToProto(band.Split.Collapse()),
		Detailed:   targetToProto(band.Split),
	}

	if req.MonthlyContribution != "" {
		contribution, err := decimal.NewFromString(req.MonthlyContribution)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_contribution format: %v", err)
		}
		shares, err := allocator.SplitContribution(contribution, band.Split)
		if err != nil {
			return nil, mapError(err)
		}
		resp.ContributionSplit = sharesToProto(shares)
	}

	return resp, nil
}

// EstimateProbability handles the EstimateProbability RPC
func (s *Server) EstimateProbability(ctx context.Context, req *peekportv1.EstimateProbabilityRequest) (*peekportv1.EstimateProbabilityResponse, error) {
	projected, err := decimal.NewFromString(req.ProjectedValue)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid projected_value format: %v", err)
	}

	goalAmount, err := decimal.NewFromString(req.GoalAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid goal_amount format: %v", err)
	}

	percent, err := probability.Estimate(projected, goalAmount)
	if err != nil {
		return nil, mapError(err)
	}

	return &peekportv1.EstimateProbabilityResponse{
		Probability: int32(percent),
		Outlook:     string(probability.Outlook(percent)),
	}, nil
}

// AnalyzeRebalancing handles the AnalyzeRebalancing RPC
func (s *Server) AnalyzeRebalancing(ctx context.Context, req *peekportv1.AnalyzeRebalancingRequest) (*peekportv1.AnalyzeRebalancingResponse, error) {
	snapshot, err := snapshotFromProto(req.Holdings, req.Cash)
	if err != nil {
		return nil, err
	}

	var target *domain.AllocationTarget
	if len(req.Target) > 0 {
		parsed, err := targetFromProto(req.Target)
		if err != nil {
			return nil, err
		}
		target = &parsed
	}

	holdingTargets, err := holdingTargetsFromProto(req.HoldingTargets)
	if err != nil {
		return nil, err
	}

	snapshotStatus, err := s.RebalancingService.AnalyzeSnapshot(snapshot, target, holdingTargets)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &peekportv1.AnalyzeRebalancingResponse{
		Result:        resultToProto(snapshotStatus.Result),
		Target:        targetToProto(snapshotStatus.Target),
		DefaultTarget: snapshotStatus.DefaultTarget,
		AnalyzedAt:    timestamppb.Now(),
	}
	if snapshotStatus.Holdings != nil {
		resp.Holdings = holdingResultToProto(snapshotStatus.Holdings)
	}
	return resp, nil
}

// CheckPortfolio handles the CheckPortfolio RPC
func (s *Server) CheckPortfolio(ctx context.Context, req *peekportv1.CheckPortfolioRequest) (*peekportv1.CheckPortfolioResponse, error) {
	portfolioID, err := uuid.Parse(req.PortfolioId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid portfolio_id format: %v", err)
	}

	portfolioStatus, err := s.RebalancingService.Check(ctx, portfolioID)
	if err != nil {
		return nil, mapError(err)
	}

	return &peekportv1.CheckPortfolioResponse{
		PortfolioId:   portfolioStatus.PortfolioID.String(),
		PortfolioName: portfolioStatus.PortfolioName,
		Target:        targetToProto(portfolioStatus.Target),
		DefaultTarget: portfolioStatus.DefaultTarget,
		Result:        resultToProto(portfolioStatus.Result),
	}, nil
}

// AnalyzeGoal handles the AnalyzeGoal RPC
func (s *Server) AnalyzeGoal(ctx context.Context, req *peekportv1.AnalyzeGoalRequest) (*peekportv1.AnalyzeGoalResponse, error) {
	portfolioID, err := uuid.Parse(req.PortfolioId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid portfolio_id format: %v", err)
	}

	goalID, err := uuid.Parse(req.GoalId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid goal_id format: %v", err)
	}

	contribution, risk, err := goalOverrides(req.MonthlyContribution, req.RiskLevel)
	if err != nil {
		return nil, err
	}

	analysis, err := s.GoalPlanService.AnalyzeGoal(ctx, goalplan.AnalyzeGoalInput{
		PortfolioID:         portfolioID,
		GoalID:              goalID,
		MonthlyContribution: contribution,
		RiskLevel:           risk,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &peekportv1.AnalyzeGoalResponse{Analysis: analysisToProto(analysis)}, nil
}

// ListGoalAnalyses handles the ListGoalAnalyses RPC
func (s *Server) ListGoalAnalyses(ctx context.Context, req *peekportv1.ListGoalAnalysesRequest) (*peekportv1.ListGoalAnalysesResponse, error) {
	portfolioID, err := uuid.Parse(req.PortfolioId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid portfolio_id format: %v", err)
	}

	contribution, risk, err := goalOverrides(req.MonthlyContribution, req.RiskLevel)
	if err != nil {
		return nil, err
	}

	analyses, err := s.GoalPlanService.AnalyzeGoals(ctx, portfolioID, contribution, risk)
	if err != nil {
		return nil, mapError(err)
	}

	protoAnalyses := make([]*peekportv1.GoalAnalysis, 0, len(analyses))
	for _, a := range analyses {
		protoAnalyses = append(protoAnalyses, analysisToProto(a))
	}

	return &peekportv1.ListGoalAnalysesResponse{Analyses: protoAnalyses}, nil
}

// GetPortfolioSummary handles the GetPortfolioSummary RPC
func (s *Server) GetPortfolioSummary(ctx context.Context, req *peekportv1.GetPortfolioSummaryRequest) (*peekportv1.GetPortfolioSummaryResponse, error) {
	portfolioID, err := uuid.Parse(req.PortfolioId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid portfolio_id format: %v", err)
	}

	summary, err := s.DashboardService.GetSummary(ctx, portfolioID)
	if err != nil {
		return nil, mapError(err)
	}

	return &peekportv1.GetPortfolioSummaryResponse{Summary: summaryToProto(summary)}, nil
}

// GetNetWorth handles the GetNetWorth RPC
func (s *Server) GetNetWorth(ctx context.Context, req *peekportv1.GetNetWorthRequest) (*peekportv1.GetNetWorthResponse, error) {
	result, err := s.DashboardService.GetNetWorth(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &peekportv1.GetNetWorthResponse{
		Total:      result.Total.String(),
		Liquidity:  result.Liquidity.String(),
		Equity:     result.Equity.String(),
		Portfolios: int32(result.Portfolios),
		AsOf:       timestamppb.Now(),
	}, nil
}

// goalOverrides parses the optional contribution and risk level of a goal request.
// Empty values stay unset so the service applies its defaults.
func goalOverrides(contribution, riskLevel string) (*decimal.Decimal, domain.RiskLevel, error) {
	var amount *decimal.Decimal
	if contribution != "" {
		parsed, err := decimal.NewFromString(contribution)
		if err != nil {
			return nil, "", status.Errorf(codes.InvalidArgument, "invalid monthly_contribution format: %v", err)
		}
		amount = &parsed
	}

	var risk domain.RiskLevel
	if riskLevel != "" {
		parsed, err := domain.ParseRiskLevel(riskLevel)
		if err != nil {
			return nil, "", mapError(err)
		}
		risk = parsed
	}

	return amount, risk, nil
}

// optionalDecimal parses s, returning fallback when s is empty
func optionalDecimal(s string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if s == "" {
		return fallback, nil
	}
	return decimal.NewFromString(s)
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
