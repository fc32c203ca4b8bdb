package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	peekportv1 "github.com/peekport/planning-engine/internal/adapter/grpc/peekport/v1"
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/dashboard"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
	"github.com/peekport/planning-engine/internal/usecase/rebalancing"
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

// MockGoalRepository is a mock implementation of GoalRepository for testing
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

func newTestServer() (*Server, *MockPortfolioRepository, *MockGoalRepository) {
	portfolioRepo := new(MockPortfolioRepository)
	goalRepo := new(MockGoalRepository)
	params := domain.DefaultEngineParams()
	return NewServer(
		params,
		goalplan.NewService(portfolioRepo, goalRepo, params, zerolog.Nop()),
		rebalancing.NewService(portfolioRepo, params, zerolog.Nop()),
		dashboard.NewDashboardService(portfolioRepo),
	), portfolioRepo, goalRepo
}

func stockHeavyPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		ID:   uuid.New(),
		Name: "Growth",
		Type: domain.PortfolioTypeAggressive,
		Snapshot: domain.PortfolioSnapshot{
			Holdings: []domain.Holding{{
				Symbol:        "QQQ",
				Quantity:      decimal.NewFromInt(10),
				PurchasePrice: decimal.NewFromInt(700_000),
				CurrentPrice:  decimal.NewFromInt(850_000),
				Horizon:       domain.HorizonLong,
			}},
			Cash: decimal.NewFromInt(1_500_000),
		},
	}
}

func assertCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "error should be a gRPC status")
	assert.Equal(t, code, st.Code())
}

func TestServer_ProjectGrowth(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.ProjectGrowth(context.Background(), &peekportv1.ProjectGrowthRequest{
		CurrentTotal:        "65000000",
		MonthlyContribution: "500000",
		RiskLevel:           "moderate",
		Months:              60,
		GoalAmount:          "100000000",
		GoalMonth:           36,
	})

	require.NoError(t, err)
	assert.Equal(t, "0.07", resp.AnnualReturnRate)
	require.Len(t, resp.Points, 61)
	assert.Equal(t, "65000000", resp.Points[0].Value)
	assert.Empty(t, resp.Points[35].GoalMarker)
	assert.Equal(t, "100000000", resp.Points[36].GoalMarker)
}

func TestServer_ProjectGrowth_ExplicitRate(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.ProjectGrowth(context.Background(), &peekportv1.ProjectGrowthRequest{
		CurrentTotal:     "1000",
		AnnualReturnRate: "0",
		Months:           2,
	})

	require.NoError(t, err)
	require.Len(t, resp.Points, 3)
	// empty contribution falls back to the configured 500,000
	assert.Equal(t, "1001000", resp.Points[2].Value)
}

func TestServer_ProjectGrowth_InvalidArgument(t *testing.T) {
	server, _, _ := newTestServer()

	tests := []struct {
		name string
		req  *peekportv1.ProjectGrowthRequest
	}{
		{name: "Bad total", req: &peekportv1.ProjectGrowthRequest{CurrentTotal: "lots", Months: 1}},
		{name: "Unknown risk level", req: &peekportv1.ProjectGrowthRequest{CurrentTotal: "1", RiskLevel: "yolo", Months: 1}},
		{name: "Negative months", req: &peekportv1.ProjectGrowthRequest{CurrentTotal: "1", Months: -1}},
		{name: "Months beyond cap", req: &peekportv1.ProjectGrowthRequest{CurrentTotal: "1", Months: 5_000_000}},
		{name: "One month past cap", req: &peekportv1.ProjectGrowthRequest{CurrentTotal: "1", Months: domain.MaxSimulationMonths + 1}},
		{name: "Rate out of range", req: &peekportv1.ProjectGrowthRequest{CurrentTotal: "1", AnnualReturnRate: "1.5", Months: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := server.ProjectGrowth(context.Background(), tt.req)
			assertCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestServer_RecommendAllocation(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.RecommendAllocation(context.Background(), &peekportv1.RecommendAllocationRequest{MonthsToGoal: 24})

	require.NoError(t, err)
	assert.Equal(t, "mid", resp.Horizon)
	assert.Equal(t, map[string]string{"stock": "50", "cash": "50"}, resp.Allocation)
	assert.Equal(t, map[string]string{"stock": "50", "bond": "40", "cash": "10"}, resp.Detailed)

	assert.Empty(t, resp.ContributionSplit)

	_, err = server.RecommendAllocation(context.Background(), &peekportv1.RecommendAllocationRequest{MonthsToGoal: -1})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_RecommendAllocation_ContributionSplit(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.RecommendAllocation(context.Background(), &peekportv1.RecommendAllocationRequest{
		MonthsToGoal:        24,
		MonthlyContribution: "1000000",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"stock": "500000", "bond": "400000", "cash": "100000"}, resp.ContributionSplit)

	_, err = server.RecommendAllocation(context.Background(), &peekportv1.RecommendAllocationRequest{
		MonthsToGoal:        24,
		MonthlyContribution: "abc",
	})
	assertCode(t, err, codes.InvalidArgument)

	_, err = server.RecommendAllocation(context.Background(), &peekportv1.RecommendAllocationRequest{
		MonthsToGoal:        24,
		MonthlyContribution: "0",
	})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_EstimateProbability(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.EstimateProbability(context.Background(), &peekportv1.EstimateProbabilityRequest{
		ProjectedValue: "110000000",
		GoalAmount:     "100000000",
	})

	require.NoError(t, err)
	assert.Equal(t, int32(88), resp.Probability)
	assert.Equal(t, "promising", resp.Outlook)

	_, err = server.EstimateProbability(context.Background(), &peekportv1.EstimateProbabilityRequest{
		ProjectedValue: "1",
		GoalAmount:     "0",
	})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_AnalyzeRebalancing(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.AnalyzeRebalancing(context.Background(), &peekportv1.AnalyzeRebalancingRequest{
		Holdings: []*peekportv1.Holding{{
			Symbol:        "QQQ",
			Quantity:      "10",
			PurchasePrice: "700000",
			CurrentPrice:  "850000",
			Horizon:       "long",
		}},
		Cash:   "1500000",
		Target: map[string]string{"stock": "70", "cash": "30"},
	})

	require.NoError(t, err)
	assert.False(t, resp.DefaultTarget)
	assert.Nil(t, resp.Holdings)
	require.NotNil(t, resp.AnalyzedAt)
	assert.NoError(t, resp.AnalyzedAt.CheckValid())
	result := resp.Result
	assert.True(t, result.NeedsRebalancing)
	assert.Equal(t, "medium", result.Severity)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "SELL", result.Recommendations[0].Action)
	assert.Equal(t, "stock", result.Recommendations[0].InstrumentClass)
	amount, err := decimal.NewFromString(result.Recommendations[0].RecommendedAmount)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(1_500_000)))
}

func TestServer_AnalyzeRebalancing_DefaultTargetAndHoldings(t *testing.T) {
	server, _, _ := newTestServer()

	resp, err := server.AnalyzeRebalancing(context.Background(), &peekportv1.AnalyzeRebalancingRequest{
		Holdings: []*peekportv1.Holding{{
			Symbol:       "QQQ",
			Name:         "Invesco QQQ",
			Quantity:     "10",
			CurrentPrice: "850000",
			Horizon:      "long",
		}},
		Cash:           "1500000",
		HoldingTargets: map[string]string{"QQQ": "60"},
	})

	require.NoError(t, err)
	assert.True(t, resp.DefaultTarget)
	assert.Equal(t, map[string]string{"stock": "70", "cash": "30"}, resp.Target)

	require.NotNil(t, resp.Holdings)
	assert.True(t, resp.Holdings.NeedsRebalancing)
	require.Len(t, resp.Holdings.Recommendations, 1)
	rec := resp.Holdings.Recommendations[0]
	assert.Equal(t, "QQQ", rec.Symbol)
	assert.Equal(t, "Invesco QQQ", rec.Name)
	assert.Equal(t, "SELL", rec.Action)
	assert.Equal(t, "3", rec.RecommendedShares)
	assert.Equal(t, "2500000", rec.RecommendedAmount)
	assert.Equal(t, int32(1), rec.Priority)
}

func TestServer_AnalyzeRebalancing_InvalidArgument(t *testing.T) {
	server, _, _ := newTestServer()

	tests := []struct {
		name string
		req  *peekportv1.AnalyzeRebalancingRequest
	}{
		{
			name: "Bad quantity",
			req:  &peekportv1.AnalyzeRebalancingRequest{Holdings: []*peekportv1.Holding{{Symbol: "A", Quantity: "x", CurrentPrice: "1"}}},
		},
		{
			name: "Nil holding",
			req:  &peekportv1.AnalyzeRebalancingRequest{Holdings: []*peekportv1.Holding{nil}},
		},
		{
			name: "Target does not sum to 100",
			req:  &peekportv1.AnalyzeRebalancingRequest{Cash: "10", Target: map[string]string{"stock": "50", "cash": "20"}},
		},
		{
			name: "Unknown instrument class",
			req:  &peekportv1.AnalyzeRebalancingRequest{Cash: "10", Target: map[string]string{"crypto": "100"}},
		},
		{
			name: "Negative cash",
			req:  &peekportv1.AnalyzeRebalancingRequest{Cash: "-1"},
		},
		{
			name: "Malformed holding target",
			req:  &peekportv1.AnalyzeRebalancingRequest{Cash: "10", HoldingTargets: map[string]string{"QQQ": "lots"}},
		},
		{
			name: "Holding targets above 100",
			req:  &peekportv1.AnalyzeRebalancingRequest{Cash: "10", HoldingTargets: map[string]string{"QQQ": "80", "SPY": "30"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := server.AnalyzeRebalancing(context.Background(), tt.req)
			assertCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestServer_CheckPortfolio(t *testing.T) {
	server, portfolioRepo, _ := newTestServer()
	ctx := context.Background()

	portfolio := stockHeavyPortfolio()
	portfolioRepo.On("GetByID", ctx, portfolio.ID).Return(portfolio, nil)

	resp, err := server.CheckPortfolio(ctx, &peekportv1.CheckPortfolioRequest{PortfolioId: portfolio.ID.String()})

	require.NoError(t, err)
	assert.Equal(t, "Growth", resp.PortfolioName)
	assert.True(t, resp.DefaultTarget)
	assert.Equal(t, "70", resp.Target["stock"])
	assert.True(t, resp.Result.NeedsRebalancing)
}

func TestServer_CheckPortfolio_Errors(t *testing.T) {
	server, portfolioRepo, _ := newTestServer()
	ctx := context.Background()

	_, err := server.CheckPortfolio(ctx, &peekportv1.CheckPortfolioRequest{PortfolioId: "not-a-uuid"})
	assertCode(t, err, codes.InvalidArgument)

	missing := uuid.New()
	portfolioRepo.On("GetByID", ctx, missing).Return(nil, domain.ErrNotFound)
	_, err = server.CheckPortfolio(ctx, &peekportv1.CheckPortfolioRequest{PortfolioId: missing.String()})
	assertCode(t, err, codes.NotFound)
}

func TestServer_GetPortfolioSummary(t *testing.T) {
	server, portfolioRepo, _ := newTestServer()
	ctx := context.Background()

	portfolio := stockHeavyPortfolio()
	portfolioRepo.On("GetByID", ctx, portfolio.ID).Return(portfolio, nil)

	resp, err := server.GetPortfolioSummary(ctx, &peekportv1.GetPortfolioSummaryRequest{PortfolioId: portfolio.ID.String()})

	require.NoError(t, err)
	summary := resp.Summary
	assert.Equal(t, "Growth", summary.PortfolioName)
	assert.Equal(t, "10000000", summary.TotalValue)
	assert.Equal(t, "8500000", summary.HoldingsValue)
	assert.Equal(t, "1500000", summary.ProfitLoss)
	assert.Equal(t, "21.43", summary.ProfitLossPercent)
	assert.Equal(t, map[string]string{"long": "8500000"}, summary.ByHorizon)

	_, err = server.GetPortfolioSummary(ctx, &peekportv1.GetPortfolioSummaryRequest{PortfolioId: "bad"})
	assertCode(t, err, codes.InvalidArgument)

	missing := uuid.New()
	portfolioRepo.On("GetByID", ctx, missing).Return(nil, domain.ErrNotFound)
	_, err = server.GetPortfolioSummary(ctx, &peekportv1.GetPortfolioSummaryRequest{PortfolioId: missing.String()})
	assertCode(t, err, codes.NotFound)
}

func TestServer_GetNetWorth(t *testing.T) {
	server, portfolioRepo, _ := newTestServer()
	ctx := context.Background()

	portfolioRepo.On("List", ctx).Return([]*domain.Portfolio{stockHeavyPortfolio()}, nil)

	resp, err := server.GetNetWorth(ctx, &peekportv1.GetNetWorthRequest{})

	require.NoError(t, err)
	assert.Equal(t, "10000000", resp.Total)
	assert.Equal(t, "1500000", resp.Liquidity)
	assert.Equal(t, "8500000", resp.Equity)
	assert.Equal(t, int32(1), resp.Portfolios)
	require.NotNil(t, resp.AsOf)
	assert.WithinDuration(t, time.Now(), resp.AsOf.AsTime(), time.Minute)
}

func TestServer_AnalyzeGoal(t *testing.T) {
	server, portfolioRepo, goalRepo := newTestServer()
	ctx := context.Background()

	portfolio := stockHeavyPortfolio()
	goal := &domain.Goal{ID: uuid.New(), PortfolioID: portfolio.ID, Name: "Car", Amount: decimal.NewFromInt(30_000_000), MonthsToGoal: 24}
	portfolioRepo.On("GetByID", ctx, portfolio.ID).Return(portfolio, nil)
	goalRepo.On("GetByID", ctx, goal.ID).Return(goal, nil)

	resp, err := server.AnalyzeGoal(ctx, &peekportv1.AnalyzeGoalRequest{
		PortfolioId:         portfolio.ID.String(),
		GoalId:              goal.ID.String(),
		MonthlyContribution: "2000000",
	})

	require.NoError(t, err)
	analysis := resp.Analysis
	assert.Equal(t, "Car", analysis.GoalName)
	assert.Equal(t, "aggressive", analysis.RiskLevel)
	assert.Equal(t, "mid", analysis.Horizon)
	assert.Len(t, analysis.Points, 61)
	assert.False(t, analysis.IncreaseContribution)
	assert.Equal(t, int32(99), analysis.Probability)

	_, err = server.AnalyzeGoal(ctx, &peekportv1.AnalyzeGoalRequest{
		PortfolioId: portfolio.ID.String(),
		GoalId:      goal.ID.String(),
		RiskLevel:   "reckless",
	})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_ListGoalAnalyses(t *testing.T) {
	server, portfolioRepo, goalRepo := newTestServer()
	ctx := context.Background()

	portfolio := stockHeavyPortfolio()
	goals := []*domain.Goal{
		{ID: uuid.New(), PortfolioID: portfolio.ID, Name: "Trip", Amount: decimal.NewFromInt(2_000_000), MonthsToGoal: 3},
		{ID: uuid.New(), PortfolioID: portfolio.ID, Name: "House", Amount: decimal.NewFromInt(500_000_000), MonthsToGoal: 120},
	}
	portfolioRepo.On("GetByID", ctx, portfolio.ID).Return(portfolio, nil)
	goalRepo.On("ListByPortfolio", ctx, portfolio.ID).Return(goals, nil)

	resp, err := server.ListGoalAnalyses(ctx, &peekportv1.ListGoalAnalysesRequest{PortfolioId: portfolio.ID.String()})

	require.NoError(t, err)
	require.Len(t, resp.Analyses, 2)
	assert.Equal(t, "Trip", resp.Analyses[0].GoalName)
	assert.Equal(t, "short", resp.Analyses[0].Horizon)
	assert.Equal(t, "House", resp.Analyses[1].GoalName)
	assert.Len(t, resp.Analyses[1].Points, 121)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "Invalid input", err: domain.InvalidInputf("goal amount must be positive"), code: codes.InvalidArgument},
		{name: "Not found", err: domain.ErrNotFound, code: codes.NotFound},
		{name: "Canceled", err: context.Canceled, code: codes.Canceled},
		{name: "Deadline", err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
		{name: "Unknown", err: assert.AnError, code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, mapError(tt.err), tt.code)
		})
	}

	assert.NoError(t, mapError(nil))
}

// TestPlanningService_RoundTrip drives the registered service through a real
// gRPC connection with the default protobuf codec.
func TestPlanningService_RoundTrip(t *testing.T) {
	server, _, _ := newTestServer()
	grpcServer := NewGRPCServer(server, "secret", zerolog.Nop())
	reflection.Register(grpcServer)

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpclib.NewClient(
		"passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client := peekportv1.NewPlanningServiceClient(conn)

	t.Run("Authorized", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer secret")
		resp, err := client.EstimateProbability(ctx, &peekportv1.EstimateProbabilityRequest{
			ProjectedValue: "80000000",
			GoalAmount:     "100000000",
		})
		require.NoError(t, err)
		assert.Equal(t, int32(25), resp.Probability)
		assert.Equal(t, "needs_adjustment", resp.Outlook)
	})

	t.Run("Maps and timestamps cross the wire", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer secret")
		resp, err := client.AnalyzeRebalancing(ctx, &peekportv1.AnalyzeRebalancingRequest{
			Holdings: []*peekportv1.Holding{{Symbol: "QQQ", Quantity: "10", CurrentPrice: "850000"}},
			Cash:     "1500000",
			Target:   map[string]string{"stock": "60", "cash": "40"},
		})
		require.NoError(t, err)
		assert.False(t, resp.DefaultTarget)
		assert.Equal(t, "60", resp.Target["stock"])
		assert.Equal(t, "high", resp.Result.Severity)
		require.NotNil(t, resp.AnalyzedAt)
		assert.True(t, resp.AnalyzedAt.IsValid())
	})

	t.Run("Reflection lists the service", func(t *testing.T) {
		stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
		require.NoError(t, err)
		require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
			MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: "*"},
		}))

		resp, err := stream.Recv()
		require.NoError(t, err)
		var names []string
		for _, svc := range resp.GetListServicesResponse().GetService() {
			names = append(names, svc.GetName())
		}
		assert.Contains(t, names, "peekport.v1.PlanningService")
		require.NoError(t, stream.CloseSend())
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		_, err := client.RecommendAllocation(context.Background(), &peekportv1.RecommendAllocationRequest{MonthsToGoal: 6})
		assertCode(t, err, codes.Unauthenticated)
	})

	t.Run("Domain error crosses the wire", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "secret")
		_, err := client.RecommendAllocation(ctx, &peekportv1.RecommendAllocationRequest{MonthsToGoal: -3})
		assertCode(t, err, codes.InvalidArgument)
	})
}

func TestPlanningService_Descriptor(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName("peekport.v1.PlanningService")
	require.NoError(t, err)

	service, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, "peekport/v1/planning.proto", service.ParentFile().Path())
	assert.Equal(t, len(peekportv1.PlanningService_ServiceDesc.Methods), service.Methods().Len())

	method := service.Methods().ByName("AnalyzeRebalancing")
	require.NotNil(t, method)
	assert.Equal(t, protoreflect.FullName("peekport.v1.AnalyzeRebalancingResponse"), method.Output().FullName())

	analyzedAt := method.Output().Fields().ByName("analyzed_at")
	require.NotNil(t, analyzedAt)
	assert.Equal(t, protoreflect.FullName("google.protobuf.Timestamp"), analyzedAt.Message().FullName())
	assert.True(t, method.Input().Fields().ByName("holding_targets").IsMap())
}
