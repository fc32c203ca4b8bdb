package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	grpcadapter "github.com/peekport/planning-engine/internal/adapter/grpc"
	peekportv1 "github.com/peekport/planning-engine/internal/adapter/grpc/peekport/v1"
	"github.com/peekport/planning-engine/internal/domain"
	"github.com/peekport/planning-engine/internal/usecase/dashboard"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
	"github.com/peekport/planning-engine/internal/usecase/rebalancing"
)

const testToken = "test-token"

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
	planner := grpcadapter.NewServer(
		params,
		goalplan.NewService(portfolioRepo, goalRepo, params, zerolog.Nop()),
		rebalancing.NewService(portfolioRepo, params, zerolog.Nop()),
		dashboard.NewDashboardService(portfolioRepo),
	)
	return New(Config{Log: zerolog.Nop(), Planner: planner, APIToken: testToken, DevMode: true}), portfolioRepo, goalRepo
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAuthMiddleware(t *testing.T) {
	s, _, _ := newTestServer()

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedErr    string
	}{
		{name: "Missing header", header: "", expectedStatus: http.StatusUnauthorized, expectedErr: "missing authorization header"},
		{name: "Wrong token", header: "Bearer nope", expectedStatus: http.StatusUnauthorized, expectedErr: "invalid token"},
		{name: "Valid token", header: "Bearer " + testToken, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/allocations?months_to_goal=6", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, errorMessage(t, w))
			}
		})
	}
}

func TestProjectGrowth(t *testing.T) {
	s, _, _ := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/api/projections",
		`{"current_total":"65000000","monthly_contribution":"500000","risk_level":"moderate","months":60,"goal_amount":"100000000","goal_month":36}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp peekportv1.ProjectGrowthResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 61)
	assert.Equal(t, "65000000", resp.Points[0].Value)

	prev := decimal.Zero
	for _, p := range resp.Points {
		v, err := decimal.NewFromString(p.Value)
		require.NoError(t, err)
		assert.True(t, v.GreaterThanOrEqual(prev), "month %d decreased", p.Month)
		prev = v
	}
}

func TestProjectGrowth_BadBody(t *testing.T) {
	s, _, _ := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"current_total":`},
		{name: "Unknown field", body: `{"current_total":"1","horizon":"forever"}`},
		{name: "Negative months", body: `{"current_total":"1","months":-2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, "/api/projections", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecommendAllocation(t *testing.T) {
	s, _, _ := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/api/allocations?months_to_goal=61", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.RecommendAllocationResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "long", resp.Horizon)
	assert.Equal(t, "70", resp.Allocation["stock"])
	assert.Equal(t, "30", resp.Allocation["cash"])

	w = doRequest(t, s, http.MethodGet, "/api/allocations?months_to_goal=soon", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendAllocation_MonthsOutOfRange(t *testing.T) {
	s, _, _ := newTestServer()

	// 2^32 + 13 would wrap to 13 if narrowed after a plain Atoi.
	for _, months := range []string{"4294967309", "-4294967296", "9223372036854775808"} {
		w := doRequest(t, s, http.MethodGet, "/api/allocations?months_to_goal="+months, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, months)
		assert.Contains(t, errorMessage(t, w), "32-bit integer")
	}
}

func TestRecommendAllocation_ContributionSplit(t *testing.T) {
	s, _, _ := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/api/allocations?months_to_goal=61&monthly_contribution=500000", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.RecommendAllocationResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"stock": "350000", "bond": "125000", "cash": "25000"}, resp.ContributionSplit)

	w = doRequest(t, s, http.MethodGet, "/api/allocations?months_to_goal=61&monthly_contribution=-5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "contribution amount must be positive")
}

func TestPortfolioSummary(t *testing.T) {
	s, portfolioRepo, _ := newTestServer()

	portfolio := &domain.Portfolio{
		ID:   uuid.New(),
		Name: "Pension",
		Type: domain.PortfolioTypeConservative,
		Snapshot: domain.PortfolioSnapshot{
			Holdings: []domain.Holding{{
				Symbol:        "005930",
				Quantity:      decimal.NewFromInt(100),
				PurchasePrice: decimal.NewFromInt(80_000),
				CurrentPrice:  decimal.NewFromInt(60_000),
				Horizon:       domain.HorizonMid,
			}},
			Cash: decimal.NewFromInt(4_000_000),
		},
	}
	portfolioRepo.On("GetByID", mock.Anything, portfolio.ID).Return(portfolio, nil)

	w := doRequest(t, s, http.MethodGet, "/api/portfolios/"+portfolio.ID.String()+"/summary", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.GetPortfolioSummaryResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10000000", resp.Summary.TotalValue)
	assert.Equal(t, "-2000000", resp.Summary.ProfitLoss)
	assert.Equal(t, "-25", resp.Summary.ProfitLossPercent)
	assert.Equal(t, "6000000", resp.Summary.ByHorizon["mid"])
}

func TestNetWorth(t *testing.T) {
	s, portfolioRepo, _ := newTestServer()

	portfolios := []*domain.Portfolio{
		{ID: uuid.New(), Name: "A", Snapshot: domain.PortfolioSnapshot{Cash: decimal.NewFromInt(1_000_000)}},
		{ID: uuid.New(), Name: "B", Snapshot: domain.PortfolioSnapshot{Cash: decimal.NewFromInt(2_500_000)}},
	}
	portfolioRepo.On("List", mock.Anything).Return(portfolios, nil)

	w := doRequest(t, s, http.MethodGet, "/api/net-worth", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.GetNetWorthResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "3500000", resp.Total)
	assert.Equal(t, "0", resp.Equity)
	assert.Equal(t, int32(2), resp.Portfolios)
}

func TestEstimateProbability(t *testing.T) {
	s, _, _ := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/api/probability", `{"projected_value":"100000000","goal_amount":"100000000"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.EstimateProbabilityResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int32(80), resp.Probability)
	assert.Equal(t, "possible", resp.Outlook)

	w = doRequest(t, s, http.MethodPost, "/api/probability", `{"projected_value":"1","goal_amount":"-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "goal amount must be positive")
}

func TestAnalyzeRebalancing(t *testing.T) {
	s, _, _ := newTestServer()

	body := `{
		"holdings":[{"symbol":"005930","quantity":"100","purchase_price":"60000","current_price":"70000","horizon":"long"}],
		"cash":"3000000",
		"target":{"stock":"70","cash":"30"}
	}`
	w := doRequest(t, s, http.MethodPost, "/api/rebalancing/analyze", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.AnalyzeRebalancingResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Result.NeedsRebalancing)
	assert.Empty(t, resp.Result.Recommendations)
	assert.Equal(t, "none", resp.Result.Severity)
}

func TestAnalyzeRebalancing_HoldingTargets(t *testing.T) {
	s, _, _ := newTestServer()

	body := `{
		"holdings":[{"symbol":"QQQ","name":"Invesco QQQ","quantity":"10","purchase_price":"700000","current_price":"850000","horizon":"long"}],
		"cash":"1500000",
		"holding_targets":{"QQQ":"60"}
	}`
	w := doRequest(t, s, http.MethodPost, "/api/rebalancing/analyze", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"default_target"`)
	assert.Contains(t, w.Body.String(), `"recommended_shares"`)

	var resp peekportv1.AnalyzeRebalancingResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.DefaultTarget)
	assert.Equal(t, map[string]string{"stock": "70", "cash": "30"}, resp.Target)
	require.NotNil(t, resp.AnalyzedAt)

	require.NotNil(t, resp.Holdings)
	require.Len(t, resp.Holdings.Recommendations, 1)
	rec := resp.Holdings.Recommendations[0]
	assert.Equal(t, "SELL", rec.Action)
	assert.Equal(t, "3", rec.RecommendedShares)
	assert.Equal(t, "2500000", rec.RecommendedAmount)

	w = doRequest(t, s, http.MethodPost, "/api/rebalancing/analyze", `{"cash":"1","holding_targets":{"QQQ":"101"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckPortfolio(t *testing.T) {
	s, portfolioRepo, _ := newTestServer()

	portfolio := &domain.Portfolio{
		ID:   uuid.New(),
		Name: "Pension",
		Type: domain.PortfolioTypeConservative,
		Snapshot: domain.PortfolioSnapshot{
			Cash: decimal.NewFromInt(10_000_000),
		},
	}
	portfolioRepo.On("GetByID", mock.Anything, portfolio.ID).Return(portfolio, nil)

	w := doRequest(t, s, http.MethodGet, "/api/portfolios/"+portfolio.ID.String()+"/rebalancing", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp peekportv1.CheckPortfolioResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pension", resp.PortfolioName)
	assert.True(t, resp.Result.NeedsRebalancing)
	require.Len(t, resp.Result.Recommendations, 2)
	assert.Equal(t, "BUY", resp.Result.Recommendations[0].Action)
	assert.Equal(t, "stock", resp.Result.Recommendations[0].InstrumentClass)
}

func TestCheckPortfolio_Errors(t *testing.T) {
	s, portfolioRepo, _ := newTestServer()

	missing := uuid.New()
	portfolioRepo.On("GetByID", mock.Anything, missing).Return(nil, domain.ErrNotFound)

	w := doRequest(t, s, http.MethodGet, "/api/portfolios/"+missing.String()+"/rebalancing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/portfolios/abc/rebalancing", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "invalid portfolio_id format")
}

func TestGoalAnalysis(t *testing.T) {
	s, portfolioRepo, goalRepo := newTestServer()

	portfolio := &domain.Portfolio{
		ID:       uuid.New(),
		Name:     "Family",
		Type:     domain.PortfolioTypeBalanced,
		Snapshot: domain.PortfolioSnapshot{Cash: decimal.NewFromInt(20_000_000)},
	}
	goal := &domain.Goal{ID: uuid.New(), PortfolioID: portfolio.ID, Name: "Tuition", Amount: decimal.NewFromInt(40_000_000), MonthsToGoal: 48}

	portfolioRepo.On("GetByID", mock.Anything, portfolio.ID).Return(portfolio, nil)
	goalRepo.On("GetByID", mock.Anything, goal.ID).Return(goal, nil)
	goalRepo.On("ListByPortfolio", mock.Anything, portfolio.ID).Return([]*domain.Goal{goal}, nil)

	base := "/api/portfolios/" + portfolio.ID.String() + "/goals"

	w := doRequest(t, s, http.MethodGet, base+"/"+goal.ID.String()+"/analysis?risk_level=conservative", "")
	require.Equal(t, http.StatusOK, w.Code)
	var single peekportv1.AnalyzeGoalResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &single))
	assert.Equal(t, "Tuition", single.Analysis.GoalName)
	assert.Equal(t, "conservative", single.Analysis.RiskLevel)
	assert.Equal(t, "0.04", single.Analysis.AnnualReturnRate)
	assert.True(t, single.Analysis.IncreaseContribution)

	w = doRequest(t, s, http.MethodGet, base+"/analysis?monthly_contribution=1000000", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list peekportv1.ListGoalAnalysesResponse
	require.NoError(t, protojson.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Analyses, 1)
	assert.Equal(t, "moderate", list.Analyses[0].RiskLevel)
	assert.False(t, list.Analyses[0].IncreaseContribution)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, httpStatus(assert.AnError))
}
