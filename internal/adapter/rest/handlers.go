package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	peekportv1 "github.com/peekport/planning-engine/internal/adapter/grpc/peekport/v1"
)

const maxBodyBytes = 1 << 20

// responseFormat keeps snake_case names and zero values so every field is present
var responseFormat = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "planning-engine",
	})
}

// handleProjectGrowth handles POST /api/projections
func (s *Server) handleProjectGrowth(w http.ResponseWriter, r *http.Request) {
	var req peekportv1.ProjectGrowthRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.planner.ProjectGrowth(r.Context(), &req)
	s.respond(w, resp, err)
}

// handleRecommendAllocation handles GET /api/allocations?months_to_goal=N[&monthly_contribution=X]
func (s *Server) handleRecommendAllocation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	months, err := strconv.ParseInt(query.Get("months_to_goal"), 10, 32)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "months_to_goal must be a 32-bit integer")
		return
	}

	resp, err := s.planner.RecommendAllocation(r.Context(), &peekportv1.RecommendAllocationRequest{
		MonthsToGoal:        int32(months),
		MonthlyContribution: query.Get("monthly_contribution"),
	})
	s.respond(w, resp, err)
}

// handleEstimateProbability handles POST /api/probability
func (s *Server) handleEstimateProbability(w http.ResponseWriter, r *http.Request) {
	var req peekportv1.EstimateProbabilityRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.planner.EstimateProbability(r.Context(), &req)
	s.respond(w, resp, err)
}

// handleAnalyzeRebalancing handles POST /api/rebalancing/analyze
func (s *Server) handleAnalyzeRebalancing(w http.ResponseWriter, r *http.Request) {
	var req peekportv1.AnalyzeRebalancingRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.planner.AnalyzeRebalancing(r.Context(), &req)
	s.respond(w, resp, err)
}

// handleCheckPortfolio handles GET /api/portfolios/{portfolioID}/rebalancing
func (s *Server) handleCheckPortfolio(w http.ResponseWriter, r *http.Request) {
	resp, err := s.planner.CheckPortfolio(r.Context(), &peekportv1.CheckPortfolioRequest{
		PortfolioId: chi.URLParam(r, "portfolioID"),
	})
	s.respond(w, resp, err)
}

// handleAnalyzeGoal handles GET /api/portfolios/{portfolioID}/goals/{goalID}/analysis
func (s *Server) handleAnalyzeGoal(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.planner.AnalyzeGoal(r.Context(), &peekportv1.AnalyzeGoalRequest{
		PortfolioId:         chi.URLParam(r, "portfolioID"),
		GoalId:              chi.URLParam(r, "goalID"),
		MonthlyContribution: query.Get("monthly_contribution"),
		RiskLevel:           query.Get("risk_level"),
	})
	s.respond(w, resp, err)
}

// handleListGoalAnalyses handles GET /api/portfolios/{portfolioID}/goals/analysis
func (s *Server) handleListGoalAnalyses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.planner.ListGoalAnalyses(r.Context(), &peekportv1.ListGoalAnalysesRequest{
		PortfolioId:         chi.URLParam(r, "portfolioID"),
		MonthlyContribution: query.Get("monthly_contribution"),
		RiskLevel:           query.Get("risk_level"),
	})
	s.respond(w, resp, err)
}

// handleGetPortfolioSummary handles GET /api/portfolios/{portfolioID}/summary
func (s *Server) handleGetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.planner.GetPortfolioSummary(r.Context(), &peekportv1.GetPortfolioSummaryRequest{
		PortfolioId: chi.URLParam(r, "portfolioID"),
	})
	s.respond(w, resp, err)
}

// handleGetNetWorth handles GET /api/net-worth
func (s *Server) handleGetNetWorth(w http.ResponseWriter, r *http.Request) {
	resp, err := s.planner.GetNetWorth(r.Context(), &peekportv1.GetNetWorthRequest{})
	s.respond(w, resp, err)
}

// decode reads a protojson body into msg, writing a 400 on failure.
// Unknown fields are rejected.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, msg proto.Message) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := protojson.Unmarshal(body, msg); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// respond writes resp with its proto field names, or the HTTP form of err
func (s *Server) respond(w http.ResponseWriter, resp proto.Message, err error) {
	if err != nil {
		code := httpStatus(err)
		if code == http.StatusInternalServerError {
			s.log.Error().Err(err).Msg("Planning request failed")
		}
		s.writeError(w, code, status.Convert(err).Message())
		return
	}

	body, err := responseFormat.Marshal(resp)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
		s.writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log.Error().Err(err).Msg("Failed to write response")
	}
}

// httpStatus maps a gRPC status error onto an HTTP status code
func httpStatus(err error) int {
	switch status.Code(err) {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Canceled:
		return http.StatusRequestTimeout
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
