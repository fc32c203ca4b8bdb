package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/peekport/planning-engine/internal/adapter/grpc"
	"github.com/peekport/planning-engine/internal/adapter/repository/postgres"
	"github.com/peekport/planning-engine/internal/adapter/rest"
	"github.com/peekport/planning-engine/internal/config"
	"github.com/peekport/planning-engine/internal/usecase/dashboard"
	"github.com/peekport/planning-engine/internal/usecase/goalplan"
	"github.com/peekport/planning-engine/internal/usecase/rebalancing"
	"github.com/peekport/planning-engine/internal/usecase/seeder"
	"github.com/peekport/planning-engine/pkg/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)
	log.Info().Msg("Starting planning engine")

	// 2. Setup Database (retried until Postgres is up)
	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := postgres.NewDB(connectCtx, cfg.DBConnStr)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// 3. Initialize Repositories (Postgres)
	portfolioRepo := postgres.NewPortfolioRepository(db)
	goalRepo := postgres.NewGoalRepository(db)

	if cfg.SeedDemo {
		if err := seeder.NewDemoSeeder(portfolioRepo, goalRepo).Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Str("portfolio_id", seeder.DEMO_PORTFOLIO.String()).Msg("Demo data seeded")
	}

	// 4. Initialize Services (Use Cases)
	goalPlanService := goalplan.NewService(portfolioRepo, goalRepo, cfg.Engine, log)
	rebalancingService := rebalancing.NewService(portfolioRepo, cfg.Engine, log)
	dashboardService := dashboard.NewDashboardService(portfolioRepo)
	planner := grpcadapter.NewServer(cfg.Engine, goalPlanService, rebalancingService, dashboardService)

	// 5. Start gRPC Server
	grpcServer := grpcadapter.NewGRPCServer(planner, cfg.APIToken, log)
	reflection.Register(grpcServer)

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", grpcAddr).Msg("Failed to listen")
	}

	go func() {
		log.Info().Str("addr", grpcAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// 6. Start HTTP Server
	httpServer := rest.New(rest.Config{
		Port:     cfg.HTTPPort,
		Log:      log,
		Planner:  planner,
		APIToken: cfg.APIToken,
		DevMode:  cfg.LogPretty,
	})

	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// 7. Run a startup rebalancing sweep so drifted portfolios show up in the logs
	go func() {
		sweepCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := rebalancingService.CheckAll(sweepCtx); err != nil {
			log.Warn().Err(err).Msg("Startup rebalancing sweep failed")
		}
	}()

	waitForShutdown(log, grpcServer, httpServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down both servers
func waitForShutdown(log zerolog.Logger, grpcServer *grpclib.Server, httpServer *rest.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shutdown")
	}

	grpcServer.GracefulStop()
	log.Info().Msg("Servers stopped")
}
