package domain

import (
	"context"

	"github.com/google/uuid"
)

// PortfolioRepository defines read access to stored portfolios.
// Returned records are expected to pass Validate.
type PortfolioRepository interface {
	// GetByID retrieves a portfolio with its holdings, cash and stored target.
	// Returns an error wrapping ErrNotFound when the portfolio does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Portfolio, error)

	// List retrieves every portfolio without holdings
	List(ctx context.Context) ([]*Portfolio, error)

	// Create stores a portfolio with its holdings and optional target
	Create(ctx context.Context, portfolio *Portfolio) error
}

// GoalRepository defines read access to the goals attached to portfolios
type GoalRepository interface {
	// GetByID retrieves a goal by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)

	// ListByPortfolio retrieves every goal of a portfolio ordered by months to goal
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]*Goal, error)

	// Create stores a goal
	Create(ctx context.Context, goal *Goal) error
}
