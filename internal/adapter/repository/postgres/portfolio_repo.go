package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peekport/planning-engine/internal/domain"
)

// portfolioRepository implements domain.PortfolioRepository
type portfolioRepository struct {
	db *DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *DB) domain.PortfolioRepository {
	return &portfolioRepository{db: db}
}

// GetByID retrieves a portfolio with its holdings and stored target
func (r *portfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Portfolio, error) {
	query := `
		SELECT id, name, portfolio_type, cash, target_stock_ratio, target_bond_ratio, target_cash_ratio
		FROM portfolios
		WHERE id = $1
	`

	portfolio, err := scanPortfolio(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("portfolio %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get portfolio by ID: %w", err)
	}

	holdings, err := r.listHoldings(ctx, id)
	if err != nil {
		return nil, err
	}
	portfolio.Snapshot.Holdings = holdings

	return portfolio, nil
}

// List retrieves every portfolio ordered by name, without holdings
func (r *portfolioRepository) List(ctx context.Context) ([]*domain.Portfolio, error) {
	query := `
		SELECT id, name, portfolio_type, cash, target_stock_ratio, target_bond_ratio, target_cash_ratio
		FROM portfolios
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []*domain.Portfolio
	for rows.Next() {
		portfolio, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		portfolios = append(portfolios, portfolio)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolios: %w", err)
	}

	return portfolios, nil
}

// Create stores a portfolio and its holdings in one transaction
func (r *portfolioRepository) Create(ctx context.Context, portfolio *domain.Portfolio) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var stock, bond, cash interface{}
	if portfolio.Target != nil {
		stock = portfolio.Target.Stock().String()
		bond = portfolio.Target.Ratio(domain.InstrumentBond).String()
		cash = portfolio.Target.Cash().String()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO portfolios (id, name, portfolio_type, cash, target_stock_ratio, target_bond_ratio, target_cash_ratio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		portfolio.ID,
		portfolio.Name,
		string(portfolio.Type),
		portfolio.Snapshot.Cash.String(),
		stock, bond, cash,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}

	for _, h := range portfolio.Snapshot.Holdings {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO holdings (portfolio_id, symbol, name, quantity, purchase_price, current_price, horizon)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			portfolio.ID,
			h.Symbol,
			h.Name,
			h.Quantity.String(),
			h.PurchasePrice.String(),
			h.CurrentPrice.String(),
			string(h.Horizon),
		)
		if err != nil {
			return fmt.Errorf("failed to create holding %s: %w", h.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit portfolio: %w", err)
	}
	return nil
}

func (r *portfolioRepository) listHoldings(ctx context.Context, portfolioID uuid.UUID) ([]domain.Holding, error) {
	query := `
		SELECT symbol, name, quantity, purchase_price, current_price, horizon
		FROM holdings
		WHERE portfolio_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	holdings := []domain.Holding{}
	for rows.Next() {
		var h domain.Holding
		var quantityStr, purchaseStr, currentStr, horizon string

		if err := rows.Scan(&h.Symbol, &h.Name, &quantityStr, &purchaseStr, &currentStr, &horizon); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}

		values, err := parseDecimals(quantityStr, purchaseStr, currentStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holding %s: %w", h.Symbol, err)
		}
		h.Quantity, h.PurchasePrice, h.CurrentPrice = values[0], values[1], values[2]
		h.Horizon = domain.Horizon(horizon)

		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return holdings, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPortfolio(row rowScanner) (*domain.Portfolio, error) {
	var p domain.Portfolio
	var portfolioType, cashStr string
	var stock, bond, cash sql.NullString

	if err := row.Scan(&p.ID, &p.Name, &portfolioType, &cashStr, &stock, &bond, &cash); err != nil {
		return nil, err
	}
	p.Type = domain.PortfolioType(portfolioType)

	balance, err := decimal.NewFromString(cashStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cash: %w", err)
	}
	p.Snapshot.Cash = balance

	target, err := parseTarget(stock, bond, cash)
	if err != nil {
		return nil, err
	}
	p.Target = target

	return &p, nil
}

// parseTarget rebuilds the stored target; NULL stock and cash mean no target was saved
func parseTarget(stock, bond, cash sql.NullString) (*domain.AllocationTarget, error) {
	if !stock.Valid || !cash.Valid {
		return nil, nil
	}

	values, err := parseDecimals(stock.String, cash.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target: %w", err)
	}

	if bond.Valid {
		bondRatio, err := decimal.NewFromString(bond.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse target_bond_ratio: %w", err)
		}
		if !bondRatio.IsZero() {
			target := domain.NewThreeWayTarget(values[0], bondRatio, values[1])
			return &target, nil
		}
	}

	target := domain.NewAllocationTarget(values[0], values[1])
	return &target, nil
}

func parseDecimals(raw ...string) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, len(raw))
	for i, s := range raw {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		values[i] = d
	}
	return values, nil
}
