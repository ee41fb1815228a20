package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ims/internal/claim/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
	txcontext "ims/pkg/platform/tx"
)

const columns = `id, policy_id, customer_id, agent_id, amount, details, status, filed_date`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, c *models.Claim) error {
	query := `
		INSERT INTO claims (policy_id, customer_id, agent_id, amount, details, status, filed_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var agent sql.NullInt64
	if c.AgentID != nil {
		agent = sql.NullInt64{Int64: int64(*c.AgentID), Valid: true}
	}
	var id int64
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query,
		int64(c.PolicyID), int64(c.CustomerID), agent, c.Amount, c.Details, string(c.Status), c.FiledDate).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	c.ID = domain.ClaimID(id)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.ClaimID) (*models.Claim, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM claims WHERE id = $1`, int64(id))
	c, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find claim: %w", err)
	}
	return c, nil
}

// UpdateStatus only matches rows still in from, so a second adjudication of
// the same claim affects nothing.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id domain.ClaimID, from, to domain.Status) error {
	if err := domain.Transition(from, to); err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrInvalidState, err)
	}
	exec := txcontext.Exec(ctx, s.db)
	res, err := exec.ExecContext(ctx,
		`UPDATE claims SET status = $3 WHERE id = $1 AND status = $2`,
		int64(id), string(from), string(to))
	if err != nil {
		return fmt.Errorf("update claim status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}
	var exists bool
	if err := exec.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, int64(id)).Scan(&exists); err != nil {
		return fmt.Errorf("check claim: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("claim %d is not %s: %w", id, from, sentinel.ErrInvalidState)
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.Claim, error) {
	return s.list(ctx, `WHERE customer_id = $1`, int64(customerID))
}

func (s *PostgresStore) ListByAgent(ctx context.Context, agentID domain.AgentID) ([]*models.Claim, error) {
	return s.list(ctx, `WHERE agent_id = $1`, int64(agentID))
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Claim, error) {
	return s.list(ctx, ``)
}

func (s *PostgresStore) list(ctx context.Context, where string, args ...any) ([]*models.Claim, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM claims `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()
	var out []*models.Claim
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Claim, error) {
	var (
		c                    models.Claim
		id, policy, customer int64
		agent                sql.NullInt64
		amount               decimal.Decimal
		status               string
	)
	if err := row.Scan(&id, &policy, &customer, &agent, &amount, &c.Details, &status, &c.FiledDate); err != nil {
		return nil, err
	}
	c.ID = domain.ClaimID(id)
	c.PolicyID = domain.PolicyID(policy)
	c.CustomerID = domain.CustomerID(customer)
	if agent.Valid {
		a := domain.AgentID(agent.Int64)
		c.AgentID = &a
	}
	c.Amount = amount
	c.Status = domain.Status(status)
	return &c, nil
}
