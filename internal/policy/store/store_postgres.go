package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ims/internal/policy/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
	txcontext "ims/pkg/platform/tx"
)

const columns = `id, customer_id, agent_id, available_policy_id, issued_date, expiry_date`

// PostgresStore persists policies. Create joins the approval transaction
// carried in ctx so the status write and the issue commit together.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, p *models.Policy) error {
	query := `
		INSERT INTO policies (customer_id, agent_id, available_policy_id, issued_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query,
		int64(p.CustomerID), int64(p.AgentID), int64(p.AvailablePolicyID), p.IssuedDate, p.ExpiryDate).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert policy: %w", err)
	}
	p.ID = domain.PolicyID(id)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.PolicyID) (*models.Policy, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `SELECT `+columns+` FROM policies WHERE id = $1`, int64(id))
	p, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find policy: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.Policy, error) {
	return s.list(ctx, `WHERE customer_id = $1`, int64(customerID))
}

func (s *PostgresStore) ListByAgent(ctx context.Context, agentID domain.AgentID) ([]*models.Policy, error) {
	return s.list(ctx, `WHERE agent_id = $1`, int64(agentID))
}

func (s *PostgresStore) list(ctx context.Context, where string, arg any) ([]*models.Policy, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM policies `+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()
	var out []*models.Policy
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan policy: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Policy, error) {
	var (
		p                         models.Policy
		id, customer, agent, avID int64
	)
	if err := row.Scan(&id, &customer, &agent, &avID, &p.IssuedDate, &p.ExpiryDate); err != nil {
		return nil, err
	}
	p.ID = domain.PolicyID(id)
	p.CustomerID = domain.CustomerID(customer)
	p.AgentID = domain.AgentID(agent)
	p.AvailablePolicyID = domain.AvailablePolicyID(avID)
	return &p, nil
}
