package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ims/internal/policyrequest/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
	txcontext "ims/pkg/platform/tx"
)

const columns = `id, customer_id, available_policy_id, status, requested_on`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, r *models.PolicyRequest) error {
	query := `
		INSERT INTO policy_requests (customer_id, available_policy_id, status, requested_on)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query,
		int64(r.CustomerID), int64(r.AvailablePolicyID), string(r.Status), r.RequestedOn).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert policy request: %w", err)
	}
	r.ID = domain.PolicyRequestID(id)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.PolicyRequestID) (*models.PolicyRequest, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM policy_requests WHERE id = $1`, int64(id))
	r, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find policy request: %w", err)
	}
	return r, nil
}

// UpdateStatus is a compare-and-set on status: of two concurrent
// adjudications only one matches the WHERE clause.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id domain.PolicyRequestID, from, to domain.Status) error {
	if err := domain.Transition(from, to); err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrInvalidState, err)
	}
	exec := txcontext.Exec(ctx, s.db)
	res, err := exec.ExecContext(ctx,
		`UPDATE policy_requests SET status = $3 WHERE id = $1 AND status = $2`,
		int64(id), string(from), string(to))
	if err != nil {
		return fmt.Errorf("update policy request status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}
	var exists bool
	if err := exec.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM policy_requests WHERE id = $1)`, int64(id)).Scan(&exists); err != nil {
		return fmt.Errorf("check policy request: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("policy request %d is not %s: %w", id, from, sentinel.ErrInvalidState)
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.PolicyRequest, error) {
	return s.list(ctx, `WHERE customer_id = $1`, int64(customerID))
}

func (s *PostgresStore) ListAll(ctx context.Context, statuses ...domain.Status) ([]*models.PolicyRequest, error) {
	if len(statuses) == 0 {
		return s.list(ctx, ``)
	}
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st)
	}
	return s.list(ctx, `WHERE status = ANY($1)`, pq.Array(names))
}

func (s *PostgresStore) list(ctx context.Context, where string, args ...any) ([]*models.PolicyRequest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM policy_requests `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list policy requests: %w", err)
	}
	defer rows.Close()
	var out []*models.PolicyRequest
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan policy request: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.PolicyRequest, error) {
	var (
		r                 models.PolicyRequest
		id, customer, avp int64
		status            string
	)
	if err := row.Scan(&id, &customer, &avp, &status, &r.RequestedOn); err != nil {
		return nil, err
	}
	r.ID = domain.PolicyRequestID(id)
	r.CustomerID = domain.CustomerID(customer)
	r.AvailablePolicyID = domain.AvailablePolicyID(avp)
	r.Status = domain.Status(status)
	return &r, nil
}
