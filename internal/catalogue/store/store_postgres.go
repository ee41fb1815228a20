package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ims/internal/catalogue/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
	txcontext "ims/pkg/platform/tx"
)

const columns = `id, name, coverage_details, base_premium, validity_period`

// PostgresStore keeps the catalogue in available_policies. Premiums are
// NUMERIC and round-trip through decimal.Decimal without float conversion.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, p *models.AvailablePolicy) error {
	query := `
		INSERT INTO available_policies (name, coverage_details, base_premium, validity_period)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query,
		p.Name, p.CoverageDetails, p.BasePremium, p.ValidityPeriod).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert available policy: %w", err)
	}
	p.ID = domain.AvailablePolicyID(id)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.AvailablePolicyID) (*models.AvailablePolicy, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM available_policies WHERE id = $1`, int64(id))
	p, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find available policy: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Update(ctx context.Context, p *models.AvailablePolicy) error {
	query := `
		UPDATE available_policies
		SET name = $2, coverage_details = $3, base_premium = $4, validity_period = $5
		WHERE id = $1
	`
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, query,
		int64(p.ID), p.Name, p.CoverageDetails, p.BasePremium, p.ValidityPeriod)
	if err != nil {
		return fmt.Errorf("update available policy: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.AvailablePolicyID) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `DELETE FROM available_policies WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete available policy: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.AvailablePolicy, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM available_policies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list available policies: %w", err)
	}
	defer rows.Close()
	var out []*models.AvailablePolicy
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan available policy: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.AvailablePolicy, error) {
	var (
		p       models.AvailablePolicy
		id      int64
		premium decimal.Decimal
	)
	if err := row.Scan(&id, &p.Name, &p.CoverageDetails, &premium, &p.ValidityPeriod); err != nil {
		return nil, err
	}
	p.ID = domain.AvailablePolicyID(id)
	p.BasePremium = premium
	return &p, nil
}
