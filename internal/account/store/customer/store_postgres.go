package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"ims/internal/account/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
	txcontext "ims/pkg/platform/tx"
)

const columns = `id, user_id, name, email, phone, address`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, c *models.Customer) error {
	query := `
		INSERT INTO customers (user_id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query,
		uuid.UUID(c.UserID), c.Name, c.Email, c.Phone, c.Address).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("customer for user %s: %w", c.UserID, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.CustomerID) (*models.Customer, error) {
	return s.findOne(ctx, `WHERE id = $1`, int64(id))
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID domain.UserID) (*models.Customer, error) {
	return s.findOne(ctx, `WHERE user_id = $1`, uuid.UUID(userID))
}

func (s *PostgresStore) findOne(ctx context.Context, where string, arg any) (*models.Customer, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `SELECT `+columns+` FROM customers `+where, arg)
	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Customer) error {
	query := `UPDATE customers SET name = $2, email = $3, phone = $4, address = $5 WHERE id = $1`
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, query, int64(c.ID), c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var out []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row scanner) (*models.Customer, error) {
	var (
		c      models.Customer
		id     int64
		userID uuid.UUID
	)
	if err := row.Scan(&id, &userID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
		return nil, err
	}
	c.ID = domain.CustomerID(id)
	c.UserID = domain.UserID(userID)
	return &c, nil
}
