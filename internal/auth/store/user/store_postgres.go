package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"ims/internal/auth/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
	txcontext "ims/pkg/platform/tx"
)

const uniqueViolation = "23505"

// PostgresStore persists users in the users table. Writes join the
// transaction in ctx when one is open.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(u.ID), u.Username, u.PasswordHash, string(u.Role), u.Deleted, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("username %q: %w", u.Username, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.UserID) (*models.User, error) {
	return s.findOne(ctx, `WHERE id = $1`, uuid.UUID(id))
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, `WHERE lower(username) = lower($1)`, username)
}

func (s *PostgresStore) findOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `SELECT id, username, password_hash, role, deleted, created_at FROM users ` + where
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) MarkDeleted(ctx context.Context, id domain.UserID) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `UPDATE users SET deleted = TRUE WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, password_hash, role, deleted, created_at
		FROM users WHERE NOT deleted
		ORDER BY created_at, username
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u    models.User
		id   uuid.UUID
		role string
	)
	if err := row.Scan(&id, &u.Username, &u.PasswordHash, &role, &u.Deleted, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.ID = domain.UserID(id)
	u.Role = domain.Role(role)
	return &u, nil
}
