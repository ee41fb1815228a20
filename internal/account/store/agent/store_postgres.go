package agent

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

const columns = `id, user_id, name, email, phone`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, a *models.Agent) error {
	query := `
		INSERT INTO agents (user_id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query,
		uuid.UUID(a.UserID), a.Name, a.Email, a.Phone).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("agent for user %s: %w", a.UserID, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.AgentID) (*models.Agent, error) {
	return s.findOne(ctx, `WHERE id = $1`, int64(id))
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID domain.UserID) (*models.Agent, error) {
	return s.findOne(ctx, `WHERE user_id = $1`, uuid.UUID(userID))
}

func (s *PostgresStore) findOne(ctx context.Context, where string, arg any) (*models.Agent, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `SELECT `+columns+` FROM agents `+where, arg)
	a, err := scanAgent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find agent: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) Update(ctx context.Context, a *models.Agent) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx,
		`UPDATE agents SET name = $2, email = $3, phone = $4 WHERE id = $1`,
		int64(a.ID), a.Name, a.Email, a.Phone)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Agent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM agents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var out []*models.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAgent(row scanner) (*models.Agent, error) {
	var (
		a      models.Agent
		id     int64
		userID uuid.UUID
	)
	if err := row.Scan(&id, &userID, &a.Name, &a.Email, &a.Phone); err != nil {
		return nil, err
	}
	a.ID = domain.AgentID(id)
	a.UserID = domain.UserID(userID)
	return &a, nil
}
