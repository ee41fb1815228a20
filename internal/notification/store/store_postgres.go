package store

import (
	"context"
	"database/sql"
	"fmt"

	"ims/internal/notification/models"
	"ims/pkg/domain"
	txcontext "ims/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, n *models.Notification) error {
	var customerID, agentID sql.NullInt64
	if n.CustomerID != nil {
		customerID = sql.NullInt64{Int64: int64(*n.CustomerID), Valid: true}
	}
	if n.AgentID != nil {
		agentID = sql.NullInt64{Int64: int64(*n.AgentID), Valid: true}
	}
	query := `
		INSERT INTO notifications (customer_id, agent_id, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query, customerID, agentID, n.Message, n.CreatedAt).Scan(&id); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	n.ID = domain.NotificationID(id)
	return nil
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.Notification, error) {
	return s.list(ctx, `customer_id = $1`, int64(customerID))
}

func (s *PostgresStore) ListByAgent(ctx context.Context, agentID domain.AgentID) ([]*models.Notification, error) {
	return s.list(ctx, `agent_id = $1`, int64(agentID))
}

func (s *PostgresStore) list(ctx context.Context, where string, arg any) ([]*models.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, agent_id, message, created_at
		FROM notifications WHERE `+where+`
		ORDER BY created_at DESC, id DESC
	`, arg)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var out []*models.Notification
	for rows.Next() {
		var (
			n                   models.Notification
			id                  int64
			customerID, agentID sql.NullInt64
		)
		if err := rows.Scan(&id, &customerID, &agentID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.ID = domain.NotificationID(id)
		if customerID.Valid {
			v := domain.CustomerID(customerID.Int64)
			n.CustomerID = &v
		}
		if agentID.Valid {
			v := domain.AgentID(agentID.Int64)
			n.AgentID = &v
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}
