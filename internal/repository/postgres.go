package repository

import (
	"context"
	"fmt"
	"time"

	"travelbot/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const chatLogSchema = `
	CREATE TABLE IF NOT EXISTS chat_logs (
		id         UUID PRIMARY KEY,
		message    TEXT NOT NULL,
		intent     TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		slots      JSONB NOT NULL DEFAULT '{}'::jsonb,
		reply      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresRepository handles chat log storage
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return NewPostgresRepositoryFromDB(db), nil
}

// NewPostgresRepositoryFromDB wraps an existing connection
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the chat log table if it does not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, chatLogSchema); err != nil {
		return fmt.Errorf("failed to create chat_logs table: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable
func (r *PostgresRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// DatabaseName returns the name of the connected database
func (r *PostgresRepository) DatabaseName(ctx context.Context) (string, error) {
	var name string
	if err := r.db.GetContext(ctx, &name, `SELECT current_database()`); err != nil {
		return "", fmt.Errorf("failed to get database name: %w", err)
	}
	return name, nil
}

// ListTables returns up to limit table names from the public schema
func (r *PostgresRepository) ListTables(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
		LIMIT $1
	`
	var tables []string
	if err := r.db.SelectContext(ctx, &tables, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// LogChat writes a classified message to the chat log
func (r *PostgresRepository) LogChat(ctx context.Context, entry *model.ChatLogEntry) error {
	query := `
		INSERT INTO chat_logs (id, message, intent, confidence, slots, reply, created_at)
		VALUES (:id, :message, :intent, :confidence, :slots, :reply, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

// RecentChats returns the latest chat log entries, newest first
func (r *PostgresRepository) RecentChats(ctx context.Context, limit int) ([]model.ChatLogEntry, error) {
	query := `
		SELECT id, message, intent, confidence, slots, reply, created_at
		FROM chat_logs
		ORDER BY created_at DESC
		LIMIT $1
	`
	entries := []model.ChatLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch chat logs: %w", err)
	}
	return entries, nil
}
