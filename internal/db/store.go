package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/aletheia-labs/radar-workspace/internal/models"
)

// Store holds the caller-owned collections of the workspace: the global
// thread list, the per-radar projected documents and the sync journal. The
// orchestrator core never touches it; the service layer applies the core's
// returned deltas here.
type Store interface {
	// Thread operations
	SaveThreads(ctx context.Context, threads []models.ConversationThread) error
	ListThreads(ctx context.Context) ([]models.ConversationThread, error)
	ListThreadsForRadar(ctx context.Context, radarID string) ([]models.ConversationThread, error)

	// Document operations
	SaveDocuments(ctx context.Context, radarID string, docs []models.ProjectedDocument) error
	ListDocuments(ctx context.Context, radarID string) ([]models.ProjectedDocument, error)

	// Sync journal operations
	SaveSyncStatus(ctx context.Context, status *models.SyncStatus) error
	GetSyncStatus(ctx context.Context, radarID string) (*models.SyncStatus, error)
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Migrate() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(s.db, "internal/db/migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
