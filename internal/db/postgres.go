package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/aletheia-labs/radar-workspace/internal/models"
)

// SaveThreads inserts threads into the global thread list. Conflicting ids
// are ignored so existing entries always win over re-fetched ones.
func (s *PostgresStore) SaveThreads(ctx context.Context, threads []models.ConversationThread) error {
	if len(threads) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO threads (id, radar_id, title)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range threads {
		if _, err := stmt.ExecContext(ctx, t.ID, nullString(t.RadarID), t.Title); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) ListThreads(ctx context.Context) ([]models.ConversationThread, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(radar_id, ''), title
		FROM threads
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanThreads(rows)
}

func (s *PostgresStore) ListThreadsForRadar(ctx context.Context, radarID string) ([]models.ConversationThread, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(radar_id, ''), title
		FROM threads
		WHERE radar_id = $1
		ORDER BY created_at DESC`, radarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanThreads(rows)
}

func scanThreads(rows *sql.Rows) ([]models.ConversationThread, error) {
	var threads []models.ConversationThread
	for rows.Next() {
		var t models.ConversationThread
		if err := rows.Scan(&t.ID, &t.RadarID, &t.Title); err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

// SaveDocuments inserts projected documents for a radar. Conflicting ids
// are ignored: repeated projections of the same capture never duplicate the
// displayed list.
func (s *PostgresStore) SaveDocuments(ctx context.Context, radarID string, docs []models.ProjectedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, radar_id, name, url, asset_type, title, summary, is_radar_asset)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (radar_id, id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range docs {
		if _, err := stmt.ExecContext(ctx,
			d.ID,
			radarID,
			d.Name,
			d.URL,
			string(d.AssetType),
			d.Title,
			d.Summary,
			d.IsRadarAsset); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) ListDocuments(ctx context.Context, radarID string) ([]models.ProjectedDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url, asset_type, title, summary, is_radar_asset
		FROM documents
		WHERE radar_id = $1
		ORDER BY created_at ASC`, radarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.ProjectedDocument
	for rows.Next() {
		var d models.ProjectedDocument
		var assetType string
		if err := rows.Scan(&d.ID, &d.Name, &d.URL, &assetType, &d.Title, &d.Summary, &d.IsRadarAsset); err != nil {
			return nil, err
		}
		d.AssetType = models.AssetType(assetType)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SaveSyncStatus upserts the latest sync journal entry for a radar.
func (s *PostgresStore) SaveSyncStatus(ctx context.Context, status *models.SyncStatus) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_journal (radar_id, outcome, attempts, max_attempts, initial_marker, message, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (radar_id) DO UPDATE SET
			outcome = EXCLUDED.outcome,
			attempts = EXCLUDED.attempts,
			max_attempts = EXCLUDED.max_attempts,
			initial_marker = EXCLUDED.initial_marker,
			message = EXCLUDED.message,
			started_at = EXCLUDED.started_at,
			finished_at = EXCLUDED.finished_at`,
		status.RadarID,
		string(status.Outcome),
		status.Attempts,
		status.MaxAttempts,
		status.InitialMarker,
		status.Message,
		status.StartedAt,
		nullTime(status.FinishedAt))
	return err
}

// GetSyncStatus returns the latest journal entry for a radar, or nil when
// the radar has never been synced.
func (s *PostgresStore) GetSyncStatus(ctx context.Context, radarID string) (*models.SyncStatus, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT radar_id, outcome, attempts, max_attempts, COALESCE(initial_marker, ''), COALESCE(message, ''), started_at, finished_at
		FROM sync_journal
		WHERE radar_id = $1`, radarID)

	var status models.SyncStatus
	var outcome string
	var finishedAt sql.NullTime
	err := row.Scan(
		&status.RadarID,
		&outcome,
		&status.Attempts,
		&status.MaxAttempts,
		&status.InitialMarker,
		&status.Message,
		&status.StartedAt,
		&finishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	status.Outcome = models.SyncOutcome(outcome)
	if finishedAt.Valid {
		status.FinishedAt = finishedAt.Time
	}
	return &status, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
