package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"youtube-trending/models"
	"youtube-trending/utils"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS export_runs (
		run_id       VARCHAR(36) PRIMARY KEY,
		source       TEXT        NOT NULL,
		record_count BIGINT      NOT NULL,
		created_at   TIMESTAMP   NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trending_records (
		run_id                 VARCHAR(36) NOT NULL,
		position               INTEGER     NOT NULL,
		video_id               TEXT        NOT NULL,
		trending_date          TEXT,
		title                  TEXT,
		channel_title          TEXT,
		category_id            TEXT,
		publish_time           TEXT,
		tags                   TEXT,
		views                  BIGINT DEFAULT 0,
		likes                  BIGINT DEFAULT 0,
		dislikes               BIGINT DEFAULT 0,
		comment_count          BIGINT DEFAULT 0,
		thumbnail_link         TEXT,
		comments_disabled      TEXT,
		ratings_disabled       TEXT,
		video_error_or_removed TEXT,
		description            TEXT,
		PRIMARY KEY (run_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trending_records_video ON trending_records (video_id)`,
	`CREATE INDEX IF NOT EXISTS idx_trending_records_category ON trending_records (category_id)`,
	`CREATE TABLE IF NOT EXISTS trend_predictions (
		run_id         VARCHAR(36) NOT NULL,
		video_id       TEXT        NOT NULL,
		predicted_days BIGINT      NOT NULL,
		PRIMARY KEY (run_id, video_id)
	)`,
}

type recordRowDB struct {
	RunID    string `db:"run_id"`
	Position int    `db:"position"`
	*models.Record
}

const insertRecordQuery = `
	INSERT INTO trending_records (
		run_id, position, video_id, trending_date, title, channel_title, category_id,
		publish_time, tags, views, likes, dislikes, comment_count, thumbnail_link,
		comments_disabled, ratings_disabled, video_error_or_removed, description
	) VALUES (
		:run_id, :position, :video_id, :trending_date, :title, :channel_title, :category_id,
		:publish_time, :tags, :views, :likes, :dislikes, :comment_count, :thumbnail_link,
		:comments_disabled, :ratings_disabled, :video_error_or_removed, :description
	)`

// SQLWriter stores dataset snapshots in PostgreSQL or SQLite
type SQLWriter struct {
	db     *sqlx.DB
	logger *utils.Logger
}

// NewSQLWriter opens the database for driver ("postgres" or "sqlite"),
// pings it with retries and creates the tables if missing.
func NewSQLWriter(ctx context.Context, driver, dsn string, maxRetries int, logger *utils.Logger) (*SQLWriter, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Minute * 5)
	}

	err = utils.RetryWithBackoff(ctx, maxRetries, time.Second, func() error {
		return db.PingContext(ctx)
	}, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	w := &SQLWriter{db: db, logger: logger}
	if err := w.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Connected to %s database", driver)
	return w, nil
}

func (w *SQLWriter) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := w.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// Export inserts the records and predictions under a new run id in one
// transaction and returns the run id.
func (w *SQLWriter) Export(ctx context.Context, source string, records []*models.Record, predictions map[string]int) (string, error) {
	runID := uuid.NewString()

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, tx.Rebind(
		`INSERT INTO export_runs (run_id, source, record_count, created_at) VALUES (?, ?, ?, ?)`),
		runID, source, len(records), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert export run: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, insertRecordQuery)
	if err != nil {
		return "", fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err = stmt.ExecContext(ctx, recordRowDB{RunID: runID, Position: i, Record: r}); err != nil {
			return "", fmt.Errorf("failed to insert record %d (%s): %w", i, r.VideoID, err)
		}
	}

	predStmt, err := tx.PreparexContext(ctx, tx.Rebind(
		`INSERT INTO trend_predictions (run_id, video_id, predicted_days) VALUES (?, ?, ?)`))
	if err != nil {
		return "", fmt.Errorf("failed to prepare prediction insert: %w", err)
	}
	defer predStmt.Close()

	for vid, days := range predictions {
		if _, err = predStmt.ExecContext(ctx, runID, vid, days); err != nil {
			return "", fmt.Errorf("failed to insert prediction for %s: %w", vid, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Exported run %s: %d records, %d predictions", runID, len(records), len(predictions))
	return runID, nil
}

// Close closes the database connection
func (w *SQLWriter) Close() error {
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}
