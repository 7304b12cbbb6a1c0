// Package localstore keeps drafts and submissions in a local SQLite file, for
// single-node deployments and development without Postgres.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS submission_drafts (
	session_id TEXT PRIMARY KEY,
	payload_json BLOB NOT NULL,
	saved_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	submission_json BLOB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions (created_at);
`

// Store provides SQLite-backed persistence for drafts and submissions.
type Store struct {
	sqlDB *sql.DB
}

var _ drafts.Persistence = (*Store)(nil)

// Open opens and migrates a SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load returns the draft saved for key.
func (s *Store) Load(ctx context.Context, key string) (drafts.Draft, error) {
	var payload []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload_json FROM submission_drafts WHERE session_id = ?`, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return drafts.Draft{}, drafts.ErrNotFound
	}
	if err != nil {
		return drafts.Draft{}, fmt.Errorf("get draft: %w", err)
	}
	return drafts.Decode(payload)
}

// Save upserts the draft for key.
func (s *Store) Save(ctx context.Context, key string, d drafts.Draft) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("draft key is required")
	}
	payload, err := drafts.Encode(d)
	if err != nil {
		return err
	}
	savedAt := d.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO submission_drafts (session_id, payload_json, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		    payload_json = excluded.payload_json,
		    saved_at = excluded.saved_at`,
		key, payload, savedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put draft: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM submission_drafts WHERE session_id = ?`, key); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// InsertSubmission stores a submission as a JSON document.
func (s *Store) InsertSubmission(ctx context.Context, sub *models.Submission) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if sub.Status == "" {
		sub.Status = "pending"
	}
	doc, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO submissions (id, type, title, submission_json, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, string(sub.Type), sub.Title, doc, sub.Status, sub.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return errs.NewDatabaseError("create", "submission", err)
	}
	return nil
}

// ListSubmissions returns stored submissions, newest first.
func (s *Store) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT submission_json FROM submissions ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []models.Submission
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		var sub models.Submission
		if err := json.Unmarshal(doc, &sub); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return out, nil
}
