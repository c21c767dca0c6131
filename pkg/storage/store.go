package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ErrUploadNotFound is returned when no upload exists for an id
var ErrUploadNotFound = errors.New("upload not found")

// Upload is one stored transcript
type Upload struct {
	ID        string    `db:"id"`
	Filename  string    `db:"filename"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// Store defines the persistence operations for uploaded transcripts
type Store interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// SaveUpload inserts a new transcript
	SaveUpload(ctx context.Context, upload *Upload) error

	// GetUpload retrieves a transcript by id. Returns ErrUploadNotFound if
	// no such upload exists.
	GetUpload(ctx context.Context, id string) (*Upload, error)

	// DeleteUploadsBefore removes transcripts created before cutoff and
	// returns how many were deleted
	DeleteUploadsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// sqlStore implements Store on sqlx
type sqlStore struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewStore creates a Store backed by db
func NewStore(db *sqlx.DB, log *zap.Logger) Store {
	return &sqlStore{db: db, log: log}
}

func (s *sqlStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *sqlStore) SaveUpload(ctx context.Context, upload *Upload) error {
	const query = `INSERT INTO uploads (id, filename, content, created_at)
		VALUES (:id, :filename, :content, :created_at)`

	if _, err := s.db.NamedExecContext(ctx, query, upload); err != nil {
		return fmt.Errorf("failed to save upload %s: %w", upload.ID, err)
	}
	s.log.Debug("upload saved",
		zap.String("id", upload.ID),
		zap.String("filename", upload.Filename),
		zap.Int("bytes", len(upload.Content)))
	return nil
}

func (s *sqlStore) GetUpload(ctx context.Context, id string) (*Upload, error) {
	const query = `SELECT id, filename, content, created_at FROM uploads WHERE id = ?`

	var upload Upload
	if err := s.db.GetContext(ctx, &upload, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to get upload %s: %w", id, err)
	}
	return &upload, nil
}

func (s *sqlStore) DeleteUploadsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM uploads WHERE created_at < ?`

	res, err := s.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale uploads: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted uploads: %w", err)
	}
	if deleted > 0 {
		s.log.Info("stale uploads deleted",
			zap.Int64("count", deleted),
			zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}
