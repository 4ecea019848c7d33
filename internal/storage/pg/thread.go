package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	id := "thread-" + uuid.NewString()
	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, date, owner)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, id, creationData.Title, creationData.Body, createdTs, creationData.Owner).Scan(
		&added.Id, &added.Title, &added.Owner,
	)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) ThreadExists(ctx context.Context, id domain.ThreadId) error {
	var found domain.ThreadId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM threads WHERE id = $1",
		id,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("thread id tidak ditemukan di database")
		}
		return fmt.Errorf("failed to check thread existence: %w", err)
	}
	return nil
}

func (s *Storage) ThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	var record domain.ThreadRecord
	err := s.db.QueryRowContext(ctx, `
        SELECT id, title, body, date, owner
        FROM threads
        WHERE id = $1
    `, id).Scan(&record.Id, &record.Title, &record.Body, &record.Date, &record.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, internal_errors.NotFound("thread id tidak ditemukan di database")
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return record, nil
}
