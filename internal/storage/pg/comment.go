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

func (s *Storage) CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	id := "comment-" + uuid.NewString()
	createdTs := time.Now().UTC().Round(time.Microsecond)

	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, owner, date, content, is_delete, thread_id)
        VALUES ($1, $2, $3, $4, FALSE, $5)
        RETURNING id, content, owner
    `, id, creationData.Owner, createdTs, creationData.Content, creationData.ThreadId).Scan(
		&added.Id, &added.Content, &added.Owner,
	)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) CommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, owner, date, content, is_delete
        FROM comments
        WHERE thread_id = $1
        ORDER BY date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRecord
	for rows.Next() {
		var record domain.CommentRecord
		if err := rows.Scan(&record.Id, &record.Owner, &record.Date, &record.Content, &record.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, record)
	}
	return comments, rows.Err()
}

// CommentInThreadExists reports whether a comment belongs to the given
// thread. A comment under a different thread is treated as absent.
func (s *Storage) CommentInThreadExists(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error {
	var found domain.CommentId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM comments WHERE id = $1 AND thread_id = $2",
		commentId, threadId,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("comment id yang cocok tidak ditemukan di database")
		}
		return fmt.Errorf("failed to check comment existence: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	var found domain.CommentId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM comments WHERE id = $1 AND owner = $2",
		commentId, userId,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Forbidden("user id tidak cocok dengan owner comment")
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	return nil
}

// SoftDeleteComment flips is_delete. The row and its raw content stay.
func (s *Storage) SoftDeleteComment(ctx context.Context, commentId domain.CommentId) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE comments SET is_delete = TRUE WHERE id = $1",
		commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to soft delete comment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("comment id yang cocok tidak ditemukan di database")
	}
	return nil
}
