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

func (s *Storage) CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	id := "reply-" + uuid.NewString()
	createdTs := time.Now().UTC().Round(time.Microsecond)

	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO replies (id, owner, date, content, is_delete, comment_id)
        VALUES ($1, $2, $3, $4, FALSE, $5)
        RETURNING id, content, owner
    `, id, creationData.Owner, createdTs, creationData.Content, creationData.CommentId).Scan(
		&added.Id, &added.Content, &added.Owner,
	)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

func (s *Storage) RepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, owner, date, content, is_delete
        FROM replies
        WHERE comment_id = $1
        ORDER BY date ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyRecord
	for rows.Next() {
		var record domain.ReplyRecord
		if err := rows.Scan(&record.Id, &record.Owner, &record.Date, &record.Content, &record.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply row: %w", err)
		}
		replies = append(replies, record)
	}
	return replies, rows.Err()
}

// ReplyInCommentExists reports whether a reply belongs to the given comment.
// A reply under a different comment is treated as absent.
func (s *Storage) ReplyInCommentExists(ctx context.Context, replyId domain.ReplyId, commentId domain.CommentId) error {
	var found domain.ReplyId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM replies WHERE id = $1 AND comment_id = $2",
		replyId, commentId,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("reply id yang cocok tidak ditemukan di database")
		}
		return fmt.Errorf("failed to check reply existence: %w", err)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, userId domain.UserId) error {
	var found domain.ReplyId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM replies WHERE id = $1 AND owner = $2",
		replyId, userId,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Forbidden("user id tidak cocok dengan owner reply")
		}
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}
	return nil
}

func (s *Storage) SoftDeleteReply(ctx context.Context, replyId domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE replies SET is_delete = TRUE WHERE id = $1",
		replyId,
	)
	if err != nil {
		return fmt.Errorf("failed to soft delete reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("reply id yang cocok tidak ditemukan di database")
	}
	return nil
}
