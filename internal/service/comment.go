package service

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

type CommentService interface {
	Create(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error)
	Delete(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId, userId domain.UserId) error
}

type Comment struct {
	storage CommentStorage
	threads ThreadChecker
}

type CommentStorage interface {
	CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error)
	CommentInThreadExists(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error
	VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error
	SoftDeleteComment(ctx context.Context, commentId domain.CommentId) error
}

type ThreadChecker interface {
	ThreadExists(ctx context.Context, id domain.ThreadId) error
}

func NewComment(storage CommentStorage, threads ThreadChecker) *Comment {
	return &Comment{storage, threads}
}

func (c *Comment) Create(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	if err := c.threads.ThreadExists(ctx, creationData.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	return c.storage.CreateComment(ctx, creationData)
}

// Delete soft-deletes a comment. Checks run in fixed order: thread exists,
// comment belongs to that thread, caller owns the comment. The first failing
// check determines the reported error.
func (c *Comment) Delete(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId, userId domain.UserId) error {
	if err := c.threads.ThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := c.storage.CommentInThreadExists(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := c.storage.VerifyCommentOwner(ctx, commentId, userId); err != nil {
		return err
	}
	return c.storage.SoftDeleteComment(ctx, commentId)
}
