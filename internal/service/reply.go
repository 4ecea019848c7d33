package service

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

type ReplyService interface {
	Create(ctx context.Context, creationData domain.ReplyCreationData, threadId domain.ThreadId) (domain.AddedReply, error)
	Delete(ctx context.Context, replyId domain.ReplyId, commentId domain.CommentId, threadId domain.ThreadId, userId domain.UserId) error
}

type Reply struct {
	storage  ReplyStorage
	comments CommentChecker
	threads  ThreadChecker
}

type ReplyStorage interface {
	CreateReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error)
	ReplyInCommentExists(ctx context.Context, replyId domain.ReplyId, commentId domain.CommentId) error
	VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, userId domain.UserId) error
	SoftDeleteReply(ctx context.Context, replyId domain.ReplyId) error
}

type CommentChecker interface {
	CommentInThreadExists(ctx context.Context, commentId domain.CommentId, threadId domain.ThreadId) error
}

func NewReply(storage ReplyStorage, comments CommentChecker, threads ThreadChecker) *Reply {
	return &Reply{storage, comments, threads}
}

func (r *Reply) Create(ctx context.Context, creationData domain.ReplyCreationData, threadId domain.ThreadId) (domain.AddedReply, error) {
	if err := r.threads.ThreadExists(ctx, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.comments.CommentInThreadExists(ctx, creationData.CommentId, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	return r.storage.CreateReply(ctx, creationData)
}

// Delete soft-deletes a reply. Checks run in fixed order: thread exists,
// comment belongs to thread, reply belongs to comment, caller owns the reply.
func (r *Reply) Delete(ctx context.Context, replyId domain.ReplyId, commentId domain.CommentId, threadId domain.ThreadId, userId domain.UserId) error {
	if err := r.threads.ThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := r.comments.CommentInThreadExists(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := r.storage.ReplyInCommentExists(ctx, replyId, commentId); err != nil {
		return err
	}
	if err := r.storage.VerifyReplyOwner(ctx, replyId, userId); err != nil {
		return err
	}
	return r.storage.SoftDeleteReply(ctx, replyId)
}
