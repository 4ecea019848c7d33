package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

type ThreadService interface {
	Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error)
	GetDetail(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
}

type Thread struct {
	storage  ThreadStorage
	comments CommentReader
	replies  ReplyReader
	users    UserStorage
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error)
	ThreadExists(ctx context.Context, id domain.ThreadId) error
	ThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error)
}

type CommentReader interface {
	CommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
}

type ReplyReader interface {
	RepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRecord, error)
}

type UserStorage interface {
	UsernameById(ctx context.Context, id domain.UserId) (domain.Username, error)
}

func NewThread(storage ThreadStorage, comments CommentReader, replies ReplyReader, users UserStorage) *Thread {
	return &Thread{storage, comments, replies, users}
}

func (t *Thread) Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	return t.storage.CreateThread(ctx, creationData)
}

// GetDetail assembles a thread with its comments and nested replies, owner
// usernames resolved and soft-deleted content masked. The existence check
// runs first and short-circuits all further I/O. Per-comment reply fetches
// and username lookups fan out concurrently; the first error cancels the
// remaining fetches and fails the whole request.
func (t *Thread) GetDetail(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if err := t.storage.ThreadExists(ctx, id); err != nil {
		return domain.Thread{}, err
	}

	commentRecords, err := t.comments.CommentsByThreadId(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}

	usernames := newUsernameResolver(t.users)

	// Indexed writes keep the storage ordering (date ASC) no matter which
	// goroutine finishes first.
	comments := make([]domain.Comment, len(commentRecords))
	g, gctx := errgroup.WithContext(ctx)
	for i, record := range commentRecords {
		g.Go(func() error {
			replyRecords, err := t.replies.RepliesByCommentId(gctx, record.Id)
			if err != nil {
				return err
			}

			replies := make([]domain.Reply, len(replyRecords))
			for j, replyRecord := range replyRecords {
				username, err := usernames.Resolve(gctx, replyRecord.Owner)
				if err != nil {
					return err
				}
				replies[j] = domain.NewReply(replyRecord, username)
			}

			username, err := usernames.Resolve(gctx, record.Owner)
			if err != nil {
				return err
			}
			comments[i] = domain.NewComment(record, username, replies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Thread{}, err
	}

	threadRecord, err := t.storage.ThreadById(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}
	ownerUsername, err := usernames.Resolve(ctx, threadRecord.Owner)
	if err != nil {
		return domain.Thread{}, err
	}

	return domain.Thread{
		Id:       threadRecord.Id,
		Title:    threadRecord.Title,
		Body:     threadRecord.Body,
		Date:     threadRecord.Date,
		Username: ownerUsername,
		Comments: comments,
	}, nil
}
