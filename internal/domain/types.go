package domain

type (
	UserId   = string
	Username = string

	ThreadId    = string
	ThreadTitle = string

	CommentId = string
	ReplyId   = string
)
