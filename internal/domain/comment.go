package domain

import "time"

type CommentCreationData struct {
	Content  string
	ThreadId ThreadId
	Owner    UserId
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentRecord is a comment row as stored. Content is raw and IsDeleted is
// the soft-delete flag; neither leaves the aggregation layer unmasked.
type CommentRecord struct {
	Id        CommentId
	Owner     UserId
	Date      time.Time
	Content   string
	IsDeleted bool
}

// Comment is the display form inside a thread detail view.
type Comment struct {
	Id       CommentId `json:"id"`
	Username Username  `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
	Replies  []Reply   `json:"replies"`
}

// NewComment builds the display form from a stored row, applying the
// soft-delete mask exactly once.
func NewComment(record CommentRecord, username Username, replies []Reply) Comment {
	if replies == nil {
		replies = []Reply{}
	}
	return Comment{
		Id:       record.Id,
		Username: username,
		Date:     record.Date,
		Content:  MaskContent(record.Content, record.IsDeleted, KindComment),
		Replies:  replies,
	}
}
