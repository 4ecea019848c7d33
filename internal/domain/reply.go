package domain

import "time"

type ReplyCreationData struct {
	Content   string
	CommentId CommentId
	Owner     UserId
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

// ReplyRecord is a reply row as stored.
type ReplyRecord struct {
	Id        ReplyId
	Owner     UserId
	Date      time.Time
	Content   string
	IsDeleted bool
}

// Reply is the display form inside a thread detail view.
type Reply struct {
	Id       ReplyId   `json:"id"`
	Username Username  `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

// NewReply builds the display form from a stored row, applying the
// soft-delete mask exactly once.
func NewReply(record ReplyRecord, username Username) Reply {
	return Reply{
		Id:       record.Id,
		Username: username,
		Date:     record.Date,
		Content:  MaskContent(record.Content, record.IsDeleted, KindReply),
	}
}
