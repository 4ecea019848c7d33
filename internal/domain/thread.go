package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle
	Body  string
	Owner UserId
}

// AddedThread is what the write path returns to the caller.
type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

// ThreadRecord is a thread row as stored, before username resolution.
type ThreadRecord struct {
	Id    ThreadId
	Title ThreadTitle
	Body  string
	Date  time.Time
	Owner UserId
}

// Thread is the fully assembled detail view: owner resolved to a username,
// comments nested in chronological order with masking already applied.
type Thread struct {
	Id       ThreadId    `json:"id"`
	Title    ThreadTitle `json:"title"`
	Body     string      `json:"body"`
	Date     time.Time   `json:"date"`
	Username Username    `json:"username"`
	Comments []Comment   `json:"comments"`
}
