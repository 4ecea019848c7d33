package domain

type User struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

type Credentials struct {
	Username Username
	Password string
}

type UserCreationData struct {
	Username Username
	Password string // bcrypt hash by the time it reaches storage
	Fullname string
}
