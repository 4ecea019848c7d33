package api

import "github.com/diskusi-dev/diskusi/internal/domain"

// Request DTOs. Creation payloads are typed here and validated at the
// boundary; handlers never see raw maps.

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadDetailResponse struct {
	Thread domain.Thread `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type AddedUserResponse struct {
	AddedUser domain.User `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
