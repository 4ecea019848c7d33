package handler

import (
	"github.com/diskusi-dev/diskusi/internal/service"
)

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService) *Handler {
	return &Handler{auth, thread, comment, reply}
}
