package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("missing authentication"))
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Create(r.Context(), domain.ReplyCreationData{
		Content:   body.Content,
		CommentId: commentId,
		Owner:     user.UserId,
	}, threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("missing authentication"))
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")

	if err := h.reply.Delete(r.Context(), replyId, commentId, threadId, user.UserId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
