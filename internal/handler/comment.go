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

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("missing authentication"))
		return
	}
	threadId := chi.URLParam(r, "threadId")

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(r.Context(), domain.CommentCreationData{
		Content:  body.Content,
		ThreadId: threadId,
		Owner:    user.UserId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("missing authentication"))
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(r.Context(), commentId, threadId, user.UserId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
