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

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("missing authentication"))
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Create(r.Context(), domain.ThreadCreationData{
		Title: body.Title,
		Body:  body.Body,
		Owner: user.UserId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.GetDetail(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadDetailResponse{Thread: thread})
}
