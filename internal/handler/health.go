package handler

import (
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, nil)
}
