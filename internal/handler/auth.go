package handler

import (
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), domain.UserCreationData{
		Username: body.Username,
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserResponse{AddedUser: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), domain.Credentials{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.LoginResponse{AccessToken: token})
}
