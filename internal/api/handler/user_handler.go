package handler

import (
	"encoding/json"
	"net/http"

	"message_board/internal/app/service"
	"message_board/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.create)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Could not create user",
			"errors":  err.Error(),
		})
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Could not create user",
			"errors":  err.Error(),
		})
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}
