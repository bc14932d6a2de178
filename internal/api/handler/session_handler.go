package handler

import (
	"encoding/json"
	"net/http"

	"message_board/internal/app/service"
	"message_board/internal/common"

	"github.com/go-chi/chi/v5"
)

type SessionHandler struct {
	authService *service.AuthService
}

func NewSessionHandler(authService *service.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.create)
}

// create is the login endpoint. Any failure, bad payload included, is the
// same 400 notFound answer so credentials cannot be probed.
func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]bool{"notFound": true})
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]bool{"notFound": true})
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
