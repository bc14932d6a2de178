package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"message_board/internal/app/service"
	"message_board/internal/common"

	"github.com/go-chi/chi/v5"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterRoutes mounts the public listing and, behind the authenticate
// middleware, the write endpoints. POST /{id} is the reply form: the path
// id is accepted and ignored, replies carry parentId in the body.
func (h *MessageHandler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Get("/", h.list)
	r.Group(func(authed chi.Router) {
		authed.Use(authenticate)
		authed.Post("/", h.create)
		authed.Post("/{id}", h.create)
		authed.Delete("/{id}", h.delete)
		authed.Put("/{id}", h.edit)
	})
}

func (h *MessageHandler) list(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Could not save message to the database",
			"error":   err.Error(),
		})
		return
	}

	message, err := h.messageService.Post(r.Context(), req)
	if err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Could not save message to the database",
			"error":   err.Error(),
		})
		return
	}
	// 204 is kept for compatibility; net/http drops the body for it, which
	// clients ignore on this status anyway.
	common.RespondWithJSON(w, http.StatusNoContent, message)
}

func (h *MessageHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req service.ModifyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errorMessage": "Couldn't delete message",
			"error":        err.Error(),
		})
		return
	}

	deleted, err := h.messageService.Delete(r.Context(), id, req)
	switch {
	case errors.Is(err, common.ErrForbidden):
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]string{
			"errorMessage": "Couldn't delete someone else's message",
		})
	case errors.Is(err, common.ErrNotFound):
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]string{
			"errorMessage": "Couldn't delete message",
		})
	case err != nil:
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errorMessage": "Couldn't delete message",
			"error":        err.Error(),
		})
	default:
		common.RespondWithJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Successfully deleted message with id: %s", deleted.ID),
		})
	}
}

func (h *MessageHandler) edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req service.ModifyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errorMessage": "Couldn't edit message",
			"error":        err.Error(),
		})
		return
	}

	updated, err := h.messageService.Edit(r.Context(), id, req)
	switch {
	case errors.Is(err, common.ErrForbidden):
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]string{
			"errorMessage": "Couldn't edit someone else's message",
		})
	case errors.Is(err, common.ErrNotFound):
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]string{
			"errorMessage": "Couldn't edit message",
		})
	case err != nil:
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errorMessage": "Couldn't edit message",
			"error":        err.Error(),
		})
	default:
		// 201 on update is kept for compatibility.
		common.RespondWithJSON(w, http.StatusCreated, updated)
	}
}
