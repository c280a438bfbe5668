package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/api/middleware"
	"github.com/skinaid/skinaid-web/internal/domain"
	"github.com/skinaid/skinaid-web/internal/service"
)

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

type SaveChatRequest struct {
	// ConversationID is optional: absent means "start a new conversation".
	ConversationID *string          `json:"conversationId"`
	Messages       []domain.Message `json:"messages"`
}

type SaveClassificationRequest struct {
	Prediction string `json:"prediction"`
	ImageURL   string `json:"imageUrl"`
}

// SaveChat appends to or creates a conversation. 201 on create, 200 on append.
func (h *HistoryHandler) SaveChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req SaveChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var conversationID *uuid.UUID
	if req.ConversationID != nil && *req.ConversationID != "" {
		id, err := uuid.Parse(*req.ConversationID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid conversation id.")
			return
		}
		conversationID = &id
	}

	conversation, created, err := h.historyService.SaveChat(r.Context(), userID, conversationID, req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoMessages), errors.Is(err, domain.ErrInvalidMessage):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotConversationOwner):
			respondError(w, http.StatusForbidden, "User not authorized for this conversation.")
		default:
			log.Printf("ERROR [history.SaveChat] %v", err)
			respondError(w, http.StatusInternalServerError, "Server error saving chat history.")
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, conversation)
}

// Get returns the user's conversations and classification records together.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	history, err := h.historyService.GetHistory(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [history.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Server error fetching history.")
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// GetConversation returns one conversation, enforcing ownership. A malformed
// ID reads the same as a missing one: 404.
func (h *HistoryHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	conversationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Conversation not found (invalid ID).")
		return
	}

	conversation, err := h.historyService.GetConversation(r.Context(), userID, conversationID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConversationNotFound):
			respondError(w, http.StatusNotFound, "Conversation not found.")
		case errors.Is(err, domain.ErrNotConversationOwner):
			respondError(w, http.StatusForbidden, "Not authorized to view this conversation.")
		default:
			log.Printf("ERROR [history.GetConversation] %v", err)
			respondError(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	respondJSON(w, http.StatusOK, conversation)
}

// SaveClassification records an image-classification result posted by the
// classification flow after the ML service responds.
func (h *HistoryHandler) SaveClassification(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req SaveClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	classification, err := h.historyService.SaveClassification(r.Context(), userID, req.Prediction, req.ImageURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidClassification) {
			respondError(w, http.StatusBadRequest, "Prediction and image URL are required.")
			return
		}
		log.Printf("ERROR [history.SaveClassification] %v", err)
		respondError(w, http.StatusInternalServerError, "Server error saving classification.")
		return
	}

	respondJSON(w, http.StatusCreated, classification)
}
