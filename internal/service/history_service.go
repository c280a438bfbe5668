package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/domain"
	"github.com/skinaid/skinaid-web/internal/repository"
	"gorm.io/gorm"
)

// HistoryService owns the conversation transcripts and classification records
// of a user. Every operation is scoped to the caller's identity; ownership is
// checked here, never in handlers.
type HistoryService struct {
	conversationRepo   repository.ConversationRepository
	classificationRepo repository.ClassificationRepository
}

func NewHistoryService(conversationRepo repository.ConversationRepository, classificationRepo repository.ClassificationRepository) *HistoryService {
	return &HistoryService{
		conversationRepo:   conversationRepo,
		classificationRepo: classificationRepo,
	}
}

type History struct {
	Conversations   []*domain.Conversation   `json:"conversations"`
	Classifications []*domain.Classification `json:"classifications"`
}

// SaveChat appends messages to an existing conversation or starts a new one.
// A nil conversationID always creates. A non-nil ID that matches nothing also
// creates: the original client regenerates IDs across sessions, so an unknown
// ID is treated as "start over" rather than an error. Returns created=true
// when a new conversation was written.
//
// Two concurrent nil-ID saves race to create two conversations instead of
// one; callers serialize their own saves, so this is left as is.
func (s *HistoryService) SaveChat(ctx context.Context, userID uuid.UUID, conversationID *uuid.UUID, messages []domain.Message) (*domain.Conversation, bool, error) {
	if len(messages) == 0 {
		return nil, false, domain.ErrNoMessages
	}
	for _, m := range messages {
		if !m.Valid() {
			return nil, false, domain.ErrInvalidMessage
		}
	}

	if conversationID != nil {
		conversation, err := s.conversationRepo.GetByID(ctx, *conversationID)
		switch {
		case err == nil:
			if conversation.UserID != userID {
				return nil, false, domain.ErrNotConversationOwner
			}
			conversation.Messages = append(conversation.Messages, messages...)
			if err := s.conversationRepo.Update(ctx, conversation); err != nil {
				return nil, false, err
			}
			return conversation, false, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fall through to create
		default:
			return nil, false, err
		}
	}

	conversation := &domain.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Messages:  messages,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, false, err
	}
	return conversation, true, nil
}

// GetConversation fetches a single conversation, enforcing ownership.
func (s *HistoryService) GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*domain.Conversation, error) {
	conversation, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, domain.ErrNotConversationOwner
	}
	return conversation, nil
}

// GetHistory returns everything the user owns: conversations most recently
// updated first, classifications most recently created first. Either fetch
// failing fails the whole call; there is no partial result.
func (s *HistoryService) GetHistory(ctx context.Context, userID uuid.UUID) (*History, error) {
	conversations, err := s.conversationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	classifications, err := s.classificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &History{
		Conversations:   conversations,
		Classifications: classifications,
	}, nil
}

// SaveClassification records one image-classification result for the user.
func (s *HistoryService) SaveClassification(ctx context.Context, userID uuid.UUID, prediction, imageURL string) (*domain.Classification, error) {
	if prediction == "" || imageURL == "" {
		return nil, domain.ErrInvalidClassification
	}

	classification := &domain.Classification{
		ID:         uuid.New(),
		UserID:     userID,
		Prediction: prediction,
		ImageURL:   imageURL,
		CreatedAt:  time.Now(),
	}
	if err := s.classificationRepo.Create(ctx, classification); err != nil {
		return nil, err
	}
	return classification, nil
}
