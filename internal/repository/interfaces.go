package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
}

type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	Update(ctx context.Context, conversation *domain.Conversation) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Conversation, error)
}

type ClassificationRepository interface {
	Create(ctx context.Context, classification *domain.Classification) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Classification, error)
}

type Repositories struct {
	User           UserRepository
	Conversation   ConversationRepository
	Classification ClassificationRepository
}
