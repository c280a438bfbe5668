package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/domain"
	"gorm.io/gorm"
)

type classificationRepository struct {
	db *gorm.DB
}

func NewClassificationRepository(db *gorm.DB) *classificationRepository {
	return &classificationRepository{db: db}
}

func (r *classificationRepository) Create(ctx context.Context, classification *domain.Classification) error {
	return r.db.WithContext(ctx).Create(classification).Error
}

func (r *classificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Classification, error) {
	var classifications []*domain.Classification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&classifications).Error
	if err != nil {
		return nil, err
	}
	return classifications, nil
}
