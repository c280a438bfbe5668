package domain

import (
	"time"

	"github.com/google/uuid"
)

// Classification is one saved image-classification result. Records are written
// once by the classification flow and only ever read back through history.
type Classification struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Prediction string    `json:"prediction" gorm:"not null"`
	ImageURL   string    `json:"imageUrl" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}
