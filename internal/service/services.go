package service

import (
	"github.com/skinaid/skinaid-web/internal/config"
	"github.com/skinaid/skinaid-web/internal/repository"
)

type Services struct {
	Auth    *AuthService
	History *HistoryService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, cfg),
		History: NewHistoryService(repos.Conversation, repos.Classification),
	}
}
