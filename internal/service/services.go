package service

import (
	"github.com/mrivera/user-auth-service/internal/config"
	"github.com/mrivera/user-auth-service/internal/repository"
)

type Services struct {
	Auth *AuthService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
	}
}
