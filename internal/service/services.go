package service

import (
	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/media"
	"github.com/vkotlyar/account-keeper/internal/store"
)

type Services struct {
	AccountService AccountService
	AuthService    AuthService
}

func NewServices(storages store.Storages, uploader media.Uploader, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(storages.UserRepository, uploader, logger),
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
	}
}
