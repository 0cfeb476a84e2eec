package http

import (
	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	corsOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		corsOrigin: cfg.CORSOrigin,
		logger:     logger,
	}
}
