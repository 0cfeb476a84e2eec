package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/vkotlyar/account-keeper/models"
)

type AccountService interface {
	Register(ctx context.Context, username, email, password string, avatar models.FileUpload) (models.User, error)
	Login(ctx context.Context, username, email, password string) (models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	UpdateDetails(ctx context.Context, userID uuid.UUID, username, email string) (models.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar models.FileUpload) (models.User, error)
	UserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type AuthService interface {
	CreateAccessToken(ctx context.Context, userID uuid.UUID) (models.Token, error)
	CreateRefreshToken(ctx context.Context, userID uuid.UUID) (models.Token, error)
	ParseRefreshToken(ctx context.Context, tokenString string) (models.Token, error)
}
