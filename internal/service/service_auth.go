// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/store"
	"github.com/vkotlyar/account-keeper/internal/utils"
	"github.com/vkotlyar/account-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It issues and verifies the two session tokens: a short-lived access token
// and a longer-lived refresh token, each signed with its own HMAC secret.
type authService struct {
	// userRepository is the data-access layer used to confirm a user still
	// exists before a refresh token is issued for them.
	userRepository store.UserRepository

	// accessTokenSignKey is the HMAC secret used to sign and verify access tokens.
	accessTokenSignKey string

	// accessTokenDuration controls how long a newly issued access token remains valid.
	accessTokenDuration time.Duration

	// refreshTokenSignKey is the HMAC secret used to sign and verify refresh tokens.
	refreshTokenSignKey string

	// refreshTokenDuration controls how long a newly issued refresh token remains valid.
	refreshTokenDuration time.Duration

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		accessTokenSignKey:   cfg.AccessTokenSignKey,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenSignKey:  cfg.RefreshTokenSignKey,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		tokenIssuer:          cfg.TokenIssuer,
		logger:               logger,
	}
}

// CreateAccessToken issues a signed short-lived JWT for the given user.
// A missing signing secret or issuer is a configuration error and surfaces
// as a wrapped internal error.
func (a *authService) CreateAccessToken(ctx context.Context, userID uuid.UUID) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.accessTokenDuration, a.accessTokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateAccessToken").Msg("error: access token generation failed")
		return models.Token{}, NewInternalError("Something went wrong while generating access token").WithCause(err)
	}

	return token, nil
}

// CreateRefreshToken looks the user up again and issues a signed refresh
// token for them. Any failure, including the lookup, surfaces as
// ErrRefreshTokenGeneration.
func (a *authService) CreateRefreshToken(ctx context.Context, userID uuid.UUID) (models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateRefreshToken").Msg("error: user lookup failed")
		return models.Token{}, ErrRefreshTokenGeneration.WithCause(err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, a.refreshTokenDuration, a.refreshTokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateRefreshToken").Msg("error: refresh token generation failed")
		return models.Token{}, ErrRefreshTokenGeneration.WithCause(err)
	}

	return token, nil
}

// ParseRefreshToken validates and parses a raw refresh-token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseRefreshToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.refreshTokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
