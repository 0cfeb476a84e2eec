package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/media"
	"github.com/vkotlyar/account-keeper/internal/store"
	"github.com/vkotlyar/account-keeper/internal/utils"
	"github.com/vkotlyar/account-keeper/models"
)

// registrationRequiredFields are checked in order; the first empty one fails
// the registration with "<field> is required".
var registrationRequiredFields = []string{"username", "email", "password"}

// accountService is the concrete implementation of AccountService.
// It orchestrates the credential store and the media host for the whole
// account lifecycle: registration, login, password change, and profile
// updates.
type accountService struct {
	userRepository store.UserRepository
	uploader       media.Uploader

	logger *logger.Logger
}

// NewAccountService constructs a new AccountService wired to the given
// UserRepository and media uploader.
func NewAccountService(userRepository store.UserRepository, uploader media.Uploader, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		uploader:       uploader,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The validation/ordering contract is strict: required fields first, then the
// duplicate check, then the avatar requirement, then the upload, then the
// insert. A missing field fails before any database or media-host call is
// made; a duplicate fails before any upload happens.
func (a *accountService) Register(ctx context.Context, username, email, password string, avatar models.FileUpload) (models.User, error) {
	log := logger.FromContext(ctx)

	fields := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	for _, field := range registrationRequiredFields {
		if strings.TrimSpace(fields[field]) == "" {
			return models.User{}, NewValidationError(field + " is required")
		}
	}

	_, err := a.userRepository.FindUserByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return models.User{}, ErrUserExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*accountService.Register").Msg("error: duplicate check failed")
		return models.User{}, ErrRegistrationFailed.WithCause(err)
	}

	if avatar.Reader == nil {
		return models.User{}, ErrAvatarImageRequired
	}

	avatarURL, err := a.uploader.Upload(ctx, avatar)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("error: avatar upload failed")
		return models.User{}, ErrAvatarUploadFailed.WithCause(err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("error: password hashing failed")
		return models.User{}, ErrRegistrationFailed.WithCause(err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:   uuid.New(),
		Username: username,
		Email:    email,
		Password: passwordHash,
		Avatar:   avatarURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrUserExists
		}
		log.Err(err).Str("func", "*accountService.Register").Msg("error: user creation failed")
		return models.User{}, ErrRegistrationFailed.WithCause(err)
	}

	// re-fetch so the response reflects what the store actually persisted
	registeredUser, err := a.userRepository.FindUserByID(ctx, createdUser.UserID)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("error: fetching registered user failed")
		return models.User{}, ErrRegistrationFailed.WithCause(err)
	}

	return registeredUser.Sanitized(), nil
}

// Login authenticates an existing user by username or email.
func (a *accountService) Login(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" && email == "" {
		return models.User{}, ErrLoginIdentifierRequired
	}

	foundUser, err := a.userRepository.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*accountService.Login").Msg("error: user lookup failed")
		return models.User{}, NewInternalError("Something went wrong while logging in").WithCause(err)
	}

	if !utils.CheckPassword(foundUser.Password, password) {
		log.Error().
			Str("id", foundUser.UserID.String()).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser.Sanitized(), nil
}

// ChangePassword verifies the old password and persists a hash of the new one.
func (a *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Msg("error: user lookup failed")
		return NewInternalError("Something went wrong while changing password").WithCause(err)
	}

	if !utils.CheckPassword(foundUser.Password, oldPassword) {
		return ErrIncorrectOldPassword
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Msg("error: password hashing failed")
		return NewInternalError("Something went wrong while changing password").WithCause(err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Msg("error: password update failed")
		return NewInternalError("Something went wrong while changing password").WithCause(err)
	}

	return nil
}

// UpdateDetails changes the username and/or email of the account. At least
// one of the two must be supplied. No uniqueness pre-check is made here;
// conflicts surface from the store's unique constraints.
func (a *accountService) UpdateDetails(ctx context.Context, userID uuid.UUID, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" && email == "" {
		return models.User{}, ErrDetailsIdentifierRequired
	}

	updatedUser, err := a.userRepository.UpdateUserDetails(ctx, userID, username, email)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrUserExists
		}
		log.Err(err).Str("func", "*accountService.UpdateDetails").Msg("error: details update failed")
		return models.User{}, NewInternalError("Something went wrong while updating account details").WithCause(err)
	}

	return updatedUser.Sanitized(), nil
}

// UpdateAvatar uploads a replacement avatar and persists its URL. The
// previous media object is left on the host.
func (a *accountService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar models.FileUpload) (models.User, error) {
	log := logger.FromContext(ctx)

	if avatar.Reader == nil {
		return models.User{}, ErrAvatarFileRequired
	}

	avatarURL, err := a.uploader.Upload(ctx, avatar)
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateAvatar").Msg("error: avatar upload failed")
		return models.User{}, ErrAvatarUpdateFailed.WithCause(err)
	}

	updatedUser, err := a.userRepository.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateAvatar").Msg("error: avatar update failed")
		return models.User{}, ErrAvatarUpdateFailed.WithCause(err)
	}

	return updatedUser.Sanitized(), nil
}

// UserByID resolves a user by their identifier. Store errors pass through
// wrapped so callers can distinguish a missing user from an outage.
func (a *accountService) UserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	return foundUser.Sanitized(), nil
}
