package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/vkotlyar/account-keeper/models"
)

// UserRepository is the data-access contract for user account records.
//
// All lookups that miss return [ErrNoUserWasFound]; writes that violate the
// username/email unique indexes return [ErrUserAlreadyExists]. Records are
// returned with the password hash populated — sanitization is the caller's
// responsibility.
type UserRepository interface {
	// CreateUser persists a new user record and returns the canonical
	// database representation including server-assigned timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID retrieves the record with the given opaque identifier.
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	// FindUserByUsernameOrEmail retrieves the record matching either
	// identifier. Empty arguments never match.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)

	// UpdateUserDetails applies a partial update of username and/or email
	// (empty values are skipped) and returns the updated record. Uniqueness
	// is enforced solely by the storage-layer unique indexes.
	UpdateUserDetails(ctx context.Context, userID uuid.UUID, username, email string) (models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// UpdateAvatar replaces the stored avatar URL and returns the updated
	// record.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (models.User, error)
}
