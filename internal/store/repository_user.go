package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and mutation against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Username, user.Email, user.Password, user.Avatar)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup by id failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByUsernameOrEmail retrieves the user record whose username or
// email matches the given values. Matching mirrors the registration
// duplicate check: either column may produce the hit.
//
// Error handling mirrors [userRepository.FindUserByID].
func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsernameOrEmail, username, email)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdateUserDetails applies a partial update of the identity columns and
// returns the updated record. Only non-empty values become SET clauses; the
// query is built dynamically with squirrel so the SQL contains exactly the
// columns being changed.
//
// No application-level uniqueness pre-check is performed here; a concurrent
// or direct conflict surfaces as a unique_violation from the index and is
// mapped to [ErrUserAlreadyExists].
func (r *userRepository) UpdateUserDetails(ctx context.Context, userID uuid.UUID, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(sq.Dollar)

	if username != "" {
		builder = builder.Set("username", username)
	}
	if email != "" {
		builder = builder.Set("email", email)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserDetails").Msg("error: building update query failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanUser(row, &updatedUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUserDetails").Msg("error: updating user details failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updatedUser, nil
}

// UpdatePassword replaces the stored password hash for the given user.
// The value passed here must already be hashed; this method is the
// persistence boundary the plaintext never crosses.
func (r *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserPassword, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: updating password failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateAvatar replaces the stored avatar URL and returns the updated record.
func (r *userRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (models.User, error) {
	log := logger.FromContext(ctx)

	var updatedUser models.User
	row := r.db.QueryRowContext(ctx, updateUserAvatar, userID, avatarURL)

	if err := scanUser(row, &updatedUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateAvatar").Msg("error: updating avatar failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updatedUser, nil
}

// scanUser reads one users-table row into user.
func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(&user.UserID, &user.Username, &user.Email, &user.Password, &user.Avatar, &user.CreatedAt, &user.UpdatedAt)
}
