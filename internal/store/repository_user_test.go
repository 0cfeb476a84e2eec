package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "username", "email", "password", "avatar", "created_at", "updated_at"}).
		AddRow(u.UserID, u.Username, u.Email, u.Password, u.Avatar, u.CreatedAt, u.UpdatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		UserID:    uuid.New(),
		Username:  "alice",
		Email:     "alice@x.com",
		Password:  "$2a$10$hash",
		Avatar:    "https://cdn.local/avatars/a.png",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.UserID, user.Username, user.Email, user.Password, user.Avatar).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "alice"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(ctx, models.User{UserID: uuid.New()})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("unexpected sentinel: %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "alice", Email: "alice@x.com"}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(user.UserID).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, found.Email)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsernameOrEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{UserID: uuid.New(), Username: "alice", Email: "alice@x.com"}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice", "").
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByUsernameOrEmail(context.Background(), "alice", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, found.UserID)
	}
}

func TestFindUserByUsernameOrEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost", "ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsernameOrEmail(context.Background(), "ghost", "ghost@x.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUserDetails_UsernameOnly(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{UserID: uuid.New(), Username: "alice2", Email: "alice@x.com"}

	// only updated_at and username appear as SET clauses
	mock.ExpectQuery(`UPDATE users SET updated_at = NOW\(\), username = \$1 WHERE user_id = \$2 RETURNING`).
		WithArgs("alice2", user.UserID).
		WillReturnRows(userRows(user))

	updated, err := repo.UpdateUserDetails(context.Background(), user.UserID, "alice2", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "alice2" {
		t.Errorf("expected username alice2, got %s", updated.Username)
	}
}

func TestUpdateUserDetails_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUserDetails(context.Background(), uuid.New(), "taken", "taken@x.com")
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectExec("UPDATE users").
		WithArgs(userID, "$2a$10$newhash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), userID, "$2a$10$newhash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatePassword_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), uuid.New(), "hash")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateAvatar_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{UserID: uuid.New(), Avatar: "https://cdn.local/avatars/new.png"}

	mock.ExpectQuery("UPDATE users").
		WithArgs(user.UserID, user.Avatar).
		WillReturnRows(userRows(user))

	updated, err := repo.UpdateAvatar(context.Background(), user.UserID, user.Avatar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Avatar != user.Avatar {
		t.Errorf("expected avatar %s, got %s", user.Avatar, updated.Avatar)
	}
}

func TestUpdateAvatar_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateAvatar(context.Background(), uuid.New(), "https://cdn.local/x.png")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
