package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/utils"
	"github.com/vkotlyar/account-keeper/models"
)

const (
	// refreshTokenCookie is the cookie holding the refresh token between requests.
	refreshTokenCookie = "refreshToken"

	// refreshTokenCookieTTL is the fixed lifetime of the refresh-token cookie.
	refreshTokenCookieTTL = 3 * 24 * time.Hour

	// maxUploadMemory caps the in-memory part of multipart form parsing.
	maxUploadMemory = 32 << 20
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// a malformed form falls through with empty values and fails the
	// required-field validation below
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("multipart form parsing failed")
	}

	avatar, closeAvatar := formFile(r, "avatar")
	defer closeAvatar()

	registeredUser, err := h.services.AccountService.Register(
		ctx,
		r.FormValue("username"),
		r.FormValue("email"),
		r.FormValue("password"),
		avatar,
	)
	if err != nil {
		h.writeServiceError(w, r, err, "user registration failed")
		return
	}

	writeSuccess(w, http.StatusCreated, registeredUser, "User registered successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	loggedInUser, err := h.services.AccountService.Login(ctx, credentials.Username, credentials.Email, credentials.Password)
	if err != nil {
		h.writeServiceError(w, r, err, "user login failed")
		return
	}

	refreshToken, err := h.services.AuthService.CreateRefreshToken(ctx, loggedInUser.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "refresh token creation failed")
		return
	}

	accessToken, err := h.services.AuthService.CreateAccessToken(ctx, loggedInUser.UserID)
	if err != nil {
		h.writeServiceError(w, r, err, "access token creation failed")
		return
	}

	log.Debug().Str("id", loggedInUser.UserID.String()).Msg("user successfully logged in")

	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken.SignedString,
		Expires:  time.Now().Add(refreshTokenCookieTTL),
		HttpOnly: true,
		Path:     "/",
	})
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", accessToken.SignedString))

	writeSuccess(w, http.StatusOK, models.LoginResponse{
		User:         loggedInUser,
		RefreshToken: refreshToken.SignedString,
	}, "User logged in successfully")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	// the refresh token stays cryptographically valid until natural expiry;
	// only the client-held cookie is cleared
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})

	writeSuccess(w, http.StatusOK, struct{}{}, "User logged out")
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var passwords struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&passwords); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, user.UserID, passwords.OldPassword, passwords.NewPassword); err != nil {
		h.writeServiceError(w, r, err, "password change failed")
		return
	}

	writeSuccess(w, http.StatusOK, struct{}{}, "Password updated successfully")
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	writeSuccess(w, http.StatusOK, user, "Current user fetched successfully")
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var details struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.AccountService.UpdateDetails(ctx, user.UserID, details.Username, details.Email)
	if err != nil {
		h.writeServiceError(w, r, err, "account details update failed")
		return
	}

	writeSuccess(w, http.StatusOK, updatedUser, "User account updated successfully")
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("multipart form parsing failed")
	}

	avatar, closeAvatar := formFile(r, "avatar")
	defer closeAvatar()

	updatedUser, err := h.services.AccountService.UpdateAvatar(ctx, user.UserID, avatar)
	if err != nil {
		h.writeServiceError(w, r, err, "avatar update failed")
		return
	}

	writeSuccess(w, http.StatusOK, updatedUser, "User avatar updated successfully")
}

// writeServiceError logs err and writes it as the uniform error envelope.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status, message := statusAndMessageFromError(err)
	log.Err(err).Int("status", status).Msg(msg)
	writeError(w, status, message)
}

// formFile extracts the named multipart file from r. The returned close
// function is a no-op when no file was present.
func formFile(r *http.Request, field string) (models.FileUpload, func()) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return models.FileUpload{}, func() {}
	}

	return models.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}, func() { _ = file.Close() }
}
