// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session authentication, logging, tracing, and CORS
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/service"
	"github.com/vkotlyar/account-keeper/internal/utils"
)

// maxTokenBodySize bounds how much of a request body the session middleware
// is willing to read while looking for a token.
const maxTokenBodySize = 1 << 20

// auth is the session middleware protecting all authenticated routes.
//
// It takes one refresh token with a fixed precedence order: the refreshToken
// cookie, then a refreshToken field in a JSON request body, then the
// "Authorization: Bearer <token>" header. The token is verified, resolved to
// a user record (password excluded), and the user is attached to the request
// context under [utils.UserCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized in two cases:
//   - no token found in any of the three sources ("Token is missing")
//   - the token fails verification or the referenced user no longer
//     exists ("Invalid token")
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := extractSessionToken(r)
		if tokenString == "" {
			log.Error().Msg("no session token in cookie, body or header")
			writeError(w, http.StatusUnauthorized, service.ErrTokenMissing.Message)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseRefreshToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session token verification failed")
			writeError(w, http.StatusUnauthorized, service.ErrTokenIsExpiredOrInvalid.Message)
			return
		}

		user, err := h.services.AccountService.UserByID(ctx, token.UserID)
		if err != nil {
			log.Err(err).Str("id", token.UserID.String()).Msg("session user lookup failed")
			writeError(w, http.StatusUnauthorized, service.ErrTokenIsExpiredOrInvalid.Message)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without another lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractSessionToken looks for a refresh token in, by precedence: the
// refreshToken cookie, a refreshToken field of a JSON body, the
// Authorization header. Returns "" when none is present.
func extractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if token := tokenFromBody(r); token != "" {
		return token
	}

	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		return token
	}

	return ""
}

// tokenFromBody reads a refreshToken field from a JSON request body. The
// consumed bytes are restored on r.Body so the downstream handler can decode
// the body again. Non-JSON bodies (multipart uploads in particular) are left
// untouched: they cannot carry the field, and buffering them here would cap
// uploads at maxTokenBodySize.
func tokenFromBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTokenBodySize))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}

	var payload struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err = json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.RefreshToken
}
