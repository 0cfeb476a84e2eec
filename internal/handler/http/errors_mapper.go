package http

import (
	"errors"
	"net/http"

	"github.com/vkotlyar/account-keeper/internal/service"
	"github.com/vkotlyar/account-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
}

// statusAndMessageFromError translates any error escaping the service layer
// into the status code and message of the uniform error envelope. Service
// errors carry both themselves; raw store sentinels are mapped through
// errorStatusMap; anything else is an internal error.
func statusAndMessageFromError(err error) (int, string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return svcErr.Status, svcErr.Message
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
