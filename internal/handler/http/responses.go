package http

import (
	"net/http"

	"github.com/vkotlyar/account-keeper/internal/utils"
	"github.com/vkotlyar/account-keeper/models"
)

// writeSuccess wraps data in the uniform success envelope and writes it with
// the given status code.
func writeSuccess(w http.ResponseWriter, statusCode int, data any, message string) {
	utils.WriteJSON(w, models.APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}, statusCode)
}

// writeError wraps message in the uniform error envelope and writes it with
// the given status code.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.APIErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	}, statusCode)
}
