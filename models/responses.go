package models

// APIResponse is the uniform success envelope returned by every handler.
// The same shape is used for all operations so clients can unmarshal
// responses without per-endpoint special cases.
type APIResponse struct {
	// StatusCode mirrors the HTTP status code of the response.
	StatusCode int `json:"statusCode"`

	// Data carries the operation result: a sanitized user record,
	// a login payload, or an empty object for bodyless operations.
	Data any `json:"data"`

	// Message is a short human-readable summary of the outcome.
	Message string `json:"message"`

	// Success is always true in this envelope.
	Success bool `json:"success"`
}

// APIErrorResponse is the uniform failure envelope. Every handler-level
// failure, from validation to upstream errors, is normalized into this
// shape at the HTTP boundary.
type APIErrorResponse struct {
	// StatusCode mirrors the HTTP status code of the response.
	StatusCode int `json:"statusCode"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Success is always false in this envelope.
	Success bool `json:"success"`

	// Errors lists additional error details. It is always present,
	// possibly empty, so clients can range over it unconditionally.
	Errors []string `json:"errors"`
}

// LoginResponse is the data payload of a successful login: the sanitized
// user record plus the refresh token that was also set as a cookie.
type LoginResponse struct {
	User         User   `json:"user"`
	RefreshToken string `json:"refreshToken"`
}
