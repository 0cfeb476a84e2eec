package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or UPDATE on the users
	// table violates the unique index on username or email.
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a partial update with no columns to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
