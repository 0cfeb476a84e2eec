package media

import "errors"

var (
	ErrUploadFailed      = errors.New("media upload failed")
	ErrUnknownBackend    = errors.New("unknown media backend")
	ErrInvalidMediaSetup = errors.New("invalid media uploader setup")
)
