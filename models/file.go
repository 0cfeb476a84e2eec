package models

import "io"

// FileUpload describes a single file received in a multipart request and
// destined for the media host. The Reader is consumed exactly once during
// upload; callers remain responsible for closing the underlying source.
type FileUpload struct {
	// Name is the client-supplied file name, used only to derive the
	// storage key extension.
	Name string `json:"name"`

	// ContentType is the MIME type reported by the client.
	ContentType string `json:"content_type"`

	// Size is the file length in bytes as reported by the multipart part.
	Size int64 `json:"size"`

	// Reader streams the file content.
	Reader io.Reader `json:"-"`
}
