package media

import (
	"context"

	"github.com/vkotlyar/account-keeper/models"
)

// Uploader stores a file on the media host and returns the public URL under
// which the file is reachable.
type Uploader interface {
	Upload(ctx context.Context, file models.FileUpload) (string, error)
}
