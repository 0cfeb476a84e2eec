// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media integrates the application with the media host that stores
// avatar images. Two interchangeable backends are provided: an S3-compatible
// object store ("s3") and a plain HTTP upload API ("http").
package media

import (
	"context"
	"fmt"

	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
)

// NewUploader constructs the [Uploader] selected by cfg.Backend.
// Returns ErrUnknownBackend for a backend name it does not recognise.
func NewUploader(ctx context.Context, cfg config.Media, log *logger.Logger) (Uploader, error) {
	switch cfg.Backend {
	case config.MediaBackendS3:
		return newS3Uploader(ctx, cfg, log)
	case config.MediaBackendHTTP:
		return newHTTPUploader(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
