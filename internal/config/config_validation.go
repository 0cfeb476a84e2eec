// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Token signing keys are deliberately not validated here: a missing key is
// reported by the token issuer at the moment a token is requested, keeping
// the failure mode identical for all configuration paths.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Media.Backend {
	case MediaBackendS3, MediaBackendHTTP:
	default:
		return ErrInvalidMediaConfigs
	}

	return nil
}
