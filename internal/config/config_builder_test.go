package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_MergePriority verifies that the first appended source wins for
// fields set in both sources, and later sources fill the gaps.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server:  Server{HTTPAddress: "env:1111"},
			Storage: Storage{DB: DB{DSN: "postgres://env"}},
			Media:   Media{Backend: MediaBackendS3},
		},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "flags:2222", CORSOrigin: "http://flags"},
			Storage: Storage{DB: DB{DSN: "postgres://flags"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "env:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// filled from the lower-priority source because env left it empty
	assert.Equal(t, "http://flags", cfg.Server.CORSOrigin)
}

// TestBuild_DefaultsFillZeroFields verifies that withDefaults provides
// values only for fields no other source has set.
func TestBuild_DefaultsFillZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://somewhere"}},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://somewhere", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 3*24*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, MediaBackendS3, cfg.Media.Backend)
}

// TestBuild_ValidationFailure verifies that a merged config without a DSN
// is rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestValidate_UnknownMediaBackend verifies the backend whitelist.
func TestValidate_UnknownMediaBackend(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: ":8000"},
		Storage: Storage{DB: DB{DSN: "postgres://x"}},
		Media:   Media{Backend: "ftp"},
	}

	require.ErrorIs(t, cfg.validate(), ErrInvalidMediaConfigs)
}
