package store

import (
	"context"
	"testing"

	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
)

func TestNewConnectPostgres_InvalidDSN(t *testing.T) {
	// build the DB settings the same way main does, off the structured
	// config, so the wiring path stays type-checked here
	var cfg config.StructuredConfig
	cfg.Storage.DB.DSN = "://not-a-valid-dsn"

	db, err := NewConnectPostgres(context.Background(), cfg.Storage.DB, logger.Nop())
	if err == nil {
		t.Fatal("expected error for malformed DSN, got nil")
	}
	if db != nil {
		t.Errorf("expected nil DB on connect failure, got %v", db)
	}
}
