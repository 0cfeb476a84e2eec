package store

import (
	"github.com/vkotlyar/account-keeper/internal/logger"
)

// Storages aggregates every repository backed by the credential store.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
