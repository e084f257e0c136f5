package store

import "github.com/MKhiriev/go-user-service/internal/logger"

// Storages groups all storage backends used by the service layer.
type Storages struct {
	UserStore UserStore
}

// NewStorages creates the in-memory storages. Every call returns a fresh,
// empty store; nothing survives a process restart.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		UserStore: NewUserStorage(logger),
	}
}
