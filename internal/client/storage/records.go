package storage

import (
	"context"

	"github.com/ospolov/fieldsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines the interface for the durable offline record store.
// A put is atomic: the record is either fully written or not written at all.
// Callers that see an error must treat offline mode as unavailable for that
// operation and fall back to a direct network call.
type RecordStorage interface {
	// SaveRecord stores or overwrites a record at record.Key
	SaveRecord(ctx context.Context, record *models.StoredRecord) error

	// GetRecord retrieves a record by key
	// Returns ErrRecordNotFound if no record exists
	GetRecord(ctx context.Context, key string) (*models.StoredRecord, error)

	// ListByCategory returns all records in a category, unordered
	ListByCategory(ctx context.Context, category models.Category) ([]*models.StoredRecord, error)

	// SetSyncStatus updates the sync status of an existing record
	// Returns ErrRecordNotFound if no record exists
	SetSyncStatus(ctx context.Context, key string, status models.SyncStatus) error

	// Info reports local storage usage
	Info(ctx context.Context) (*models.StorageInfo, error)
}
