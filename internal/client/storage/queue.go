package storage

import (
	"context"

	"github.com/ospolov/fieldsync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines the interface for the persisted mutation queue.
// Every mutation is durable before the call returns, so the queue survives
// a process restart with attempt counts intact.
type QueueStorage interface {
	// Append adds an item to the queue and persists it
	Append(ctx context.Context, item *models.QueueItem) error

	// Snapshot returns the current items in drain order:
	// most recently enqueued first
	Snapshot(ctx context.Context) ([]*models.QueueItem, error)

	// Remove deletes the item with the given id
	// Returns ErrItemNotFound if no such item exists
	Remove(ctx context.Context, id string) error

	// Update applies mutate to the item with the given id and re-persists it
	// Returns ErrItemNotFound if no such item exists
	Update(ctx context.Context, id string, mutate func(*models.QueueItem)) error

	// Len returns the number of queued items
	Len(ctx context.Context) (int, error)
}
