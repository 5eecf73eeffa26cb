package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
)

func createTestItem(id, targetID string) *models.QueueItem {
	return &models.QueueItem{
		ID:         id,
		TargetID:   targetID,
		Kind:       models.KindForm,
		Action:     models.ActionCreate,
		Payload:    []byte(`{"field":"value"}`),
		EnqueuedAt: time.Now(),
	}
}

func TestAppendSnapshotReverseOrder(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Append(ctx, createTestItem("q1", "f1")))
	require.NoError(t, store.Append(ctx, createTestItem("q2", "f2")))
	require.NoError(t, store.Append(ctx, createTestItem("q3", "f3")))

	items, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Most recently enqueued comes first
	assert.Equal(t, "q3", items[0].ID)
	assert.Equal(t, "q2", items[1].ID)
	assert.Equal(t, "q1", items[2].ID)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Append(ctx, createTestItem("q1", "f1")))
	require.NoError(t, store.Append(ctx, createTestItem("q2", "f2")))

	require.NoError(t, store.Remove(ctx, "q1"))

	items, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "q2", items[0].ID)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRemoveNotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.Remove(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestUpdateAttemptCount(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Append(ctx, createTestItem("q1", "f1")))

	require.NoError(t, store.Update(ctx, "q1", func(item *models.QueueItem) {
		item.AttemptCount++
	}))
	require.NoError(t, store.Update(ctx, "q1", func(item *models.QueueItem) {
		item.AttemptCount++
	}))

	items, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].AttemptCount)
}

func TestQueueSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "restart_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Append(ctx, createTestItem("q1", "f1")))
	require.NoError(t, store.Append(ctx, createTestItem("q2", "f2")))
	require.NoError(t, store.Append(ctx, createTestItem("q3", "f3")))
	require.NoError(t, store.Update(ctx, "q2", func(item *models.QueueItem) {
		item.AttemptCount = 2
	}))

	// Simulate a process restart: close and reopen from disk
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	items, err := reopened.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byID := make(map[string]*models.QueueItem)
	for _, item := range items {
		byID[item.ID] = item
	}
	assert.Equal(t, 0, byID["q1"].AttemptCount)
	assert.Equal(t, 2, byID["q2"].AttemptCount)
	assert.Equal(t, 0, byID["q3"].AttemptCount)
}

func TestSnapshotSkipsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Append(ctx, createTestItem("q1", "f1")))

	// Plant a corrupt entry directly in the queue bucket
	err := store.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(seqKey(seq), []byte("not json at all"))
	})
	require.NoError(t, err)

	require.NoError(t, store.Append(ctx, createTestItem("q2", "f2")))

	items, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "q2", items[0].ID)
	assert.Equal(t, "q1", items[1].ID)
}
