package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
)

// createTestStorage creates a temporary BoltDB store with initialized buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "fieldsync_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func createTestRecord(id string, category models.Category, data []byte) *models.StoredRecord {
	return &models.StoredRecord{
		Key:         models.RecordKey(category, id),
		Category:    category,
		Data:        data,
		LastUpdated: time.Now(),
		SyncStatus:  models.StatusPending,
	}
}

func TestSaveGetRecord(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	record := createTestRecord("f1", models.CategoryForm, []byte(`{"field":"value"}`))
	require.NoError(t, store.SaveRecord(ctx, record))

	got, err := store.GetRecord(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, record.Key, got.Key)
	assert.Equal(t, models.CategoryForm, got.Category)
	assert.Equal(t, []byte(`{"field":"value"}`), got.Data)
	assert.Equal(t, models.StatusPending, got.SyncStatus)
}

func TestGetRecordNotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetRecord(ctx, models.RecordKey(models.CategoryForm, "missing"))
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestSaveRecordOverwrites(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	record := createTestRecord("f1", models.CategoryForm, []byte(`{"v":1}`))
	require.NoError(t, store.SaveRecord(ctx, record))

	record.Data = []byte(`{"v":2}`)
	require.NoError(t, store.SaveRecord(ctx, record))

	got, err := store.GetRecord(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got.Data)
}

func TestBinaryPayloadStoredRaw(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Bytes that are not valid UTF-8 and not valid JSON
	blob := []byte{0x00, 0xff, 0xfe, 0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	record := createTestRecord("a1", models.CategoryAttachment, blob)
	record.Meta = map[string]string{"file_name": "photo.png", "content_type": "image/png"}
	require.NoError(t, store.SaveRecord(ctx, record))

	got, err := store.GetRecord(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, blob, got.Data)
	assert.Equal(t, "photo.png", got.Meta["file_name"])
}

func TestListByCategory(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveRecord(ctx, createTestRecord("f1", models.CategoryForm, []byte(`{}`))))
	require.NoError(t, store.SaveRecord(ctx, createTestRecord("f2", models.CategoryForm, []byte(`{}`))))
	require.NoError(t, store.SaveRecord(ctx, createTestRecord("a1", models.CategoryAttachment, []byte{1, 2, 3})))

	forms, err := store.ListByCategory(ctx, models.CategoryForm)
	require.NoError(t, err)
	assert.Len(t, forms, 2)

	attachments, err := store.ListByCategory(ctx, models.CategoryAttachment)
	require.NoError(t, err)
	assert.Len(t, attachments, 1)
}

func TestSetSyncStatus(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	record := createTestRecord("f1", models.CategoryForm, []byte(`{}`))
	require.NoError(t, store.SaveRecord(ctx, record))

	require.NoError(t, store.SetSyncStatus(ctx, record.Key, models.StatusSynced))

	got, err := store.GetRecord(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, got.SyncStatus)
	// Payload untouched by the status flip
	assert.Equal(t, []byte(`{}`), got.Data)
}

func TestSetSyncStatusNotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.SetSyncStatus(ctx, "form_missing", models.StatusSynced)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestInfo(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveRecord(ctx, createTestRecord("f1", models.CategoryForm, []byte(`{"a":1}`))))
	require.NoError(t, store.SaveRecord(ctx, createTestRecord("a1", models.CategoryAttachment, make([]byte, 100))))

	info, err := store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, info.FormCount)
	assert.Equal(t, 1, info.AttachmentCount)
	assert.Equal(t, int64(len(`{"a":1}`)+100), info.SizeBytes)
}
