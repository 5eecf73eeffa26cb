package offline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/ospolov/fieldsync/internal/client/api"
	"github.com/ospolov/fieldsync/internal/client/session"
	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
	"github.com/ospolov/fieldsync/pkg/api"
)

// fakeTrigger counts kicks without starting a real drain
type fakeTrigger struct {
	kicks atomic.Int32
}

func (f *fakeTrigger) Kick(ctx context.Context) {
	f.kicks.Add(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *session.ProviderMock {
	return &session.ProviderMock{
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "token-abc", nil
		},
	}
}

func notFoundRecords() *storage.RecordStorageMock {
	return &storage.RecordStorageMock{
		GetRecordFunc: func(ctx context.Context, key string) (*models.StoredRecord, error) {
			return nil, storage.ErrRecordNotFound
		},
		SaveRecordFunc: func(ctx context.Context, record *models.StoredRecord) error {
			return nil
		},
	}
}

func workingQueue() *storage.QueueStorageMock {
	return &storage.QueueStorageMock{
		AppendFunc: func(ctx context.Context, item *models.QueueItem) error {
			return nil
		},
	}
}

func TestStoreFormQueuesCreate(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	queue := workingQueue()
	trigger := &fakeTrigger{}
	apiMock := &httpClient.ClientAPIMock{}

	svc := NewService(records, queue, apiMock, testSession(), trigger, testLogger())

	queued, err := svc.StoreForm(ctx, "f1", json.RawMessage(`{"field":"value"}`))
	require.NoError(t, err)
	assert.True(t, queued)

	// Record saved with pending status under the derived key
	require.Len(t, records.SaveRecordCalls(), 1)
	saved := records.SaveRecordCalls()[0].Record
	assert.Equal(t, models.RecordKey(models.CategoryForm, "f1"), saved.Key)
	assert.Equal(t, models.CategoryForm, saved.Category)
	assert.Equal(t, models.StatusPending, saved.SyncStatus)

	// Unknown form: a create is enqueued
	require.Len(t, queue.AppendCalls(), 1)
	item := queue.AppendCalls()[0].Item
	assert.Equal(t, "f1", item.TargetID)
	assert.Equal(t, models.KindForm, item.Kind)
	assert.Equal(t, models.ActionCreate, item.Action)
	assert.NotEmpty(t, item.ID)

	// Write while online nudges the engine
	assert.Equal(t, int32(1), trigger.kicks.Load())

	// Nothing went over the network
	assert.Empty(t, apiMock.CreateFormCalls())
}

func TestStoreFormQueuesUpdateForExistingRecord(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	records.GetRecordFunc = func(ctx context.Context, key string) (*models.StoredRecord, error) {
		return &models.StoredRecord{Key: key, Category: models.CategoryForm}, nil
	}
	queue := workingQueue()

	svc := NewService(records, queue, &httpClient.ClientAPIMock{}, testSession(), nil, testLogger())

	queued, err := svc.StoreForm(ctx, "f1", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.True(t, queued)

	require.Len(t, queue.AppendCalls(), 1)
	assert.Equal(t, models.ActionUpdate, queue.AppendCalls()[0].Item.Action)
}

func TestStoreFormFallsBackToDirectSend(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	records.SaveRecordFunc = func(ctx context.Context, record *models.StoredRecord) error {
		return errors.New("disk full")
	}
	queue := workingQueue()

	apiMock := &httpClient.ClientAPIMock{
		CreateFormFunc: func(ctx context.Context, accessToken string, req api.FormRequest) (*api.FormResponse, error) {
			assert.Equal(t, "token-abc", accessToken)
			assert.Equal(t, "f1", req.ID)
			return &api.FormResponse{ID: "f1"}, nil
		},
	}

	svc := NewService(records, queue, apiMock, testSession(), nil, testLogger())

	queued, err := svc.StoreForm(ctx, "f1", json.RawMessage(`{"field":"value"}`))
	require.NoError(t, err)
	assert.False(t, queued)

	assert.Len(t, apiMock.CreateFormCalls(), 1)
	assert.Empty(t, queue.AppendCalls())
}

func TestStoreFormDirectSendWithoutSession(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	records.SaveRecordFunc = func(ctx context.Context, record *models.StoredRecord) error {
		return errors.New("disk full")
	}

	sessions := &session.ProviderMock{
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "", session.ErrNoSession
		},
	}

	svc := NewService(records, workingQueue(), &httpClient.ClientAPIMock{}, sessions, nil, testLogger())

	queued, err := svc.StoreForm(ctx, "f1", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.False(t, queued)
	assert.Contains(t, err.Error(), "disk full")
}

func TestStoreFormQueueFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	queue := workingQueue()
	queue.AppendFunc = func(ctx context.Context, item *models.QueueItem) error {
		return errors.New("queue bucket gone")
	}

	apiMock := &httpClient.ClientAPIMock{
		CreateFormFunc: func(ctx context.Context, accessToken string, req api.FormRequest) (*api.FormResponse, error) {
			return &api.FormResponse{ID: req.ID}, nil
		},
	}

	svc := NewService(notFoundRecords(), queue, apiMock, testSession(), nil, testLogger())

	queued, err := svc.StoreForm(ctx, "f1", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.False(t, queued)
	assert.Len(t, apiMock.CreateFormCalls(), 1)
}

func TestDeleteForm(t *testing.T) {
	ctx := context.Background()
	queue := workingQueue()
	trigger := &fakeTrigger{}

	svc := NewService(notFoundRecords(), queue, &httpClient.ClientAPIMock{}, testSession(), trigger, testLogger())

	require.NoError(t, svc.DeleteForm(ctx, "f1"))

	require.Len(t, queue.AppendCalls(), 1)
	item := queue.AppendCalls()[0].Item
	assert.Equal(t, models.ActionDelete, item.Action)
	assert.Equal(t, models.KindForm, item.Kind)
	assert.Equal(t, "f1", item.TargetID)
	assert.Equal(t, int32(1), trigger.kicks.Load())
}

func TestStoreAttachment(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	queue := workingQueue()
	trigger := &fakeTrigger{}

	blob := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}

	svc := NewService(records, queue, &httpClient.ClientAPIMock{}, testSession(), trigger, testLogger())

	queued, err := svc.StoreAttachment(ctx, "a1", blob, api.AttachmentMeta{
		FormID:      "f1",
		FileName:    "photo.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.True(t, queued)

	// Blob stored natively in the record, metadata alongside
	require.Len(t, records.SaveRecordCalls(), 1)
	saved := records.SaveRecordCalls()[0].Record
	assert.Equal(t, blob, saved.Data)
	assert.Equal(t, models.CategoryAttachment, saved.Category)
	assert.Equal(t, "photo.png", saved.Meta["file_name"])
	assert.Equal(t, "image/png", saved.Meta["content_type"])

	// Queue item carries metadata only, referencing the record key
	require.Len(t, queue.AppendCalls(), 1)
	item := queue.AppendCalls()[0].Item
	assert.Equal(t, models.KindAttachment, item.Kind)
	assert.Equal(t, saved.Key, item.RecordKey)

	var meta api.AttachmentMeta
	require.NoError(t, json.Unmarshal(item.Payload, &meta))
	assert.Equal(t, "a1", meta.ID)
	assert.Equal(t, int64(len(blob)), meta.Size)
	assert.Equal(t, "photo.png", meta.FileName)

	assert.Equal(t, int32(1), trigger.kicks.Load())
}

func TestStoreAttachmentFallsBackToDirectUpload(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	records.SaveRecordFunc = func(ctx context.Context, record *models.StoredRecord) error {
		return errors.New("disk full")
	}

	blob := []byte("blob")
	apiMock := &httpClient.ClientAPIMock{
		UploadAttachmentFunc: func(ctx context.Context, accessToken string, meta api.AttachmentMeta, gotBlob []byte) (*api.AttachmentResponse, error) {
			assert.Equal(t, "a1", meta.ID)
			assert.Equal(t, blob, gotBlob)
			return &api.AttachmentResponse{ID: meta.ID}, nil
		},
	}

	svc := NewService(records, workingQueue(), apiMock, testSession(), nil, testLogger())

	queued, err := svc.StoreAttachment(ctx, "a1", blob, api.AttachmentMeta{FileName: "f.bin"})
	require.NoError(t, err)
	assert.False(t, queued)
	assert.Len(t, apiMock.UploadAttachmentCalls(), 1)
}

func TestStoreSettings(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	queue := workingQueue()
	trigger := &fakeTrigger{}

	svc := NewService(records, queue, &httpClient.ClientAPIMock{}, testSession(), trigger, testLogger())

	require.NoError(t, svc.StoreSettings(ctx, json.RawMessage(`{"theme":"dark"}`)))

	require.Len(t, records.SaveRecordCalls(), 1)
	assert.Equal(t, models.CategorySystem, records.SaveRecordCalls()[0].Record.Category)

	require.Len(t, queue.AppendCalls(), 1)
	item := queue.AppendCalls()[0].Item
	assert.Equal(t, models.KindSettings, item.Kind)
	assert.Equal(t, models.ActionUpdate, item.Action)

	assert.Equal(t, int32(1), trigger.kicks.Load())
}

func TestGetForm(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	records.GetRecordFunc = func(ctx context.Context, key string) (*models.StoredRecord, error) {
		assert.Equal(t, models.RecordKey(models.CategoryForm, "f1"), key)
		return &models.StoredRecord{Key: key, Data: []byte(`{"field":"value"}`)}, nil
	}

	svc := NewService(records, workingQueue(), &httpClient.ClientAPIMock{}, testSession(), nil, testLogger())

	record, err := svc.GetForm(ctx, "f1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"value"}`, string(record.Data))
}

func TestGetFormNotFound(t *testing.T) {
	ctx := context.Background()

	svc := NewService(notFoundRecords(), workingQueue(), &httpClient.ClientAPIMock{}, testSession(), nil, testLogger())

	_, err := svc.GetForm(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestListForms(t *testing.T) {
	ctx := context.Background()
	records := notFoundRecords()
	records.ListByCategoryFunc = func(ctx context.Context, category models.Category) ([]*models.StoredRecord, error) {
		assert.Equal(t, models.CategoryForm, category)
		return []*models.StoredRecord{{Key: "form_f1"}, {Key: "form_f2"}}, nil
	}

	svc := NewService(records, workingQueue(), &httpClient.ClientAPIMock{}, testSession(), nil, testLogger())

	list, err := svc.ListForms(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPendingCount(t *testing.T) {
	ctx := context.Background()
	queue := workingQueue()
	queue.LenFunc = func(ctx context.Context) (int, error) {
		return 3, nil
	}

	svc := NewService(notFoundRecords(), queue, &httpClient.ClientAPIMock{}, testSession(), nil, testLogger())

	n, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
