package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/ospolov/fieldsync/internal/client/api"
	"github.com/ospolov/fieldsync/internal/client/session"
	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
	"github.com/ospolov/fieldsync/pkg/api"
)

// Trigger starts a background drain when conditions allow.
// Satisfied by *sync.Engine.
type Trigger interface {
	Kick(ctx context.Context)
}

//go:generate moq -out service_mock.go . Service

// Service defines the offline operations exposed to UI collaborators.
// Writes land in local storage and the sync queue; when local storage is
// unavailable the operation degrades to a direct network call.
type Service interface {
	// StoreForm captures a form mutation offline. Returns queued=false
	// when storage was unavailable and the mutation went out directly.
	StoreForm(ctx context.Context, id string, data json.RawMessage) (queued bool, err error)

	// DeleteForm captures a form deletion offline
	DeleteForm(ctx context.Context, id string) error

	// GetForm returns the locally stored form record
	GetForm(ctx context.Context, id string) (*models.StoredRecord, error)

	// ListForms returns all locally stored form records
	ListForms(ctx context.Context) ([]*models.StoredRecord, error)

	// StoreAttachment captures a binary attachment offline
	StoreAttachment(ctx context.Context, id string, blob []byte, meta api.AttachmentMeta) (queued bool, err error)

	// StoreSettings captures a settings mutation offline
	StoreSettings(ctx context.Context, data json.RawMessage) error

	// Info reports local storage usage
	Info(ctx context.Context) (*models.StorageInfo, error)

	// PendingCount returns the number of queued mutations
	PendingCount(ctx context.Context) (int, error)
}

// service handles offline capture of mutations
type service struct {
	records   storage.RecordStorage
	queue     storage.QueueStorage
	apiClient httpClient.ClientAPI
	session   session.Provider
	trigger   Trigger
	logger    *slog.Logger
}

// NewService creates a new offline service. trigger may be nil when no
// engine is wired in (tests, read-only tooling).
func NewService(
	records storage.RecordStorage,
	queue storage.QueueStorage,
	apiClient httpClient.ClientAPI,
	sessions session.Provider,
	trigger Trigger,
	logger *slog.Logger,
) Service {
	return &service{
		records:   records,
		queue:     queue,
		apiClient: apiClient,
		session:   sessions,
		trigger:   trigger,
		logger:    logger,
	}
}

// StoreForm captures a form create or update. The action is derived from
// whether a record already exists at the form's key.
func (s *service) StoreForm(ctx context.Context, id string, data json.RawMessage) (bool, error) {
	key := models.RecordKey(models.CategoryForm, id)

	action := models.ActionCreate
	_, err := s.records.GetRecord(ctx, key)
	switch {
	case err == nil:
		action = models.ActionUpdate
	case errors.Is(err, storage.ErrRecordNotFound):
		// First write for this form
	default:
		// Storage unreadable: offline mode unavailable for this operation
		return false, s.sendFormDirect(ctx, id, action, data, err)
	}

	record := &models.StoredRecord{
		Key:         key,
		Category:    models.CategoryForm,
		Data:        data,
		LastUpdated: time.Now(),
		SyncStatus:  models.StatusPending,
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		return false, s.sendFormDirect(ctx, id, action, data, err)
	}

	item := &models.QueueItem{
		ID:         uuid.New().String(),
		TargetID:   id,
		Kind:       models.KindForm,
		Action:     action,
		RecordKey:  key,
		Payload:    data,
		EnqueuedAt: time.Now(),
	}
	if err := s.queue.Append(ctx, item); err != nil {
		return false, s.sendFormDirect(ctx, id, action, data, err)
	}

	s.kick(ctx)
	return true, nil
}

// DeleteForm queues a form deletion. The local record is kept: sync
// status only, deletion of local records is a maintenance concern.
func (s *service) DeleteForm(ctx context.Context, id string) error {
	item := &models.QueueItem{
		ID:         uuid.New().String(),
		TargetID:   id,
		Kind:       models.KindForm,
		Action:     models.ActionDelete,
		EnqueuedAt: time.Now(),
	}
	if err := s.queue.Append(ctx, item); err != nil {
		return fmt.Errorf("failed to queue form deletion: %w", err)
	}

	s.kick(ctx)
	return nil
}

// GetForm returns the locally stored form record
func (s *service) GetForm(ctx context.Context, id string) (*models.StoredRecord, error) {
	record, err := s.records.GetRecord(ctx, models.RecordKey(models.CategoryForm, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}
	return record, nil
}

// ListForms returns all locally stored form records
func (s *service) ListForms(ctx context.Context) ([]*models.StoredRecord, error) {
	records, err := s.records.ListByCategory(ctx, models.CategoryForm)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return records, nil
}

// StoreAttachment captures a binary attachment. The blob is stored once,
// natively, in the record store; the queue item references it by key and
// carries only the metadata.
func (s *service) StoreAttachment(ctx context.Context, id string, blob []byte, meta api.AttachmentMeta) (bool, error) {
	key := models.RecordKey(models.CategoryAttachment, id)

	meta.ID = id
	meta.Size = int64(len(blob))

	record := &models.StoredRecord{
		Key:      key,
		Category: models.CategoryAttachment,
		Data:     blob,
		Meta: map[string]string{
			"file_name":    meta.FileName,
			"content_type": meta.ContentType,
			"form_id":      meta.FormID,
		},
		LastUpdated: time.Now(),
		SyncStatus:  models.StatusPending,
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		return false, s.sendAttachmentDirect(ctx, meta, blob, err)
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		return false, fmt.Errorf("failed to marshal attachment metadata: %w", err)
	}

	item := &models.QueueItem{
		ID:         uuid.New().String(),
		TargetID:   id,
		Kind:       models.KindAttachment,
		Action:     models.ActionCreate,
		RecordKey:  key,
		Payload:    payload,
		EnqueuedAt: time.Now(),
	}
	if err := s.queue.Append(ctx, item); err != nil {
		return false, s.sendAttachmentDirect(ctx, meta, blob, err)
	}

	s.kick(ctx)
	return true, nil
}

// StoreSettings captures a settings mutation
func (s *service) StoreSettings(ctx context.Context, data json.RawMessage) error {
	key := models.RecordKey(models.CategorySystem, "settings")

	record := &models.StoredRecord{
		Key:         key,
		Category:    models.CategorySystem,
		Data:        data,
		LastUpdated: time.Now(),
		SyncStatus:  models.StatusPending,
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}

	item := &models.QueueItem{
		ID:         uuid.New().String(),
		TargetID:   "settings",
		Kind:       models.KindSettings,
		Action:     models.ActionUpdate,
		RecordKey:  key,
		Payload:    data,
		EnqueuedAt: time.Now(),
	}
	if err := s.queue.Append(ctx, item); err != nil {
		return fmt.Errorf("failed to queue settings update: %w", err)
	}

	s.kick(ctx)
	return nil
}

// Info reports local storage usage
func (s *service) Info(ctx context.Context) (*models.StorageInfo, error) {
	info, err := s.records.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage info: %w", err)
	}
	return info, nil
}

// PendingCount returns the number of queued mutations
func (s *service) PendingCount(ctx context.Context) (int, error) {
	n, err := s.queue.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return n, nil
}

// sendFormDirect is the degraded path: local persistence failed, so the
// mutation goes straight to the server instead of being queued
func (s *service) sendFormDirect(ctx context.Context, id string, action models.Action, data json.RawMessage, storeErr error) error {
	s.logger.Warn("offline storage unavailable, sending form directly",
		"form_id", id, "error", storeErr)

	token, err := s.session.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("offline storage unavailable and no session: %w", storeErr)
	}

	req := api.FormRequest{ID: id, Data: data}
	if action == models.ActionUpdate {
		_, err = s.apiClient.UpdateForm(ctx, token, id, req)
	} else {
		_, err = s.apiClient.CreateForm(ctx, token, req)
	}
	if err != nil {
		return fmt.Errorf("direct send failed after storage error (%v): %w", storeErr, err)
	}

	return nil
}

// sendAttachmentDirect is the degraded path for attachments
func (s *service) sendAttachmentDirect(ctx context.Context, meta api.AttachmentMeta, blob []byte, storeErr error) error {
	s.logger.Warn("offline storage unavailable, uploading attachment directly",
		"attachment_id", meta.ID, "error", storeErr)

	token, err := s.session.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("offline storage unavailable and no session: %w", storeErr)
	}

	if _, err := s.apiClient.UploadAttachment(ctx, token, meta, blob); err != nil {
		return fmt.Errorf("direct upload failed after storage error (%v): %w", storeErr, err)
	}

	return nil
}

func (s *service) kick(ctx context.Context) {
	if s.trigger != nil {
		s.trigger.Kick(ctx)
	}
}
