package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
)

// recordEnvelope is the JSON-serialized part of a StoredRecord.
// The payload bytes are kept out of it and stored raw in bucketPayloads.
type recordEnvelope struct {
	LastUpdated time.Time         `json:"last_updated"`
	Meta        map[string]string `json:"meta,omitempty"`
	Key         string            `json:"key"`
	Category    models.Category   `json:"category"`
	SyncStatus  models.SyncStatus `json:"sync_status"`
}

// SaveRecord stores or overwrites a record. Envelope and payload are
// written in one transaction, so a put is atomic.
func (s *Storage) SaveRecord(ctx context.Context, record *models.StoredRecord) error {
	name, err := categoryBucket(record.Category)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}

		env := recordEnvelope{
			Key:         record.Key,
			Category:    record.Category,
			Meta:        record.Meta,
			LastUpdated: record.LastUpdated,
			SyncStatus:  record.SyncStatus,
		}
		data, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		key := []byte(record.Key)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		// Payload goes into the payloads bucket as raw bytes
		payloads := tx.Bucket(bucketPayloads)
		if payloads == nil {
			return fmt.Errorf("payloads bucket not found")
		}
		if err := payloads.Put(key, record.Data); err != nil {
			return fmt.Errorf("failed to save record payload: %w", err)
		}

		return nil
	})
}

// GetRecord retrieves a record by key
func (s *Storage) GetRecord(ctx context.Context, key string) (*models.StoredRecord, error) {
	var record *models.StoredRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		env, err := findEnvelope(tx, key)
		if err != nil {
			return err
		}

		record = envelopeToRecord(env)

		payloads := tx.Bucket(bucketPayloads)
		if payloads == nil {
			return fmt.Errorf("payloads bucket not found")
		}
		if data := payloads.Get([]byte(key)); data != nil {
			// Copy out: bbolt values are only valid inside the transaction
			record.Data = append([]byte(nil), data...)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListByCategory returns all records in a category, unordered
func (s *Storage) ListByCategory(ctx context.Context, category models.Category) ([]*models.StoredRecord, error) {
	name, err := categoryBucket(category)
	if err != nil {
		return nil, err
	}

	var records []*models.StoredRecord

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}
		payloads := tx.Bucket(bucketPayloads)
		if payloads == nil {
			return fmt.Errorf("payloads bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			env := &recordEnvelope{}
			if err := json.Unmarshal(v, env); err != nil {
				// Corrupt envelope: treat as absent rather than halting
				return nil
			}

			record := envelopeToRecord(env)
			if data := payloads.Get(k); data != nil {
				record.Data = append([]byte(nil), data...)
			}
			records = append(records, record)

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return records, nil
}

// SetSyncStatus updates the sync status of an existing record
func (s *Storage) SetSyncStatus(ctx context.Context, key string, status models.SyncStatus) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		env, err := findEnvelope(tx, key)
		if err != nil {
			return err
		}

		env.SyncStatus = status
		env.LastUpdated = time.Now()

		name, err := categoryBucket(env.Category)
		if err != nil {
			return err
		}

		data, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := tx.Bucket(name).Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}

		return nil
	})
}

// Info reports local storage usage: payload bytes plus counts of
// stored forms and attachments
func (s *Storage) Info(ctx context.Context) (*models.StorageInfo, error) {
	info := &models.StorageInfo{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		if forms := tx.Bucket(bucketForms); forms != nil {
			info.FormCount = forms.Stats().KeyN
		}
		if attachments := tx.Bucket(bucketAttachments); attachments != nil {
			info.AttachmentCount = attachments.Stats().KeyN
		}
		payloads := tx.Bucket(bucketPayloads)
		if payloads == nil {
			return fmt.Errorf("payloads bucket not found")
		}
		return payloads.ForEach(func(k, v []byte) error {
			info.SizeBytes += int64(len(v))
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return info, nil
}

// findEnvelope looks a record envelope up across the category buckets
func findEnvelope(tx *bbolt.Tx, key string) (*recordEnvelope, error) {
	for _, name := range [][]byte{bucketForms, bucketAttachments, bucketSystem} {
		bucket := tx.Bucket(name)
		if bucket == nil {
			continue
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			continue
		}

		env := &recordEnvelope{}
		if err := json.Unmarshal(data, env); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return env, nil
	}
	return nil, storage.ErrRecordNotFound
}

func envelopeToRecord(env *recordEnvelope) *models.StoredRecord {
	return &models.StoredRecord{
		Key:         env.Key,
		Category:    env.Category,
		Meta:        env.Meta,
		LastUpdated: env.LastUpdated,
		SyncStatus:  env.SyncStatus,
	}
}
