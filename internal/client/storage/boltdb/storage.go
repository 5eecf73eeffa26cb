package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ospolov/fieldsync/internal/models"
)

var (
	// BoltDB bucket names.
	// Records are split in two: the envelope (JSON) lives in a per-category
	// bucket, the payload lives as raw bytes in bucketPayloads under the
	// same key. BoltDB values are binary-safe, so attachment blobs are
	// stored without any text re-encoding.
	bucketForms       = []byte("records_form")
	bucketAttachments = []byte("records_attachment")
	bucketSystem      = []byte("records_system")
	bucketPayloads    = []byte("payloads")
	bucketQueue       = []byte("sync_queue")
	bucketSession     = []byte("session")
)

// Storage represents BoltDB storage implementation for the client.
// It implements storage.RecordStorage, storage.QueueStorage and the
// session token store.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they do not exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketForms,
			bucketAttachments,
			bucketSystem,
			bucketPayloads,
			bucketQueue,
			bucketSession,
		}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// categoryBucket maps a record category to its envelope bucket name
func categoryBucket(category models.Category) ([]byte, error) {
	switch category {
	case models.CategoryForm:
		return bucketForms, nil
	case models.CategoryAttachment:
		return bucketAttachments, nil
	case models.CategorySystem:
		return bucketSystem, nil
	default:
		return nil, fmt.Errorf("unknown record category: %s", category)
	}
}
