package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
)

// Queue items are keyed by a big-endian NextSequence value, so insertion
// order is the bucket's key order. Snapshot walks the cursor backwards:
// the drain processes the most recently enqueued item first.

// Append adds an item to the queue and persists it
func (s *Storage) Append(ctx context.Context, item *models.QueueItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate queue sequence: %w", err)
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to append queue item: %w", err)
		}

		return nil
	})
}

// Snapshot returns the current items, most recently enqueued first.
// Entries that fail to parse are skipped and treated as absent.
func (s *Storage) Snapshot(ctx context.Context) ([]*models.QueueItem, error) {
	var items []*models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			item := &models.QueueItem{}
			if err := json.Unmarshal(v, item); err != nil {
				// Corrupt entry: drop it from the snapshot
				continue
			}
			items = append(items, item)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// Remove deletes the item with the given id
func (s *Storage) Remove(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		key, _, err := findQueueItem(bucket, id)
		if err != nil {
			return err
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to remove queue item: %w", err)
		}

		return nil
	})
}

// Update applies mutate to the item with the given id and re-persists it
func (s *Storage) Update(ctx context.Context, id string, mutate func(*models.QueueItem)) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		key, item, err := findQueueItem(bucket, id)
		if err != nil {
			return err
		}

		mutate(item)

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to update queue item: %w", err)
		}

		return nil
	})
}

// Len returns the number of queued items
func (s *Storage) Len(ctx context.Context) (int, error) {
	var n int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		n = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return n, nil
}

// findQueueItem scans the queue bucket for an item by id.
// The queue stays short, so a linear scan is fine.
func findQueueItem(bucket *bbolt.Bucket, id string) ([]byte, *models.QueueItem, error) {
	c := bucket.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		item := &models.QueueItem{}
		if err := json.Unmarshal(v, item); err != nil {
			continue
		}
		if item.ID == id {
			// Copy the key: cursor keys are only valid inside the transaction
			return append([]byte(nil), k...), item, nil
		}
	}
	return nil, nil, storage.ErrItemNotFound
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
