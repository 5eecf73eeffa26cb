package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ospolov/fieldsync/internal/client/storage"
)

const keyAccessToken = "access_token"

// SaveToken persists the session access token
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put([]byte(keyAccessToken), []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the stored session access token
// Returns storage.ErrTokenNotFound if no token is stored
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get([]byte(keyAccessToken))
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteToken removes the stored session access token
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete([]byte(keyAccessToken)); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}
