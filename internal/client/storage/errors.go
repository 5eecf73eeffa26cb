package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that no record exists at the requested key
	ErrRecordNotFound = errors.New("record not found")

	// ErrItemNotFound indicates that the queue holds no item with the requested id
	ErrItemNotFound = errors.New("queue item not found")

	// ErrTokenNotFound indicates that no session token is stored
	ErrTokenNotFound = errors.New("session token not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
