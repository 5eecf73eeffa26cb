package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemKind identifies what kind of data a queued mutation targets
type ItemKind string

const (
	KindForm       ItemKind = "form"       // Form record (JSON document)
	KindAttachment ItemKind = "attachment" // Binary attachment with metadata
	KindSettings   ItemKind = "settings"   // User settings document
)

// Action identifies the mutation type
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// MaxAttempts is the replay budget for a single queue item.
// An item whose AttemptCount reaches this bound is abandoned:
// removed from the queue with a logged warning, never retried again.
const MaxAttempts = 3

// QueueItem is one pending mutation awaiting remote acknowledgment
type QueueItem struct {
	EnqueuedAt   time.Time       `json:"enqueued_at"`
	ID           string          `json:"id"`
	TargetID     string          `json:"target_id"`
	Kind         ItemKind        `json:"kind"`
	Action       Action          `json:"action"`
	RecordKey    string          `json:"record_key,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	AttemptCount int             `json:"attempt_count"`
}

// Category groups stored records by namespace
type Category string

const (
	CategoryForm       Category = "form"
	CategoryAttachment Category = "attachment"
	CategorySystem     Category = "system"
)

// SyncStatus reflects whether a stored record has been acknowledged remotely
type SyncStatus string

const (
	StatusPending SyncStatus = "pending"
	StatusSynced  SyncStatus = "synced"
	// StatusConflict is reserved for server-reported conflicts.
	// Nothing sets it yet and nothing transitions it further.
	StatusConflict SyncStatus = "conflict"
)

// StoredRecord is the locally cached copy of a form or attachment,
// independent of its sync state. Created by a write operation; successful
// sync only flips SyncStatus to synced, it never deletes the record.
type StoredRecord struct {
	LastUpdated time.Time         `json:"last_updated"`
	Meta        map[string]string `json:"meta,omitempty"`
	Key         string            `json:"key"`
	Category    Category          `json:"category"`
	SyncStatus  SyncStatus        `json:"sync_status"`
	Data        []byte            `json:"data"`
}

// RecordKey derives the storage key for a logical id within a category,
// e.g. form_42 or attachment_9f3c
func RecordKey(category Category, id string) string {
	return fmt.Sprintf("%s_%s", category, id)
}

// NetworkState is an ephemeral connectivity snapshot. EffectiveType and
// DownlinkMbps are quality hints derived from probe latency; they are
// advisory only and never gate sync correctness.
type NetworkState struct {
	CheckedAt     time.Time
	EffectiveType string
	DownlinkMbps  float64
	Online        bool
}

// StorageInfo summarizes local offline storage usage
type StorageInfo struct {
	SizeBytes       int64 `json:"size_bytes"`
	FormCount       int   `json:"form_count"`
	AttachmentCount int   `json:"attachment_count"`
}
