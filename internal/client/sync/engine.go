package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	httpClient "github.com/ospolov/fieldsync/internal/client/api"
	"github.com/ospolov/fieldsync/internal/client/notify"
	"github.com/ospolov/fieldsync/internal/client/session"
	"github.com/ospolov/fieldsync/internal/client/storage"
	"github.com/ospolov/fieldsync/internal/models"
	"github.com/ospolov/fieldsync/pkg/api"
)

// Options tune the engine. Zero values fall back to the defaults below.
type Options struct {
	// Online reports current connectivity. A drain is a no-op while it
	// returns false. nil means always online.
	Online func() bool

	// PacingInterval is the fixed delay between item dispatches
	PacingInterval time.Duration

	// MaxAttempts is the per-item replay budget
	MaxAttempts int
}

const defaultPacingInterval = 100 * time.Millisecond

// Result summarizes one drain pass
type Result struct {
	Synced    int // items acknowledged and removed
	Abandoned int // items dropped after exhausting the retry budget
	Failed    int // individual dispatch failures, including retried ones
	Total     int // items in the snapshot at drain start
}

// Engine drains the mutation queue against the remote API.
// At most one drain runs at a time; concurrent Drain calls return
// immediately without touching the network.
type Engine struct {
	apiClient httpClient.ClientAPI
	queue     storage.QueueStorage
	records   storage.RecordStorage
	session   session.Provider
	bus       *notify.Bus
	metrics   *Metrics
	logger    *slog.Logger
	online    func() bool
	pacer     *rate.Limiter

	maxAttempts int
	syncing     atomic.Bool
}

// NewEngine creates a sync engine. bus and metrics may be nil when no
// consumer is interested in status updates or instrumentation.
func NewEngine(
	apiClient httpClient.ClientAPI,
	queue storage.QueueStorage,
	records storage.RecordStorage,
	sessions session.Provider,
	bus *notify.Bus,
	metrics *Metrics,
	logger *slog.Logger,
	opts Options,
) *Engine {
	pacing := opts.PacingInterval
	if pacing <= 0 {
		pacing = defaultPacingInterval
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = models.MaxAttempts
	}

	return &Engine{
		apiClient:   apiClient,
		queue:       queue,
		records:     records,
		session:     sessions,
		bus:         bus,
		metrics:     metrics,
		logger:      logger,
		online:      opts.Online,
		pacer:       rate.NewLimiter(rate.Every(pacing), 1),
		maxAttempts: maxAttempts,
	}
}

// Syncing reports whether a drain is currently in progress
func (e *Engine) Syncing() bool {
	return e.syncing.Load()
}

// Kick starts a drain on its own goroutine if the device is online and
// no drain is already running. Used by the network monitor's restoration
// callback and by write operations while online.
func (e *Engine) Kick(ctx context.Context) {
	if e.online != nil && !e.online() {
		return
	}
	if e.syncing.Load() {
		return
	}

	go func() {
		if _, err := e.Drain(ctx); err != nil {
			e.logger.Error("background drain failed", "error", err)
		}
	}()
}

// Drain processes the queue: one item at a time, most recently enqueued
// first. Successful items are removed and their stored records flipped to
// synced; failing items are retried on later drains until the attempt
// budget is spent, then abandoned with a logged warning. A second Drain
// while one is running is a no-op.
func (e *Engine) Drain(ctx context.Context) (result *Result, err error) {
	if !e.syncing.CompareAndSwap(false, true) {
		e.logger.Debug("drain already in progress, skipping")
		return &Result{}, nil
	}
	// Release the guard on every exit path, panics included, so a
	// crashed drain never wedges the engine
	defer e.syncing.Store(false)
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("drain panicked", "panic", r)
			e.publish("sync failed", notify.NoProgress)
			err = fmt.Errorf("drain panicked: %v", r)
			result = &Result{}
		}
	}()

	if e.metrics != nil {
		e.metrics.DrainsTotal.Inc()
		timer := prometheusTimer(e.metrics)
		defer timer()
	}

	result = &Result{}

	items, err := e.queue.Snapshot(ctx)
	if err != nil {
		e.publish("sync failed", notify.NoProgress)
		return result, fmt.Errorf("failed to snapshot queue: %w", err)
	}

	result.Total = len(items)
	if result.Total == 0 {
		e.publish("no items to sync", notify.NoProgress)
		e.updateQueueDepth(ctx)
		return result, nil
	}

	token, err := e.session.AccessToken(ctx)
	if err != nil {
		e.publish("sync failed", notify.NoProgress)
		return result, fmt.Errorf("no credential for sync: %w", err)
	}

	e.logger.Info("starting drain", "queued", result.Total)

	for _, item := range items {
		// Fixed pacing between item dispatches
		if err := e.pacer.Wait(ctx); err != nil {
			e.publish("sync failed", notify.NoProgress)
			return result, fmt.Errorf("drain interrupted: %w", err)
		}

		if dispatchErr := e.dispatch(ctx, token, item); dispatchErr != nil {
			e.handleFailure(ctx, item, dispatchErr)
			result.Failed++
			if item.AttemptCount+1 >= e.maxAttempts {
				result.Abandoned++
			}
			continue
		}

		e.handleSuccess(ctx, item)
		result.Synced++
		e.publish(
			fmt.Sprintf("synced %d of %d", result.Synced, result.Total),
			float64(result.Synced)/float64(result.Total),
		)
	}

	e.updateQueueDepth(ctx)
	e.publish(fmt.Sprintf("sync complete: %d items synced", result.Synced), notify.NoProgress)

	e.logger.Info("drain finished",
		"synced", result.Synced,
		"failed", result.Failed,
		"abandoned", result.Abandoned,
		"total", result.Total)

	return result, nil
}

// dispatch issues the remote call matching the item's kind and action
func (e *Engine) dispatch(ctx context.Context, token string, item *models.QueueItem) error {
	switch item.Kind {
	case models.KindForm:
		return e.dispatchForm(ctx, token, item)
	case models.KindAttachment:
		return e.dispatchAttachment(ctx, token, item)
	case models.KindSettings:
		return e.dispatchSettings(ctx, token, item)
	default:
		return fmt.Errorf("unsupported mutation kind: %s", item.Kind)
	}
}

func (e *Engine) dispatchForm(ctx context.Context, token string, item *models.QueueItem) error {
	req := api.FormRequest{ID: item.TargetID, Data: item.Payload}

	switch item.Action {
	case models.ActionCreate:
		_, err := e.apiClient.CreateForm(ctx, token, req)
		return err
	case models.ActionUpdate:
		_, err := e.apiClient.UpdateForm(ctx, token, item.TargetID, req)
		return err
	case models.ActionDelete:
		return e.apiClient.DeleteForm(ctx, token, item.TargetID)
	default:
		return fmt.Errorf("unsupported form action: %s", item.Action)
	}
}

func (e *Engine) dispatchAttachment(ctx context.Context, token string, item *models.QueueItem) error {
	if item.Action == models.ActionDelete {
		return e.apiClient.DeleteAttachment(ctx, token, item.TargetID)
	}

	// Create and update both re-upload the blob. The binary lives in the
	// record store, referenced by key; the queue item carries only metadata.
	var meta api.AttachmentMeta
	if err := json.Unmarshal(item.Payload, &meta); err != nil {
		return fmt.Errorf("failed to parse attachment metadata: %w", err)
	}

	record, err := e.records.GetRecord(ctx, item.RecordKey)
	if err != nil {
		return fmt.Errorf("failed to load attachment payload: %w", err)
	}

	_, err = e.apiClient.UploadAttachment(ctx, token, meta, record.Data)
	return err
}

func (e *Engine) dispatchSettings(ctx context.Context, token string, item *models.QueueItem) error {
	if item.Action == models.ActionDelete {
		return fmt.Errorf("unsupported settings action: %s", item.Action)
	}
	return e.apiClient.SaveSettings(ctx, token, api.SettingsRequest{Data: item.Payload})
}

// handleSuccess removes the acknowledged item and flips its stored
// record to synced
func (e *Engine) handleSuccess(ctx context.Context, item *models.QueueItem) {
	if err := e.queue.Remove(ctx, item.ID); err != nil {
		e.logger.Warn("failed to remove synced item from queue",
			"item_id", item.ID, "error", err)
	}

	if item.RecordKey != "" {
		err := e.records.SetSyncStatus(ctx, item.RecordKey, models.StatusSynced)
		if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
			e.logger.Warn("failed to mark record synced",
				"record_key", item.RecordKey, "error", err)
		}
	}

	if e.metrics != nil {
		e.metrics.ItemsSynced.WithLabelValues(string(item.Kind)).Inc()
	}
}

// handleFailure counts the attempt. Items keep their place in the queue
// until the budget is spent, then get removed with only a warning: an
// abandoned item is never surfaced as queued again.
func (e *Engine) handleFailure(ctx context.Context, item *models.QueueItem, dispatchErr error) {
	if e.metrics != nil {
		e.metrics.ItemsFailed.Inc()
	}

	attempts := item.AttemptCount + 1
	if attempts >= e.maxAttempts {
		if err := e.queue.Remove(ctx, item.ID); err != nil {
			e.logger.Warn("failed to remove abandoned item from queue",
				"item_id", item.ID, "error", err)
		}
		e.logger.Warn("abandoning queue item after exhausting retries",
			"item_id", item.ID,
			"kind", item.Kind,
			"action", item.Action,
			"attempts", attempts,
			"error", dispatchErr)
		if e.metrics != nil {
			e.metrics.ItemsAbandoned.WithLabelValues(string(item.Kind)).Inc()
		}
		return
	}

	err := e.queue.Update(ctx, item.ID, func(it *models.QueueItem) {
		it.AttemptCount++
	})
	if err != nil {
		e.logger.Warn("failed to persist attempt count",
			"item_id", item.ID, "error", err)
	}

	e.logger.Info("queue item failed, will retry on next drain",
		"item_id", item.ID,
		"attempts", attempts,
		"error", dispatchErr)
}

func (e *Engine) publish(status string, progress float64) {
	if e.bus != nil {
		e.bus.Publish(status, progress)
	}
}

func (e *Engine) updateQueueDepth(ctx context.Context) {
	if e.metrics == nil {
		return
	}
	if n, err := e.queue.Len(ctx); err == nil {
		e.metrics.QueueDepth.Set(float64(n))
	}
}

// prometheusTimer returns a stop function observing drain duration
func prometheusTimer(m *Metrics) func() {
	start := time.Now()
	return func() {
		m.DrainDuration.Observe(time.Since(start).Seconds())
	}
}
