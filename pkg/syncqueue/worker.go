// Package syncqueue drains the durable tracker-sync queue. Enqueues
// are fire-and-forget; a background worker claims due rows with
// SKIP LOCKED, executes them against the tracker, and reschedules
// failures with exponential backoff until the attempt budget runs out.
package syncqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/syncqueueitem"
	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/tracker"
	"github.com/elliebot/relay/pkg/transport"
)

// Suppressor gates side-effects during model-turn recovery.
type Suppressor interface {
	Held(name string) bool
}

// Worker owns the queue: enqueue, poll, execute, purge.
type Worker struct {
	client  *ent.Client
	tracker tracker.Client
	locks   Suppressor
	cfg     config.SyncQueueConfig
	logger  *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	now func() time.Time
}

// NewWorker creates a stopped worker.
func NewWorker(client *ent.Client, trackerClient tracker.Client, locks Suppressor, cfg config.SyncQueueConfig) *Worker {
	return &Worker{
		client:  client,
		tracker: trackerClient,
		locks:   locks,
		cfg:     cfg,
		logger:  slog.Default().With("component", "syncqueue"),
		now:     time.Now,
	}
}

// Start launches the polling loop.
func (w *Worker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.ProcessBatch(ctx)
			}
		}
	}()
	w.logger.Info("Sync queue worker started",
		"poll_interval", w.cfg.PollInterval, "batch_size", w.cfg.BatchSize)
}

// Stop halts polling and waits for the in-flight batch.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	w.logger.Info("Sync queue worker stopped")
}

// Enqueue records one tracker action. It never returns an error:
// queueing is best-effort from the caller's point of view and a
// dropped enqueue must not fail the user turn that produced it.
func (w *Worker) Enqueue(ctx context.Context, action syncqueueitem.Action, targetID string, payload map[string]interface{}) {
	create := w.client.SyncQueueItem.Create().
		SetID(uuid.New().String()).
		SetAction(action).
		SetMaxAttempts(w.cfg.MaxAttempts).
		SetNextRetryAt(w.now())
	if targetID != "" {
		create.SetTargetID(targetID)
	}
	if payload != nil {
		create.SetPayload(payload)
	}

	if _, err := create.Save(ctx); err != nil {
		w.logger.Error("Failed to enqueue tracker sync item",
			"action", action, "target_id", targetID, "error", err)
	}
}

// ProcessBatch claims and executes one batch of due items. Exposed for
// the admin API and tests; the polling loop calls it on each tick.
func (w *Worker) ProcessBatch(ctx context.Context) {
	claimed, err := w.claim(ctx)
	if err != nil {
		w.logger.Error("Failed to claim sync queue batch", "error", err)
		return
	}
	for _, c := range claimed {
		w.execute(ctx, c.item, c.attempts)
	}
}

type claimedItem struct {
	item     *ent.SyncQueueItem
	attempts int
}

// claim selects due rows under FOR UPDATE SKIP LOCKED and marks them
// processing inside the same transaction, so concurrent workers never
// double-execute a row. State changes are left untouched while the
// recovery lock is held.
func (w *Worker) claim(ctx context.Context) ([]claimedItem, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := w.now()
	suppressed := w.locks.Held(gateway.LockTrackerSync)

	items, err := tx.SyncQueueItem.Query().
		Where(
			syncqueueitem.StatusIn(syncqueueitem.StatusPending, syncqueueitem.StatusProcessing),
			syncqueueitem.NextRetryAtLTE(now),
		).
		Order(ent.Asc(syncqueueitem.FieldNextRetryAt)).
		Limit(w.cfg.BatchSize).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due items: %w", err)
	}

	var claimed []claimedItem
	for _, item := range items {
		if suppressed && item.Action == syncqueueitem.ActionStateChange {
			// Recovery in progress; push the row back without
			// spending an attempt.
			err = tx.SyncQueueItem.UpdateOne(item).
				SetStatus(syncqueueitem.StatusPending).
				SetNextRetryAt(now.Add(w.cfg.PollInterval)).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to defer suppressed item %s: %w", item.ID, err)
			}
			continue
		}

		attempts := item.Attempts + 1
		err = tx.SyncQueueItem.UpdateOne(item).
			SetStatus(syncqueueitem.StatusProcessing).
			SetAttempts(attempts).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark item %s processing: %w", item.ID, err)
		}
		claimed = append(claimed, claimedItem{item: item, attempts: attempts})
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim transaction: %w", err)
	}
	return claimed, nil
}

// execute runs one claimed item and records the terminal state.
func (w *Worker) execute(ctx context.Context, item *ent.SyncQueueItem, attempts int) {
	targetID, err := w.resolveTarget(ctx, item)
	if err == nil {
		err = w.perform(ctx, item, targetID)
	}

	if err == nil {
		w.finish(ctx, item, syncqueueitem.StatusCompleted, "")
		w.logger.Info("Sync item completed", "item_id", item.ID, "action", item.Action,
			"attempts", attempts)
		return
	}

	if attempts >= item.MaxAttempts || !transport.IsRetryable(err) {
		w.finish(ctx, item, syncqueueitem.StatusFailed, err.Error())
		w.logger.Error("Sync item dead-lettered", "item_id", item.ID, "action", item.Action,
			"attempts", attempts, "error", err)
		return
	}

	delay := backoffDelay(w.cfg.BackoffBase, attempts)
	retryErr := w.client.SyncQueueItem.UpdateOne(item).
		SetStatus(syncqueueitem.StatusPending).
		SetLastError(err.Error()).
		SetNextRetryAt(w.now().Add(delay)).
		Exec(ctx)
	if retryErr != nil {
		w.logger.Error("Failed to reschedule sync item", "item_id", item.ID, "error", retryErr)
		return
	}
	w.logger.Warn("Sync item failed, rescheduled", "item_id", item.ID,
		"attempts", attempts, "retry_in", delay, "error", err)
}

// resolveTarget returns the tracker-side id, resolving and caching
// late-bound references on first use.
func (w *Worker) resolveTarget(ctx context.Context, item *ent.SyncQueueItem) (string, error) {
	if item.TargetID != "" || item.Action == syncqueueitem.ActionCreateIssue {
		return item.TargetID, nil
	}

	ref, _ := item.Payload["target_ref"].(string)
	if ref == "" {
		return "", transport.Permanent(fmt.Errorf("item %s has no target id or target_ref", item.ID))
	}

	targetID, err := w.tracker.ResolveIssue(ctx, ref)
	if err != nil {
		return "", err
	}

	if cacheErr := w.client.SyncQueueItem.UpdateOne(item).SetTargetID(targetID).Exec(ctx); cacheErr != nil {
		w.logger.Warn("Failed to cache resolved target id", "item_id", item.ID, "error", cacheErr)
	}
	return targetID, nil
}

func (w *Worker) perform(ctx context.Context, item *ent.SyncQueueItem, targetID string) error {
	switch item.Action {
	case syncqueueitem.ActionCreateIssue:
		issueID, err := w.tracker.CreateIssue(ctx, item.Payload)
		if err != nil {
			return err
		}
		if issueID != "" {
			if cacheErr := w.client.SyncQueueItem.UpdateOne(item).SetTargetID(issueID).Exec(ctx); cacheErr != nil {
				w.logger.Warn("Failed to record created issue id", "item_id", item.ID, "error", cacheErr)
			}
		}
		return nil
	case syncqueueitem.ActionUpdateIssue:
		return w.tracker.UpdateIssue(ctx, targetID, item.Payload)
	case syncqueueitem.ActionStateChange:
		state, _ := item.Payload["state"].(string)
		return w.tracker.ChangeState(ctx, targetID, state)
	case syncqueueitem.ActionAddComment:
		text, _ := item.Payload["comment"].(string)
		return w.tracker.AddComment(ctx, targetID, text)
	default:
		return transport.Permanent(fmt.Errorf("unknown sync action %q", item.Action))
	}
}

func (w *Worker) finish(ctx context.Context, item *ent.SyncQueueItem, status syncqueueitem.Status, lastError string) {
	update := w.client.SyncQueueItem.UpdateOne(item).SetStatus(status)
	if status == syncqueueitem.StatusCompleted {
		update.SetCompletedAt(w.now()).ClearLastError()
	} else {
		update.SetLastError(lastError)
	}
	if err := update.Exec(ctx); err != nil {
		w.logger.Error("Failed to record sync item outcome", "item_id", item.ID, "error", err)
	}
}

// backoffDelay doubles per failed attempt: base, 2*base, 4*base, ...
func backoffDelay(base time.Duration, attempts int) time.Duration {
	return base << (attempts - 1)
}

// PurgeCompleted deletes completed rows older than the retention
// window. Returns the number of rows removed.
func (w *Worker) PurgeCompleted(ctx context.Context) (int, error) {
	cutoff := w.now().Add(-w.cfg.PurgeAfter)
	n, err := w.client.SyncQueueItem.Delete().
		Where(
			syncqueueitem.StatusEQ(syncqueueitem.StatusCompleted),
			syncqueueitem.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge completed sync items: %w", err)
	}
	return n, nil
}
