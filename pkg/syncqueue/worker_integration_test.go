package syncqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/syncqueueitem"
	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/tracker"
	"github.com/elliebot/relay/pkg/transport"
	testdb "github.com/elliebot/relay/test/database"
)

// flakyTracker fails the first failures calls of every operation with
// a retryable error, then succeeds.
type flakyTracker struct {
	failures int
	calls    int
}

func (f *flakyTracker) step() error {
	f.calls++
	if f.calls <= f.failures {
		return transport.Retryable(errors.New("tracker unavailable"))
	}
	return nil
}

func (f *flakyTracker) CreateIssue(context.Context, map[string]interface{}) (string, error) {
	return "ISS-1", f.step()
}
func (f *flakyTracker) UpdateIssue(context.Context, string, map[string]interface{}) error {
	return f.step()
}
func (f *flakyTracker) ChangeState(context.Context, string, string) error { return f.step() }
func (f *flakyTracker) AddComment(context.Context, string, string) error  { return f.step() }
func (f *flakyTracker) ResolveIssue(context.Context, string) (string, error) {
	return "ISS-1", f.step()
}

var _ tracker.Client = (*flakyTracker)(nil)

type stubLocks struct{ held bool }

func (s *stubLocks) Held(string) bool { return s.held }

func testWorkerConfig() config.SyncQueueConfig {
	return config.SyncQueueConfig{
		PollInterval: 30 * time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
		BackoffBase:  30 * time.Second,
		PurgeAfter:   7 * 24 * time.Hour,
	}
}

func newTestWorker(t *testing.T, trackerClient tracker.Client, locks Suppressor) (*Worker, *ent.Client, *time.Time) {
	t.Helper()
	client := testdb.NewTestClient(t)
	w := NewWorker(client.Client, trackerClient, locks, testWorkerConfig())
	clock := time.Now().UTC().Truncate(time.Second)
	w.now = func() time.Time { return clock }
	return w, client.Client, &clock
}

func queueRow(t *testing.T, client *ent.Client) *ent.SyncQueueItem {
	t.Helper()
	row, err := client.SyncQueueItem.Query().Only(context.Background())
	require.NoError(t, err)
	return row
}

func TestProcessBatchRetriesWithBackoffThenDeadLetters(t *testing.T) {
	ctx := context.Background()
	trk := &flakyTracker{failures: 99}
	w, client, clock := newTestWorker(t, trk, &stubLocks{})

	w.Enqueue(ctx, syncqueueitem.ActionStateChange, "ISS-7", map[string]interface{}{"state": "done"})

	// Attempt 1: marked processing, failed, rescheduled 30s out.
	w.ProcessBatch(ctx)
	row := queueRow(t, client)
	assert.Equal(t, 1, row.Attempts)
	assert.Equal(t, syncqueueitem.StatusPending, row.Status)
	require.NotNil(t, row.LastError)
	assert.Contains(t, *row.LastError, "tracker unavailable")
	assert.WithinDuration(t, clock.Add(30*time.Second), row.NextRetryAt, time.Second)

	// Not due yet: a second poll at the same instant must not touch it.
	w.ProcessBatch(ctx)
	assert.Equal(t, 1, queueRow(t, client).Attempts)

	// Attempt 2 doubles the delay.
	*clock = clock.Add(30 * time.Second)
	w.ProcessBatch(ctx)
	row = queueRow(t, client)
	assert.Equal(t, 2, row.Attempts)
	assert.WithinDuration(t, clock.Add(60*time.Second), row.NextRetryAt, time.Second)

	// Attempt 3 exhausts the budget: dead-lettered, never retried.
	*clock = clock.Add(60 * time.Second)
	w.ProcessBatch(ctx)
	row = queueRow(t, client)
	assert.Equal(t, 3, row.Attempts)
	assert.Equal(t, syncqueueitem.StatusFailed, row.Status)
	require.NotNil(t, row.LastError)

	*clock = clock.Add(time.Hour)
	w.ProcessBatch(ctx)
	assert.Equal(t, 3, queueRow(t, client).Attempts)
}

func TestProcessBatchDefersStateChangesUnderRecoveryLock(t *testing.T) {
	ctx := context.Background()
	locks := &stubLocks{held: true}
	w, client, clock := newTestWorker(t, &flakyTracker{}, locks)

	w.Enqueue(ctx, syncqueueitem.ActionStateChange, "ISS-7", map[string]interface{}{"state": "done"})

	// Deferral spends no attempt and pushes the row one poll out.
	w.ProcessBatch(ctx)
	row := queueRow(t, client)
	assert.Equal(t, 0, row.Attempts)
	assert.Equal(t, syncqueueitem.StatusPending, row.Status)
	assert.WithinDuration(t, clock.Add(30*time.Second), row.NextRetryAt, time.Second)

	// Lock released: the next due poll executes it normally.
	locks.held = false
	*clock = clock.Add(30 * time.Second)
	w.ProcessBatch(ctx)
	row = queueRow(t, client)
	assert.Equal(t, syncqueueitem.StatusCompleted, row.Status)
	assert.Equal(t, 1, row.Attempts)
}

func TestProcessBatchCreateIssueRunsDespiteRecoveryLock(t *testing.T) {
	ctx := context.Background()
	w, client, _ := newTestWorker(t, &flakyTracker{}, &stubLocks{held: true})

	w.Enqueue(ctx, syncqueueitem.ActionCreateIssue, "", map[string]interface{}{"title": "upgrade router"})

	w.ProcessBatch(ctx)
	row := queueRow(t, client)
	assert.Equal(t, syncqueueitem.StatusCompleted, row.Status)
	assert.Equal(t, "ISS-1", row.TargetID)
}

func TestProcessBatchCompletionClearsError(t *testing.T) {
	ctx := context.Background()
	w, client, clock := newTestWorker(t, &flakyTracker{failures: 2}, &stubLocks{})

	w.Enqueue(ctx, syncqueueitem.ActionAddComment, "ISS-7", map[string]interface{}{"comment": "done for today"})

	w.ProcessBatch(ctx)
	*clock = clock.Add(30 * time.Second)
	w.ProcessBatch(ctx)
	row := queueRow(t, client)
	assert.Equal(t, 2, row.Attempts)
	require.NotNil(t, row.LastError)

	*clock = clock.Add(60 * time.Second)
	w.ProcessBatch(ctx)
	row = queueRow(t, client)
	assert.Equal(t, syncqueueitem.StatusCompleted, row.Status)
	assert.Equal(t, 3, row.Attempts)
	assert.Nil(t, row.LastError)
	require.NotNil(t, row.CompletedAt)
	assert.WithinDuration(t, *clock, *row.CompletedAt, time.Second)
}
