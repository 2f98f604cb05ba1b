package race

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/pipeline"
)

func TestPipelineWinsTheRace(t *testing.T) {
	c := New(time.Second)

	var responses []Response
	c.Run(t.Context(),
		func(ctx context.Context) (*pipeline.TurnResult, error) {
			return &pipeline.TurnResult{Reply: "the real answer"}, nil
		},
		func(r Response) { responses = append(responses, r) },
		func(ctx context.Context, result *pipeline.TurnResult, err error) {
			t.Error("late path must not fire when the pipeline wins")
		},
	)

	require.Len(t, responses, 1)
	assert.False(t, responses[0].Acknowledged)
	assert.Equal(t, "the real answer", responses[0].Text)
}

func TestTimerWinsTheRace(t *testing.T) {
	c := New(30 * time.Millisecond)

	release := make(chan struct{})
	lateResult := make(chan *pipeline.TurnResult, 1)

	var responses []Response
	c.Run(t.Context(),
		func(ctx context.Context) (*pipeline.TurnResult, error) {
			<-release
			return &pipeline.TurnResult{Reply: "late answer"}, nil
		},
		func(r Response) { responses = append(responses, r) },
		func(ctx context.Context, result *pipeline.TurnResult, err error) {
			lateResult <- result
		},
	)

	require.Len(t, responses, 1)
	assert.True(t, responses[0].Acknowledged)
	assert.Contains(t, responses[0].Text, "Working on it")

	close(release)
	select {
	case result := <-lateResult:
		assert.Equal(t, "late answer", result.Reply)
	case <-time.After(time.Second):
		t.Fatal("late delivery never happened")
	}
}

func TestResponseWrittenExactlyOnce(t *testing.T) {
	// Deadline tuned so both branches race for real.
	c := New(10 * time.Millisecond)

	var count atomic.Int32
	done := make(chan struct{}, 1)
	c.Run(t.Context(),
		func(ctx context.Context) (*pipeline.TurnResult, error) {
			time.Sleep(10 * time.Millisecond)
			return &pipeline.TurnResult{Reply: "answer"}, nil
		},
		func(r Response) { count.Add(1) },
		func(ctx context.Context, result *pipeline.TurnResult, err error) {
			done <- struct{}{}
		},
	)

	// Give any stray second write a chance to happen.
	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
	}
	assert.Equal(t, int32(1), count.Load())
}

func TestTurnErrorBeforeDeadline(t *testing.T) {
	c := New(time.Second)

	var responses []Response
	c.Run(t.Context(),
		func(ctx context.Context) (*pipeline.TurnResult, error) {
			return nil, errors.New("datastore down")
		},
		func(r Response) { responses = append(responses, r) },
		nil,
	)

	require.Len(t, responses, 1)
	assert.Contains(t, responses[0].Text, "ran into an error")
	assert.NotContains(t, responses[0].Text, "datastore down", "internal errors stay internal")
}

func TestTurnSurvivesRequestCancellation(t *testing.T) {
	c := New(20 * time.Millisecond)

	reqCtx, cancel := context.WithCancel(context.Background())
	sawCancel := make(chan bool, 1)

	c.Run(reqCtx,
		func(ctx context.Context) (*pipeline.TurnResult, error) {
			// Simulate the handler returning and the request context
			// dying while the turn still runs.
			time.Sleep(60 * time.Millisecond)
			sawCancel <- ctx.Err() != nil
			return &pipeline.TurnResult{Reply: "x"}, nil
		},
		func(r Response) { cancel() },
		func(ctx context.Context, result *pipeline.TurnResult, err error) {},
	)

	select {
	case cancelled := <-sawCancel:
		assert.False(t, cancelled, "background turn must not inherit request cancellation")
	case <-time.After(time.Second):
		t.Fatal("turn never finished")
	}
}
