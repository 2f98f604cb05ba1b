// Package race answers transports with a hard synchronous reply
// deadline. The turn and a timer race; whichever finishes first writes
// the one and only synchronous response, and a turn that loses the
// race is delivered out of band when it completes.
package race

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elliebot/relay/pkg/pipeline"
)

// AckText is the synchronous placeholder sent when the turn outlives
// the webhook deadline.
const AckText = "Working on it… I'll send the answer here in a moment."

// Response is what gets written back on the webhook connection.
type Response struct {
	// Acknowledged is true when the timer won and Text is a
	// placeholder rather than the real answer.
	Acknowledged bool
	Text         string
	Result       *pipeline.TurnResult
}

// LateFunc receives the turn result after an acknowledged response.
// It runs on a background context that survives the request handler.
type LateFunc func(ctx context.Context, result *pipeline.TurnResult, err error)

// Coordinator runs the pipeline-versus-deadline race.
type Coordinator struct {
	deadline time.Duration
	logger   *slog.Logger
}

// New creates a coordinator for the given synchronous deadline.
func New(deadline time.Duration) *Coordinator {
	return &Coordinator{
		deadline: deadline,
		logger:   slog.Default().With("component", "race"),
	}
}

type turnOutcome struct {
	result *pipeline.TurnResult
	err    error
}

// Run starts the turn and responds within the deadline, exactly once.
// If the turn wins, respond receives its payload. If the timer wins,
// respond receives the acknowledgement and late is invoked with the
// real result when it lands. Run returns once respond has been called.
func (c *Coordinator) Run(ctx context.Context, turn func(context.Context) (*pipeline.TurnResult, error), respond func(Response), late LateFunc) {
	// The turn must keep running after the handler returns, so it gets
	// a context detached from the request's cancellation.
	bg := context.WithoutCancel(ctx)

	outcome := make(chan turnOutcome, 1)
	go func() {
		result, err := turn(bg)
		outcome <- turnOutcome{result: result, err: err}
	}()

	// The responded flag makes double-writes structurally impossible
	// even if both branches fire close together.
	var once sync.Once
	respondOnce := func(r Response) {
		once.Do(func() { respond(r) })
	}

	timer := time.NewTimer(c.deadline)
	defer timer.Stop()

	select {
	case out := <-outcome:
		if out.err != nil {
			c.logger.Error("Turn failed before the deadline", "error", out.err)
			respondOnce(Response{Text: "I ran into an error and couldn't process that."})
			return
		}
		respondOnce(Response{Text: out.result.Reply, Result: out.result})

	case <-timer.C:
		c.logger.Info("Deadline won the race, acknowledging", "deadline", c.deadline)
		respondOnce(Response{Acknowledged: true, Text: AckText})
		go func() {
			out := <-outcome
			late(bg, out.result, out.err)
		}()
	}
}
