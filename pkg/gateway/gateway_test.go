package gateway

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/config"
)

func testGateway(t *testing.T) *Gateway {
	t.Helper()
	cfg := config.ModelConfig{
		ClaudePath:       "claude",
		TimeoutWithTools: 10 * time.Minute,
		TimeoutNoTools:   2 * time.Minute,
		KillGrace:        5 * time.Second,
		SessionFile:      filepath.Join(t.TempDir(), "session.json"),
		RecoveryLock:     time.Minute,
	}
	return New(cfg, NewRecoveryLocks())
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		tools    []string
		resumeID string
		want     []string
	}{
		{
			name: "minimal",
			want: []string{"-p", "hi", "--output-format", "text"},
		},
		{
			name:  "model override",
			model: "opus",
			want:  []string{"-p", "hi", "--output-format", "text", "--model", "opus"},
		},
		{
			name:  "tools joined with commas",
			tools: []string{"Bash", "Read"},
			want:  []string{"-p", "hi", "--output-format", "text", "--allowedTools", "Bash,Read"},
		},
		{
			name:     "resume",
			resumeID: "abc-123",
			want:     []string{"-p", "hi", "--output-format", "text", "--resume", "abc-123"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildArgs("hi", tt.model, tt.tools, tt.resumeID))
		})
	}
}

func TestSplitSessionID(t *testing.T) {
	text, id := splitSessionID("Session ID: 0196c5a8-1111-7000-8000-aabbccddeeff\nHere is the answer.")
	assert.Equal(t, "0196c5a8-1111-7000-8000-aabbccddeeff", id)
	assert.Equal(t, "Here is the answer.", text)

	text, id = splitSessionID("No session line here.")
	assert.Empty(t, id)
	assert.Equal(t, "No session line here.", text)

	// Mid-text mentions are not session lines.
	text, id = splitSessionID("the value Session ID: nope stays")
	assert.Empty(t, id)
	assert.Equal(t, "the value Session ID: nope stays", text)
}

func TestInvokeSuccessPersistsSession(t *testing.T) {
	g := testGateway(t)
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		return runResult{stdout: "Session ID: 0196c5a8-1111-7000-8000-aabbccddeeff\nDone."}, nil
	}

	res, err := g.Invoke(context.Background(), "do the thing", Options{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.Equal(t, "Done.", res.Text)
	assert.Equal(t, "0196c5a8-1111-7000-8000-aabbccddeeff", res.SessionID)
	assert.Equal(t, res.SessionID, g.sessions.Load())
}

func TestInvokeResumePassesStoredSession(t *testing.T) {
	g := testGateway(t)
	require.NoError(t, g.sessions.Save("0196c5a8-2222-7000-8000-aabbccddeeff"))

	var seen []string
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		seen = args
		return runResult{stdout: "ok"}, nil
	}

	_, err := g.Invoke(context.Background(), "continue", Options{Resume: true})
	require.NoError(t, err)
	assert.Contains(t, seen, "--resume")
	assert.Contains(t, seen, "0196c5a8-2222-7000-8000-aabbccddeeff")
}

func TestInvokeTimeoutArmsRecoveryLock(t *testing.T) {
	g := testGateway(t)
	g.cfg.TimeoutNoTools = 50 * time.Millisecond
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		<-ctx.Done()
		return runResult{stdout: "partial progress so far", exitCode: -1}, nil
	}

	res, err := g.Invoke(context.Background(), "slow", Options{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeTimeout, res.Outcome)
	assert.Contains(t, res.Text, "Task timed out after")
	assert.Contains(t, res.Text, "partial progress so far")
	assert.True(t, g.locks.Held(LockTrackerSync))
}

func TestTimeoutMessageTruncatesPartialOutput(t *testing.T) {
	long := strings.Repeat("x", 2000)
	msg := timeoutMessage(time.Minute, long)
	assert.Contains(t, msg, "Task timed out after 1m0s")
	assert.Less(t, len(msg), 700)
	assert.Contains(t, msg, "…")
}

func TestInvokeExternalTermination(t *testing.T) {
	g := testGateway(t)
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		return runResult{exitCode: -1, termed: true}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeInterrupted, res.Outcome)
	assert.Contains(t, res.Text, "interrupted")
	assert.True(t, g.locks.Held(LockTrackerSync))
}

func TestInvokeNonZeroExit(t *testing.T) {
	g := testGateway(t)
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		return runResult{stderr: "rate limit exceeded", exitCode: 1}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, "Error: rate limit exceeded", res.Text)
}

func TestInvokeFailureWithoutOutputReportsExitCode(t *testing.T) {
	g := testGateway(t)
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		return runResult{exitCode: 7}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{})
	require.NoError(t, err)
	assert.Equal(t, "Error: exit code 7", res.Text)
}

func TestInvokeFailureTruncatesLongStderr(t *testing.T) {
	g := testGateway(t)
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		return runResult{stderr: strings.Repeat("e", 5000), exitCode: 1}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, strings.HasPrefix(res.Text, "Error: "))
	assert.LessOrEqual(t, len(res.Text), len("Error: ")+partialOutputLimit+len("…"))
	assert.True(t, strings.HasSuffix(res.Text, "…"))
}

func TestInvokeCorruptedSessionRetriesWithoutResume(t *testing.T) {
	g := testGateway(t)
	require.NoError(t, g.sessions.Save("0196c5a8-3333-7000-8000-aabbccddeeff"))

	var calls [][]string
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		calls = append(calls, args)
		if len(calls) == 1 {
			return runResult{stderr: "API error: tool_use.name missing", exitCode: 1}, nil
		}
		return runResult{stdout: "fresh start reply"}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{Resume: true})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0], "--resume")
	assert.NotContains(t, calls[1], "--resume")
	assert.Equal(t, OutcomeSuccess, res.Outcome)
	assert.True(t, res.Recovered)
	assert.Equal(t, "fresh start reply", res.Text)
	assert.Empty(t, g.sessions.Load())
}

func TestInvokeCorruptionMarkerOnStdoutDetected(t *testing.T) {
	g := testGateway(t)
	require.NoError(t, g.sessions.Save("0196c5a8-6666-7000-8000-aabbccddeeff"))

	// The marker lands on stdout while stderr carries unrelated noise.
	var calls [][]string
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		calls = append(calls, args)
		if len(calls) == 1 {
			return runResult{
				stdout:   "API error: tool_use.name mismatch",
				stderr:   "warning: deprecated flag",
				exitCode: 1,
			}, nil
		}
		return runResult{stdout: "recovered reply"}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{Resume: true})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.NotContains(t, calls[1], "--resume")
	assert.True(t, res.Recovered)
	assert.Equal(t, "recovered reply", res.Text)
}

func TestInvokeCorruptedRetryHappensOnlyOnce(t *testing.T) {
	g := testGateway(t)
	require.NoError(t, g.sessions.Save("0196c5a8-4444-7000-8000-aabbccddeeff"))

	calls := 0
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		calls++
		return runResult{stderr: "invalid session state", exitCode: 1}, nil
	}

	res, err := g.Invoke(context.Background(), "hi", Options{Resume: true})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, OutcomeFailed, res.Outcome)
}

func TestInvokeOrdinaryFailureDoesNotRetry(t *testing.T) {
	g := testGateway(t)
	require.NoError(t, g.sessions.Save("0196c5a8-5555-7000-8000-aabbccddeeff"))

	calls := 0
	g.run = func(ctx context.Context, args []string) (runResult, error) {
		calls++
		return runResult{stderr: "network unreachable", exitCode: 1}, nil
	}

	_, err := g.Invoke(context.Background(), "hi", Options{Resume: true})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "0196c5a8-5555-7000-8000-aabbccddeeff", g.sessions.Load())
}

func TestToolPolicySelectsTimeout(t *testing.T) {
	g := testGateway(t)
	g.cfg.TimeoutWithTools = 42 * time.Minute
	g.cfg.TimeoutNoTools = 2 * time.Minute

	assert.Equal(t, 42*time.Minute, g.cfg.ModelTimeout(true))
	assert.Equal(t, 2*time.Minute, g.cfg.ModelTimeout(false))
}
