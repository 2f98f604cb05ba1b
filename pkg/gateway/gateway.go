// Package gateway runs model turns as claude CLI subprocess
// invocations and owns their lifecycle: session resume, timeout
// escalation, and crash recovery.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/elliebot/relay/pkg/config"
)

// Lock names armed when an invocation is cut short.
const (
	// LockTrackerSync suppresses ticket state churn during recovery.
	LockTrackerSync = "tracker-sync"
)

// partialOutputLimit caps how much interrupted stdout is surfaced back
// to the user in the timeout message.
const partialOutputLimit = 500

// Outcome classifies how an invocation ended.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeTimeout     Outcome = "timeout"
	OutcomeInterrupted Outcome = "interrupted"
	OutcomeFailed      Outcome = "failed"
)

// Result is the outcome of a single model invocation. Text is always
// user-presentable: on failure outcomes it carries the explanation the
// user should see rather than raw process noise.
type Result struct {
	Text      string
	SessionID string
	Outcome   Outcome

	// Recovered reports that a corrupted resume was detected and the
	// invocation was replayed once without --resume.
	Recovered bool
}

// Options shape a single invocation.
type Options struct {
	// Resume continues the stored session when true and one exists.
	Resume bool

	// AllowedTools overrides the configured tool allowlist when non-nil.
	AllowedTools []string

	// Model overrides the configured model when non-empty.
	Model string
}

// sessionIDRe matches the session line the CLI prints on success.
var sessionIDRe = regexp.MustCompile(`(?m)^Session ID:\s*([0-9a-fA-F-]{36})\s*$`)

// corruptionMarkers identify a resume pointing at unreadable session
// state. Any of these in the failure output triggers one replay
// without --resume.
var corruptionMarkers = []string{
	"tool_use.name",
	"invalid session",
	"No conversation found",
}

// Gateway serializes model turns through the claude CLI. Callers are
// expected to invoke one turn at a time per channel; the gateway itself
// only guards the session file.
type Gateway struct {
	cfg      config.ModelConfig
	sessions *SessionFile
	locks    *RecoveryLocks
	logger   *slog.Logger

	// run is the process seam, replaced in tests.
	run func(ctx context.Context, args []string) (runResult, error)
}

type runResult struct {
	stdout   string
	stderr   string
	exitCode int
	termed   bool
}

// New creates a gateway over the configured CLI binary.
func New(cfg config.ModelConfig, locks *RecoveryLocks) *Gateway {
	g := &Gateway{
		cfg:      cfg,
		sessions: NewSessionFile(cfg.SessionFile),
		locks:    locks,
		logger:   slog.Default().With("component", "gateway"),
	}
	g.run = g.runCommand
	return g
}

// Sessions exposes the session store for status reporting.
func (g *Gateway) Sessions() *SessionFile {
	return g.sessions
}

// Invoke runs one model turn. The returned Result.Text is safe to
// relay to the user for every outcome; err is reserved for failures to
// start the process at all.
func (g *Gateway) Invoke(ctx context.Context, prompt string, opts Options) (*Result, error) {
	tools := g.cfg.AllowedTools
	if opts.AllowedTools != nil {
		tools = opts.AllowedTools
	}

	resumeID := ""
	if opts.Resume {
		resumeID = g.sessions.Load()
	}

	res, rr, err := g.invokeOnce(ctx, prompt, opts, tools, resumeID)
	if err != nil {
		return nil, err
	}

	// A corrupted resume fails fast with a recognizable marker. The
	// marker may land on either stream, so classify from the raw
	// process output, not the formatted reply. Drop the stale session
	// and replay once from scratch.
	if res.Outcome == OutcomeFailed && resumeID != "" && looksCorrupted(rr.stdout+"\n"+rr.stderr) {
		g.logger.Warn("Resume failed with corrupted session state, retrying without resume",
			"session_prefix", prefix8(resumeID))
		if err := g.sessions.Clear(); err != nil {
			g.logger.Warn("Failed to clear session file", "error", err)
		}
		res, _, err = g.invokeOnce(ctx, prompt, opts, tools, "")
		if err != nil {
			return nil, err
		}
		res.Recovered = true
	}
	return res, nil
}

func (g *Gateway) invokeOnce(ctx context.Context, prompt string, opts Options, tools []string, resumeID string) (*Result, runResult, error) {
	withTools := len(tools) > 0
	timeout := g.cfg.ModelTimeout(withTools)

	args := buildArgs(prompt, g.modelFor(opts), tools, resumeID)

	g.logger.Info("Invoking model",
		"prompt_len", len(prompt),
		"tool_count", len(tools),
		"resumed", prefix8(resumeID),
		"timeout", timeout)

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	rr, err := g.run(runCtx, args)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		return nil, rr, fmt.Errorf("failed to start model process: %w", err)

	case runCtx.Err() == context.DeadlineExceeded:
		g.locks.Arm(LockTrackerSync, g.cfg.RecoveryLock)
		g.logger.Warn("Model invocation timed out",
			"elapsed", elapsed, "timeout", timeout)
		return &Result{Text: timeoutMessage(timeout, rr.stdout), Outcome: OutcomeTimeout}, rr, nil

	case ctx.Err() == context.Canceled:
		// Shutdown or caller cancellation; the turn is abandoned.
		return &Result{Text: interruptedMessage(rr.stdout), Outcome: OutcomeInterrupted}, rr, nil

	case rr.termed:
		// SIGTERM from outside the gateway (operator restart).
		g.locks.Arm(LockTrackerSync, g.cfg.RecoveryLock)
		g.logger.Warn("Model process terminated externally", "elapsed", elapsed)
		return &Result{Text: interruptedMessage(rr.stdout), Outcome: OutcomeInterrupted}, rr, nil

	case rr.exitCode != 0:
		g.logger.Warn("Model process exited non-zero",
			"exit_code", rr.exitCode, "elapsed", elapsed)
		return &Result{Text: failureMessage(rr), Outcome: OutcomeFailed}, rr, nil
	}

	text, sessionID := splitSessionID(rr.stdout)
	if sessionID != "" {
		if err := g.sessions.Save(sessionID); err != nil {
			g.logger.Warn("Failed to persist session id", "error", err)
		}
	}

	g.logger.Info("Model invocation complete",
		"elapsed", elapsed,
		"reply_len", len(text),
		"session_prefix", prefix8(sessionID))

	return &Result{Text: text, SessionID: sessionID, Outcome: OutcomeSuccess}, rr, nil
}

func (g *Gateway) modelFor(opts Options) string {
	if opts.Model != "" {
		return opts.Model
	}
	return g.cfg.Model
}

// runCommand executes the CLI with stdin closed. Cancellation sends
// SIGTERM; after KillGrace the runtime escalates to SIGKILL.
func (g *Gateway) runCommand(ctx context.Context, args []string) (runResult, error) {
	cmd := exec.CommandContext(ctx, g.cfg.ClaudePath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = nil
	cmd.WaitDelay = g.cfg.KillGrace
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}

	if g.cfg.SubscriptionMode {
		cmd.Env = envWithout(os.Environ(), "ANTHROPIC_API_KEY")
	}

	err := cmd.Run()

	rr := runResult{stdout: stdout.String(), stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return rr, nil
	case errors.As(err, &exitErr):
		rr.exitCode = exitErr.ExitCode()
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok &&
			status.Signaled() && status.Signal() == syscall.SIGTERM {
			rr.termed = true
		}
		return rr, nil
	case ctx.Err() != nil:
		// Killed by our own deadline before producing an exit status.
		rr.exitCode = -1
		return rr, nil
	default:
		return rr, err
	}
}

// buildArgs assembles the CLI argument vector for one invocation.
func buildArgs(prompt, model string, tools []string, resumeID string) []string {
	args := []string{"-p", prompt, "--output-format", "text"}
	if model != "" {
		args = append(args, "--model", model)
	}
	if len(tools) > 0 {
		args = append(args, "--allowedTools", strings.Join(tools, ","))
	}
	if resumeID != "" {
		args = append(args, "--resume", resumeID)
	}
	return args
}

// splitSessionID extracts the session line from stdout and returns the
// remaining reply text.
func splitSessionID(stdout string) (text, sessionID string) {
	m := sessionIDRe.FindStringSubmatch(stdout)
	if m == nil {
		return strings.TrimSpace(stdout), ""
	}
	text = strings.Replace(stdout, m[0], "", 1)
	return strings.TrimSpace(text), m[1]
}

func timeoutMessage(timeout time.Duration, partial string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task timed out after %s.", timeout)
	partial = strings.TrimSpace(partial)
	if partial != "" {
		if len(partial) > partialOutputLimit {
			partial = partial[:partialOutputLimit] + "…"
		}
		b.WriteString(" Partial output before the cutoff:\n\n")
		b.WriteString(partial)
	}
	b.WriteString("\n\nYou can ask me to retry, or ask what got done so far.")
	return b.String()
}

func interruptedMessage(partial string) string {
	msg := "I got interrupted while working on that."
	partial = strings.TrimSpace(partial)
	if partial != "" {
		if len(partial) > partialOutputLimit {
			partial = partial[:partialOutputLimit] + "…"
		}
		msg += " Here's what I had so far:\n\n" + partial
	}
	return msg
}

func failureMessage(rr runResult) string {
	detail := strings.TrimSpace(rr.stderr)
	if detail == "" {
		detail = strings.TrimSpace(rr.stdout)
	}
	if detail == "" {
		detail = fmt.Sprintf("exit code %d", rr.exitCode)
	}
	if len(detail) > partialOutputLimit {
		detail = detail[:partialOutputLimit] + "…"
	}
	return "Error: " + detail
}

func looksCorrupted(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range corruptionMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func prefix8(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func envWithout(env []string, key string) []string {
	out := env[:0:0]
	for _, kv := range env {
		if strings.HasPrefix(kv, key+"=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}
