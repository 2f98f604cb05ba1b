package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixed(text string) Fetcher {
	return func(ctx context.Context) (string, error) { return text, nil }
}

func TestAssembleStableOrdering(t *testing.T) {
	a := NewAssembler(time.Second)

	out := a.Assemble(t.Context(), Input{
		Channel:     "telegram",
		Agent:       "research",
		UserMessage: "what's on my plate today?",
	}, Sources{
		Profile:        fixed("PROFILE-FRAGMENT"),
		History:        fixed("HISTORY-FRAGMENT"),
		SemanticSearch: fixed("SEMANTIC-FRAGMENT"),
		WorkItems:      fixed("WORKITEM-FRAGMENT"),
	})

	order := []string{
		"You are Ellie",
		"research agent",
		"PROFILE-FRAGMENT",
		"HISTORY-FRAGMENT",
		"SEMANTIC-FRAGMENT",
		"[REMEMBER:",
		"[CONFIRM:",
		"WORKITEM-FRAGMENT",
		"what's on my plate today?",
	}
	pos := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		assert.Greaterf(t, idx, pos, "%q out of order", marker)
		pos = idx
	}
}

func TestFailedFragmentYieldsEmptySection(t *testing.T) {
	a := NewAssembler(time.Second)

	out := a.Assemble(t.Context(), Input{Channel: "web", UserMessage: "hi"}, Sources{
		Profile: func(ctx context.Context) (string, error) {
			return "", errors.New("profile service down")
		},
		History: fixed("HISTORY-FRAGMENT"),
	})

	assert.NotContains(t, out, "## Profile")
	assert.Contains(t, out, "HISTORY-FRAGMENT")
	assert.NotContains(t, out, "profile service down")
}

func TestSlowFragmentIsCutOff(t *testing.T) {
	a := NewAssembler(30 * time.Millisecond)

	start := time.Now()
	out := a.Assemble(t.Context(), Input{Channel: "web", UserMessage: "hi"}, Sources{
		SemanticSearch: func(ctx context.Context) (string, error) {
			select {
			case <-time.After(5 * time.Second):
				return "TOO-LATE", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		},
		History: fixed("HISTORY-FRAGMENT"),
	})

	assert.Less(t, time.Since(start), time.Second)
	assert.NotContains(t, out, "TOO-LATE")
	assert.Contains(t, out, "HISTORY-FRAGMENT")
}

func TestFetchesRunInParallel(t *testing.T) {
	a := NewAssembler(time.Second)

	slow := func(ctx context.Context) (string, error) {
		time.Sleep(100 * time.Millisecond)
		return "slow", nil
	}
	src := Sources{
		Profile:           slow,
		StructuredContext: slow,
		History:           slow,
		SemanticSearch:    slow,
		FullTextSearch:    slow,
		Forest:            slow,
		WorkItems:         slow,
		Skills:            slow,
		LiveSignals:       slow,
		QueueContext:      slow,
	}

	start := time.Now()
	a.Assemble(t.Context(), Input{Channel: "web", UserMessage: "hi"}, src)
	assert.Less(t, time.Since(start), 500*time.Millisecond,
		"ten 100ms fetches must not run sequentially")
}

func TestToolPolicyReflectsAllowedTools(t *testing.T) {
	a := NewAssembler(time.Second)

	out := a.Assemble(t.Context(), Input{
		Channel:      "web",
		UserMessage:  "hi",
		AllowedTools: []string{"WebSearch", "Bash"},
	}, Sources{})
	assert.Contains(t, out, "WebSearch, Bash")

	out = a.Assemble(t.Context(), Input{Channel: "web", UserMessage: "hi"}, Sources{})
	assert.Contains(t, out, "No tools are available")
}

func TestVoiceChannelGetsSpeakableIdentity(t *testing.T) {
	a := NewAssembler(time.Second)
	out := a.Assemble(t.Context(), Input{Channel: "voice", UserMessage: "hi"}, Sources{})
	assert.Contains(t, out, "phone call")
}

func TestUserMessageAlwaysLast(t *testing.T) {
	a := NewAssembler(time.Second)
	out := a.Assemble(t.Context(), Input{Channel: "web", UserMessage: "FINAL-QUESTION"}, Sources{
		QueueContext: fixed("QUEUE-FRAGMENT"),
	})
	assert.Greater(t, strings.Index(out, "FINAL-QUESTION"), strings.Index(out, "QUEUE-FRAGMENT"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "FINAL-QUESTION"))
}
