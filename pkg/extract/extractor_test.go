package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainTextPassesThrough(t *testing.T) {
	res := Parse("Just a normal answer with [brackets] that are not markers.")
	assert.Equal(t, "Just a normal answer with [brackets] that are not markers.", res.CleanedText)
	assert.Empty(t, res.Memories)
	assert.Empty(t, res.Confirmations)
}

func TestParseRememberVisibilities(t *testing.T) {
	res := Parse("Noted. [REMEMBER: Dave uses Bun] [remember-private: Dave's birthday is in May] [REMEMBER-GLOBAL: office is closed Fridays]")

	require.Len(t, res.Memories, 3)
	assert.Equal(t, MemoryIntent{Content: "Dave uses Bun", Visibility: VisibilityShared}, res.Memories[0])
	assert.Equal(t, MemoryIntent{Content: "Dave's birthday is in May", Visibility: VisibilityPrivate}, res.Memories[1])
	assert.Equal(t, MemoryIntent{Content: "office is closed Fridays", Visibility: VisibilityGlobal}, res.Memories[2])
	assert.Equal(t, "Noted.", res.CleanedText)
}

func TestParseGoalWithDeadline(t *testing.T) {
	res := Parse("On it. [GOAL: ship the quarterly report | DEADLINE: 2026-09-01]")

	require.Len(t, res.Goals, 1)
	assert.Equal(t, "ship the quarterly report", res.Goals[0].Content)
	require.NotNil(t, res.Goals[0].Deadline)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *res.Goals[0].Deadline)
}

func TestParseGoalWithoutDeadline(t *testing.T) {
	res := Parse("[GOAL: learn Rust]")
	require.Len(t, res.Goals, 1)
	assert.Equal(t, "learn Rust", res.Goals[0].Content)
	assert.Nil(t, res.Goals[0].Deadline)
}

func TestParseGoalKeepsUnparseableDeadlineInContent(t *testing.T) {
	res := Parse("[GOAL: water plants | DEADLINE: whenever]")
	require.Len(t, res.Goals, 1)
	assert.Equal(t, "water plants | DEADLINE: whenever", res.Goals[0].Content)
	assert.Nil(t, res.Goals[0].Deadline)
}

func TestParseDone(t *testing.T) {
	res := Parse("Great news! [DONE: quarterly report] All wrapped up.")
	require.Len(t, res.Completions, 1)
	assert.Equal(t, "quarterly report", res.Completions[0])
	assert.Equal(t, "Great news!  All wrapped up.", res.CleanedText)
}

func TestParseObservationDefaults(t *testing.T) {
	res := Parse("[MEMORY: the deploy script lives in infra/]")
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "finding", res.Observations[0].Type)
	assert.InDelta(t, 0.7, res.Observations[0].Confidence, 1e-9)
	assert.Equal(t, "the deploy script lives in infra/", res.Observations[0].Content)
}

func TestParseObservationTypeAndConfidence(t *testing.T) {
	res := Parse("[MEMORY:preference:0.9:prefers dark mode]")
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "preference", res.Observations[0].Type)
	assert.InDelta(t, 0.9, res.Observations[0].Confidence, 1e-9)
	assert.Equal(t, "prefers dark mode", res.Observations[0].Content)
}

func TestParseObservationConfidenceOnly(t *testing.T) {
	res := Parse("[MEMORY:0.4:might be on vacation next week]")
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "finding", res.Observations[0].Type)
	assert.InDelta(t, 0.4, res.Observations[0].Confidence, 1e-9)
	assert.Equal(t, "might be on vacation next week", res.Observations[0].Content)
}

func TestParseConfirmations(t *testing.T) {
	res := Parse("I can do that. [CONFIRM: archive ticket PROJ-42] [CONFIRM: email the team]")
	require.Len(t, res.Confirmations, 2)
	assert.Equal(t, "archive ticket PROJ-42", res.Confirmations[0])
	assert.Equal(t, "email the team", res.Confirmations[1])
	assert.Equal(t, "I can do that.", res.CleanedText)
}

func TestParsePlaybookCommand(t *testing.T) {
	res := Parse("Starting the morning routine now.\nELLIE::RUN_PLAYBOOK morning-review")
	require.Len(t, res.Playbooks, 1)
	assert.Equal(t, "RUN_PLAYBOOK", res.Playbooks[0].Name)
	assert.Equal(t, "morning-review", res.Playbooks[0].Args)
	assert.Equal(t, "Starting the morning routine now.", res.CleanedText)
}

func TestParseMixedMarkers(t *testing.T) {
	input := "Here's the plan.\n\n[REMEMBER: Dave prefers short standups]\n[GOAL: book flights | DEADLINE: 2026-10-05T09:00:00Z]\n[CONFIRM: purchase the tickets]\nELLIE::SET_MODE travel"
	res := Parse(input)

	assert.Equal(t, "Here's the plan.", res.CleanedText)
	assert.Len(t, res.Memories, 1)
	assert.Len(t, res.Goals, 1)
	assert.Len(t, res.Confirmations, 1)
	assert.Len(t, res.Playbooks, 1)
	require.NotNil(t, res.Goals[0].Deadline)
	assert.Equal(t, 9, res.Goals[0].Deadline.Hour())
}

func TestParseEmptyMarkersAreDropped(t *testing.T) {
	res := Parse("[REMEMBER: ] done [CONFIRM:]")
	assert.Empty(t, res.Memories)
	assert.Empty(t, res.Confirmations)
	assert.Equal(t, "done", res.CleanedText)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	res := Parse("[remember: lowercase works] [Confirm: also this]")
	assert.Len(t, res.Memories, 1)
	assert.Len(t, res.Confirmations, 1)
}

func TestParseNonGreedyAcrossMultipleMarkers(t *testing.T) {
	res := Parse("[REMEMBER: first] and [REMEMBER: second]")
	require.Len(t, res.Memories, 2)
	assert.Equal(t, "first", res.Memories[0].Content)
	assert.Equal(t, "second", res.Memories[1].Content)
}
