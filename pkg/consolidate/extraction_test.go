package consolidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/ent"
)

func msg(channel string, at time.Time) *ent.Message {
	return &ent.Message{ID: "m-" + at.Format("150405"), Channel: channel, CreatedAt: at}
}

func TestGroupBlocksSplitsOnGap(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []*ent.Message{
		msg("telegram", base),
		msg("telegram", base.Add(5*time.Minute)),
		msg("telegram", base.Add(50*time.Minute)), // 45 min gap
		msg("telegram", base.Add(55*time.Minute)),
	}

	blocks := groupBlocks(msgs, 30*time.Minute)
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0], 2)
	assert.Len(t, blocks[1], 2)
}

func TestGroupBlocksSplitsOnChannelChange(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []*ent.Message{
		msg("telegram", base),
		msg("web", base.Add(time.Minute)),
		msg("web", base.Add(2*time.Minute)),
		msg("telegram", base.Add(3*time.Minute)),
	}

	blocks := groupBlocks(msgs, 30*time.Minute)
	require.Len(t, blocks, 3)
	assert.Equal(t, "telegram", blocks[0][0].Channel)
	assert.Equal(t, "web", blocks[1][0].Channel)
	assert.Equal(t, "telegram", blocks[2][0].Channel)
}

func TestGroupBlocksExactGapStaysTogether(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []*ent.Message{
		msg("telegram", base),
		msg("telegram", base.Add(30*time.Minute)),
	}
	blocks := groupBlocks(msgs, 30*time.Minute)
	require.Len(t, blocks, 1)
}

func TestGroupBlocksEmpty(t *testing.T) {
	assert.Empty(t, groupBlocks(nil, 30*time.Minute))
}

func TestParseExtraction(t *testing.T) {
	ex, err := parseExtraction(`{"summary": "Planned the Lisbon trip.",
		"memories": [{"type": "fact", "content": "User prefers aisle seats"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "Planned the Lisbon trip.", ex.Summary)
	require.Len(t, ex.Memories, 1)
	assert.Equal(t, "fact", ex.Memories[0].Type)
}

func TestParseExtractionToleratesFences(t *testing.T) {
	ex, err := parseExtraction("Here you go:\n```json\n" +
		`{"summary": "s", "memories": []}` + "\n```\nDone.")
	require.NoError(t, err)
	assert.Equal(t, "s", ex.Summary)
}

func TestParseExtractionRejectsInvalid(t *testing.T) {
	_, err := parseExtraction("I could not summarize this.")
	assert.Error(t, err)

	_, err = parseExtraction(`{"summary": }`)
	assert.Error(t, err)

	_, err = parseExtraction(`{"memories": []}`)
	assert.Error(t, err, "summary is required")
}

func TestExtractionPromptContainsTranscriptAndShape(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	block := []*ent.Message{
		{Role: "user", Channel: "telegram", Content: "remind me about rent", CreatedAt: base},
		{Role: "assistant", Channel: "telegram", Content: "Will do.", CreatedAt: base.Add(time.Minute)},
	}

	p := extractionPrompt(block)
	assert.Contains(t, p, "remind me about rent")
	assert.Contains(t, p, "Will do.")
	assert.Contains(t, p, `"summary"`)
	assert.Contains(t, p, "action_item")
}

func TestValidMemoryType(t *testing.T) {
	assert.True(t, validMemoryType("fact"))
	assert.True(t, validMemoryType("action_item"))
	assert.False(t, validMemoryType("summary"), "summary is inserted separately")
	assert.False(t, validMemoryType("opinion"))
}
