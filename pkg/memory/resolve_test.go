package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveConflict(t *testing.T) {
	tests := []struct {
		name     string
		incoming Incoming
		existing Existing
		want     Decision
	}{
		{
			name:     "near-duplicate always merges",
			incoming: Incoming{Content: "x", SourceAgent: "coding", Visibility: "private"},
			existing: Existing{Content: strings.Repeat("y", 50), SourceAgent: "research", Visibility: "global", Similarity: 0.96},
			want:     DecisionMerge,
		},
		{
			name:     "exactly at auto-merge threshold merges",
			incoming: Incoming{SourceAgent: "a", Visibility: "shared"},
			existing: Existing{SourceAgent: "b", Visibility: "private", Similarity: 0.95},
			want:     DecisionMerge,
		},
		{
			name:     "same agent re-learning merges below auto-merge",
			incoming: Incoming{Content: "tiny", SourceAgent: "general", Visibility: "shared"},
			existing: Existing{Content: strings.Repeat("z", 400), SourceAgent: "general", Visibility: "shared", Similarity: 0.88},
			want:     DecisionMerge,
		},
		{
			name:     "different visibility keeps both",
			incoming: Incoming{Content: "abc", SourceAgent: "coding", Visibility: "private"},
			existing: Existing{Content: "abd", SourceAgent: "research", Visibility: "global", Similarity: 0.90},
			want:     DecisionKeepBoth,
		},
		{
			name:     "length ratio above 2 flags for review",
			incoming: Incoming{Content: strings.Repeat("n", 300), SourceAgent: "coding", Visibility: "shared"},
			existing: Existing{Content: strings.Repeat("e", 100), SourceAgent: "research", Visibility: "shared", Similarity: 0.90},
			want:     DecisionFlagForUser,
		},
		{
			name:     "length ratio below half flags for review",
			incoming: Incoming{Content: strings.Repeat("n", 40), SourceAgent: "coding", Visibility: "shared"},
			existing: Existing{Content: strings.Repeat("e", 100), SourceAgent: "research", Visibility: "shared", Similarity: 0.90},
			want:     DecisionFlagForUser,
		},
		{
			name:     "comparable cross-agent content corroborates",
			incoming: Incoming{Content: strings.Repeat("n", 90), SourceAgent: "coding", Visibility: "shared"},
			existing: Existing{Content: strings.Repeat("e", 100), SourceAgent: "research", Visibility: "shared", Similarity: 0.90},
			want:     DecisionMerge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveConflict(tt.incoming, tt.existing)
			assert.Equal(t, tt.want, got.Decision)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestPromoteVisibility(t *testing.T) {
	assert.Equal(t, "global", promoteVisibility("shared", "global"))
	assert.Equal(t, "shared", promoteVisibility("shared", "private"), "never downgrades")
	assert.Equal(t, "shared", promoteVisibility("shared", "shared"))
	assert.Equal(t, "global", promoteVisibility("global", "private"))
}

func TestMergeCorroboration(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := mergeCorroboration(nil, "general", "coding", now)
	assert.Equal(t, []string{"coding"}, stringSlice(meta[metaAltSources]))
	assert.Equal(t, 1, meta[metaCorroborationCount])
	assert.Equal(t, "2026-03-01T12:00:00Z", meta[metaLastCorroboratedAt])

	// Same corroborator again: count bumps, alt_sources stays deduped.
	meta = mergeCorroboration(meta, "general", "coding", now.Add(time.Hour))
	assert.Equal(t, []string{"coding"}, stringSlice(meta[metaAltSources]))
	assert.Equal(t, 2, meta[metaCorroborationCount])

	// The primary agent never lands in its own alt_sources.
	meta = mergeCorroboration(meta, "general", "general", now)
	assert.Equal(t, []string{"coding"}, stringSlice(meta[metaAltSources]))
	assert.Equal(t, 3, meta[metaCorroborationCount])
}

func TestMergeCorroborationToleratesJSONRoundTrip(t *testing.T) {
	// Metadata read back from the database arrives as generic JSON
	// values, not the Go types that were written.
	stored := map[string]interface{}{
		metaAltSources:         []interface{}{"coding"},
		metaCorroborationCount: float64(4),
	}
	meta := mergeCorroboration(stored, "general", "planner", time.Now())
	assert.Equal(t, []string{"coding", "planner"}, stringSlice(meta[metaAltSources]))
	assert.Equal(t, 5, meta[metaCorroborationCount])
}

func TestFlagConflictRecordsDetails(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	params := InsertParams{
		Content:     "new version of the fact",
		SourceAgent: "coding",
		Visibility:  "shared",
	}

	meta := flagConflict(map[string]interface{}{"kept": true}, params, 0.88, "content scope mismatch", now)

	assert.Equal(t, true, meta[metaNeedsReview])
	assert.Equal(t, true, meta["kept"], "unrelated keys survive")
	info := meta[metaConflictInfo].(map[string]interface{})
	assert.Equal(t, "new version of the fact", info["new_content"])
	assert.Equal(t, "coding", info["new_source_agent"])
	assert.Equal(t, 0.88, info["similarity"])
	assert.Equal(t, "content scope mismatch", info["reason"])
	assert.Equal(t, "2026-03-01T12:00:00Z", info["flagged_at"])
}

func TestLengthRatioMismatchEdgeCases(t *testing.T) {
	assert.False(t, lengthRatioMismatch("", ""))
	assert.True(t, lengthRatioMismatch("something", ""))
	assert.False(t, lengthRatioMismatch(strings.Repeat("a", 200), strings.Repeat("b", 100)), "exactly 2x is allowed")
	assert.False(t, lengthRatioMismatch(strings.Repeat("a", 50), strings.Repeat("b", 100)), "exactly half is allowed")
}
