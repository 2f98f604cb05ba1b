package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/search"
	testdb "github.com/elliebot/relay/test/database"
)

// cannedSearch replays a fixed hit list for every similarity lookup.
type cannedSearch struct {
	rows []search.Match
}

func (c *cannedSearch) SearchSimilar(context.Context, string, float64, int) ([]search.Match, error) {
	return c.rows, nil
}

func (c *cannedSearch) SearchText(context.Context, string, map[string]string, int) ([]search.Match, error) {
	return nil, nil
}

func TestInsertWithDedupMergesNearDuplicate(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	searcher := &cannedSearch{}
	store := NewStore(client.Client, searcher)

	first, err := store.InsertWithDedup(ctx, InsertParams{
		Type:        "fact",
		Content:     "User runs OpenWrt on the home router",
		SourceAgent: "general",
	})
	require.NoError(t, err)
	require.Equal(t, ActionInserted, first.Action)

	searcher.rows = []search.Match{{
		MemoryID:    first.ID,
		Content:     "User runs OpenWrt on the home router",
		Type:        "fact",
		SourceAgent: "general",
		Visibility:  "shared",
		Similarity:  0.97,
	}}

	// A near-duplicate from another agent corroborates the existing
	// row instead of inserting a second one.
	res, err := store.InsertWithDedup(ctx, InsertParams{
		Type:        "fact",
		Content:     "The user's home router runs OpenWrt",
		SourceAgent: "research",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionMerged, res.Action)
	assert.Equal(t, first.ID, res.ID)

	count, err := client.Client.MemoryRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err := client.Client.MemoryRecord.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "User runs OpenWrt on the home router", row.Content,
		"similar-length content must not overwrite the original")
	assert.Equal(t, []string{"research"}, stringSlice(row.Metadata[metaAltSources]))
	assert.EqualValues(t, 1, intValue(row.Metadata[metaCorroborationCount]))
}

func TestInsertWithDedupMergeReplacesMateriallyLongerContent(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	searcher := &cannedSearch{}
	store := NewStore(client.Client, searcher)

	short := "User has a dog"
	long := "User has a dog named Biscuit, a three year old border collie"

	first, err := store.InsertWithDedup(ctx, InsertParams{
		Type: "fact", Content: short, SourceAgent: "general",
	})
	require.NoError(t, err)

	// Stale embedding from the short content; the merge must clear it
	// so it gets regenerated server-side.
	require.NoError(t, client.Client.MemoryRecord.UpdateOneID(first.ID).
		SetEmbedding([]byte{1, 2, 3}).Exec(ctx))

	searcher.rows = []search.Match{{
		MemoryID:    first.ID,
		Content:     short,
		Type:        "fact",
		SourceAgent: "general",
		Visibility:  "shared",
		Similarity:  0.97,
	}}

	res, err := store.InsertWithDedup(ctx, InsertParams{
		Type: "fact", Content: long, SourceAgent: "general",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionMerged, res.Action)

	row, err := client.Client.MemoryRecord.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, long, row.Content)
	assert.Nil(t, row.Embedding)
}
