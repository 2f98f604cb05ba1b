package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliebot/relay/ent"
)

func TestPickGoalPrefersSameAgentThenNewest(t *testing.T) {
	// Goals arrive newest first from the query.
	goals := []*ent.MemoryRecord{
		{ID: "g3", SourceAgent: "research"},
		{ID: "g2", SourceAgent: "coding"},
		{ID: "g1", SourceAgent: "coding"},
	}

	picked := pickGoal(goals, "coding")
	assert.Equal(t, "g2", picked.ID, "newest goal from the same agent wins")

	picked = pickGoal(goals, "planner")
	assert.Equal(t, "g3", picked.ID, "no same-agent goal falls back to newest overall")

	assert.Nil(t, pickGoal(nil, "coding"))
}
