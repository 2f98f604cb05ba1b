// Package memory persists extracted memories with similarity-based
// deduplication. Near-duplicates merge into the existing row,
// ambiguous overlaps get flagged for user review, and everything else
// inserts cleanly.
package memory

// Similarity thresholds for deduplication. Matches below
// DedupThreshold are unrelated; at or above AutoMergeThreshold they
// are the same memory restated.
const (
	DedupThreshold     = 0.85
	AutoMergeThreshold = 0.95
)

// contentGrowthFactor is how much longer new content must be before a
// merge replaces the stored content (and invalidates the embedding).
const contentGrowthFactor = 1.3

// Action says what InsertWithDedup did.
type Action string

const (
	ActionInserted Action = "inserted"
	ActionMerged   Action = "merged"
	ActionFlagged  Action = "flagged"
	ActionError    Action = "error"
)

// Decision is the outcome of conflict resolution.
type Decision string

const (
	DecisionMerge       Decision = "merge"
	DecisionKeepBoth    Decision = "keep_both"
	DecisionFlagForUser Decision = "flag_for_user"
)

// Incoming is the candidate memory being inserted.
type Incoming struct {
	Content     string
	SourceAgent string
	Visibility  string
}

// Existing is the best same-type match already stored.
type Existing struct {
	ID          string
	Content     string
	SourceAgent string
	Visibility  string
	Similarity  float64
}

// Resolution carries the decision and a human-readable reason that
// ends up in conflict metadata.
type Resolution struct {
	Decision Decision
	Reason   string
}

// resolveConflict decides what to do with an incoming memory that
// landed in the dedup zone against an existing one. Pure function.
func resolveConflict(incoming Incoming, existing Existing) Resolution {
	if existing.Similarity >= AutoMergeThreshold {
		return Resolution{DecisionMerge, "near-duplicate"}
	}
	if incoming.SourceAgent == existing.SourceAgent {
		return Resolution{DecisionMerge, "re-learned by same agent"}
	}
	if incoming.Visibility != existing.Visibility {
		return Resolution{DecisionKeepBoth, "different visibility scopes"}
	}
	if lengthRatioMismatch(incoming.Content, existing.Content) {
		return Resolution{DecisionFlagForUser, "content scope mismatch"}
	}
	return Resolution{DecisionMerge, "cross-agent corroboration"}
}

// lengthRatioMismatch reports whether the new content is more than
// twice or less than half the length of the existing content.
func lengthRatioMismatch(newContent, existingContent string) bool {
	if len(existingContent) == 0 {
		return len(newContent) > 0
	}
	ratio := float64(len(newContent)) / float64(len(existingContent))
	return ratio > 2 || ratio < 0.5
}

// visibilityRank orders visibility scopes for monotonic promotion.
var visibilityRank = map[string]int{
	"private": 0,
	"shared":  1,
	"global":  2,
}

// promoteVisibility returns the wider of the two scopes. Visibility
// only ever upgrades.
func promoteVisibility(current, incoming string) string {
	if visibilityRank[incoming] > visibilityRank[current] {
		return incoming
	}
	return current
}
