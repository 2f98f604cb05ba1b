package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/memoryrecord"
)

// ProfileSummary renders the most recently corroborated facts as
// prompt-ready lines. Returns "" when nothing is stored.
func (s *Store) ProfileSummary(ctx context.Context, limit int) (string, error) {
	facts, err := s.client.MemoryRecord.Query().
		Where(memoryrecord.TypeEQ(memoryrecord.TypeFact)).
		Order(ent.Desc(memoryrecord.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load profile facts: %w", err)
	}
	if len(facts) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, f := range facts {
		fmt.Fprintf(&b, "- %s\n", f.Content)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// ActiveGoals renders open goals with deadlines, soonest deadline
// first, undated goals last.
func (s *Store) ActiveGoals(ctx context.Context, limit int, loc *time.Location) (string, error) {
	goals, err := s.client.MemoryRecord.Query().
		Where(
			memoryrecord.TypeEQ(memoryrecord.TypeGoal),
			memoryrecord.CompletedAtIsNil(),
		).
		Order(ent.Asc(memoryrecord.FieldDeadline), ent.Desc(memoryrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load active goals: %w", err)
	}
	if len(goals) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("Open goals:\n")
	for _, g := range goals {
		if g.Deadline != nil {
			fmt.Fprintf(&b, "- %s (due %s)\n", g.Content, g.Deadline.In(loc).Format("Mon Jan 2"))
		} else {
			fmt.Fprintf(&b, "- %s\n", g.Content)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// FlaggedForReview returns memories waiting on user conflict review.
func (s *Store) FlaggedForReview(ctx context.Context, limit int) ([]*ent.MemoryRecord, error) {
	rows, err := s.client.MemoryRecord.Query().
		Order(ent.Desc(memoryrecord.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flagged memories: %w", err)
	}

	var flagged []*ent.MemoryRecord
	for _, r := range rows {
		if needs, _ := r.Metadata[metaNeedsReview].(bool); needs {
			flagged = append(flagged, r)
		}
	}
	return flagged, nil
}
