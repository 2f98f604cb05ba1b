package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/memoryrecord"
	"github.com/elliebot/relay/pkg/search"
)

// InsertParams describe one memory to store.
type InsertParams struct {
	Type        string
	Content     string
	SourceAgent string
	Visibility  string

	Deadline       *time.Time
	ConversationID *string
	Metadata       map[string]interface{}
}

// Result reports what happened to an insert. For merged and flagged
// outcomes ID is the existing row's id.
type Result struct {
	ID         string
	Action     Action
	Resolution *Resolution
}

// Store is the dedup-aware memory writer.
type Store struct {
	client *ent.Client
	search search.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a store over the Ent client. searchClient may be
// search.Disabled{}; dedup then degrades to plain inserts.
func NewStore(client *ent.Client, searchClient search.Client) *Store {
	return &Store{
		client: client,
		search: searchClient,
		logger: slog.Default().With("component", "memory"),
		now:    time.Now,
	}
}

// InsertWithDedup stores one memory, merging or flagging against the
// closest existing memory of the same type when similarity lands in
// the dedup zone.
func (s *Store) InsertWithDedup(ctx context.Context, params InsertParams) (Result, error) {
	if params.SourceAgent == "" {
		params.SourceAgent = "general"
	}
	if params.Visibility == "" {
		params.Visibility = "shared"
	}

	best, ok := s.bestMatch(ctx, params)
	if !ok {
		return s.insert(ctx, params)
	}

	resolution := resolveConflict(
		Incoming{Content: params.Content, SourceAgent: params.SourceAgent, Visibility: params.Visibility},
		best,
	)

	switch resolution.Decision {
	case DecisionMerge:
		return s.merge(ctx, params, best, resolution)
	case DecisionFlagForUser:
		return s.flag(ctx, params, best, resolution)
	default:
		res, err := s.insert(ctx, params)
		res.Resolution = &resolution
		return res, err
	}
}

// bestMatch finds the most similar stored memory of the same type at
// or above DedupThreshold. Search failures degrade to "no match".
func (s *Store) bestMatch(ctx context.Context, params InsertParams) (Existing, bool) {
	matches, err := s.search.SearchSimilar(ctx, params.Content, DedupThreshold, 3)
	if err != nil {
		s.logger.Warn("Dedup search failed, inserting without dedup", "error", err)
		return Existing{}, false
	}

	var best Existing
	found := false
	for _, m := range matches {
		if m.Type != params.Type {
			continue
		}
		if !found || m.Similarity > best.Similarity {
			best = Existing{
				ID:          m.MemoryID,
				Content:     m.Content,
				SourceAgent: m.SourceAgent,
				Visibility:  m.Visibility,
				Similarity:  m.Similarity,
			}
			found = true
		}
	}
	return best, found
}

func (s *Store) insert(ctx context.Context, params InsertParams) (Result, error) {
	create := s.client.MemoryRecord.Create().
		SetID(uuid.New().String()).
		SetType(memoryrecord.Type(params.Type)).
		SetContent(params.Content).
		SetSourceAgent(params.SourceAgent).
		SetVisibility(memoryrecord.Visibility(params.Visibility)).
		SetNillableDeadline(params.Deadline).
		SetNillableConversationID(params.ConversationID)
	if params.Metadata != nil {
		create.SetMetadata(params.Metadata)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return Result{Action: ActionError}, fmt.Errorf("failed to insert memory: %w", err)
	}
	return Result{ID: row.ID, Action: ActionInserted}, nil
}

// merge folds the incoming memory into the existing row: corroboration
// metadata accumulates, visibility only widens, and content is
// replaced (embedding invalidated) only when the new text is
// materially longer.
func (s *Store) merge(ctx context.Context, params InsertParams, best Existing, resolution Resolution) (Result, error) {
	existing, err := s.client.MemoryRecord.Get(ctx, best.ID)
	if err != nil {
		return Result{Action: ActionError}, fmt.Errorf("failed to load memory %s: %w", best.ID, err)
	}

	meta := mergeCorroboration(existing.Metadata, existing.SourceAgent, params.SourceAgent, s.now())

	update := existing.Update().
		SetMetadata(meta).
		SetVisibility(memoryrecord.Visibility(
			promoteVisibility(string(existing.Visibility), params.Visibility)))

	if float64(len(params.Content)) > contentGrowthFactor*float64(len(existing.Content)) {
		update.SetContent(params.Content).ClearEmbedding()
	}

	if _, err := update.Save(ctx); err != nil {
		return Result{Action: ActionError}, fmt.Errorf("failed to merge memory %s: %w", best.ID, err)
	}

	s.logger.Info("Merged memory", "memory_id", best.ID, "reason", resolution.Reason,
		"similarity", best.Similarity)
	return Result{ID: best.ID, Action: ActionMerged, Resolution: &resolution}, nil
}

// flag marks the existing row for user review without inserting the
// incoming content anywhere else.
func (s *Store) flag(ctx context.Context, params InsertParams, best Existing, resolution Resolution) (Result, error) {
	existing, err := s.client.MemoryRecord.Get(ctx, best.ID)
	if err != nil {
		return Result{Action: ActionError}, fmt.Errorf("failed to load memory %s: %w", best.ID, err)
	}

	meta := flagConflict(existing.Metadata, params, best.Similarity, resolution.Reason, s.now())

	if _, err := existing.Update().SetMetadata(meta).Save(ctx); err != nil {
		return Result{Action: ActionError}, fmt.Errorf("failed to flag memory %s: %w", best.ID, err)
	}

	s.logger.Info("Flagged memory conflict for review", "memory_id", best.ID,
		"similarity", best.Similarity)
	return Result{ID: best.ID, Action: ActionFlagged, Resolution: &resolution}, nil
}

// CompleteGoal resolves a completion intent against stored active
// goals. The search string matches by substring first, then by
// similarity; among candidates the same agent wins, then the newest.
// Returns nil when nothing matches.
func (s *Store) CompleteGoal(ctx context.Context, query, agent string) (*ent.MemoryRecord, error) {
	goals, err := s.client.MemoryRecord.Query().
		Where(
			memoryrecord.TypeEQ(memoryrecord.TypeGoal),
			memoryrecord.CompletedAtIsNil(),
			memoryrecord.ContentContainsFold(query),
		).
		Order(ent.Desc(memoryrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active goals: %w", err)
	}

	target := pickGoal(goals, agent)
	if target == nil {
		target, err = s.goalBySimilarity(ctx, query, agent)
		if err != nil || target == nil {
			return nil, err
		}
	}

	updated, err := target.Update().
		SetType(memoryrecord.TypeCompletedGoal).
		SetCompletedAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete goal %s: %w", target.ID, err)
	}

	s.logger.Info("Goal completed", "memory_id", updated.ID, "agent", agent)
	return updated, nil
}

// pickGoal prefers the requesting agent's own goals, newest first.
func pickGoal(goals []*ent.MemoryRecord, agent string) *ent.MemoryRecord {
	for _, g := range goals {
		if g.SourceAgent == agent {
			return g
		}
	}
	if len(goals) > 0 {
		return goals[0]
	}
	return nil
}

func (s *Store) goalBySimilarity(ctx context.Context, query, agent string) (*ent.MemoryRecord, error) {
	matches, err := s.search.SearchSimilar(ctx, query, DedupThreshold, 3)
	if err != nil {
		s.logger.Warn("Goal similarity search failed", "error", err)
		return nil, nil
	}

	for _, preferSameAgent := range []bool{true, false} {
		for _, m := range matches {
			if m.Type != string(memoryrecord.TypeGoal) {
				continue
			}
			if preferSameAgent && m.SourceAgent != agent {
				continue
			}
			goal, err := s.client.MemoryRecord.Query().
				Where(
					memoryrecord.ID(m.MemoryID),
					memoryrecord.CompletedAtIsNil(),
				).
				Only(ctx)
			if ent.IsNotFound(err) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to load goal %s: %w", m.MemoryID, err)
			}
			return goal, nil
		}
	}
	return nil, nil
}
