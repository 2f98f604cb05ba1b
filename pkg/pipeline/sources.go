package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elliebot/relay/pkg/dispatch"
	"github.com/elliebot/relay/pkg/memory"
	"github.com/elliebot/relay/pkg/prompt"
	"github.com/elliebot/relay/pkg/search"
	"github.com/elliebot/relay/pkg/services"
)

// historyLimit is how many recent turns the prompt carries.
const historyLimit = 12

// SourceDeps are the backends the default context fetchers read from.
type SourceDeps struct {
	Messages *services.MessageService
	Memories *memory.Store
	Search   search.Client
	Status   func() dispatch.Snapshot
	Timezone *time.Location
}

// DefaultSources builds the standard fragment set. Every fetcher
// swallows its own failures by returning an error the assembler
// degrades to an empty fragment.
func DefaultSources(deps SourceDeps) SourceFactory {
	loc := deps.Timezone
	if loc == nil {
		loc = time.UTC
	}

	return func(in prompt.Input) prompt.Sources {
		return prompt.Sources{
			Profile: func(ctx context.Context) (string, error) {
				return deps.Memories.ProfileSummary(ctx, 15)
			},
			StructuredContext: func(ctx context.Context) (string, error) {
				return deps.Memories.ActiveGoals(ctx, 10, loc)
			},
			History: func(ctx context.Context) (string, error) {
				msgs, err := deps.Messages.RecentHistory(ctx, in.Channel, historyLimit)
				if err != nil {
					return "", err
				}
				var b strings.Builder
				for _, m := range msgs {
					fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
				}
				return strings.TrimRight(b.String(), "\n"), nil
			},
			SemanticSearch: func(ctx context.Context) (string, error) {
				matches, err := deps.Search.SearchSimilar(ctx, in.UserMessage, 0.5, 5)
				if err != nil {
					return "", err
				}
				return formatMatches(matches), nil
			},
			FullTextSearch: func(ctx context.Context) (string, error) {
				matches, err := deps.Search.SearchText(ctx, in.UserMessage, nil, 5)
				if err != nil {
					return "", err
				}
				return formatMatches(matches), nil
			},
			QueueContext: func(ctx context.Context) (string, error) {
				if deps.Status == nil {
					return "", nil
				}
				snap := deps.Status()
				if !snap.Busy && snap.QueueLength == 0 {
					return "", nil
				}
				return fmt.Sprintf("You have %d other request(s) waiting; keep this reply focused.",
					snap.QueueLength), nil
			},
		}
	}
}

func formatMatches(matches []search.Match) string {
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "- %s\n", m.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
