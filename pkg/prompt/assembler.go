// Package prompt assembles the model prompt for one turn. Context
// fragments are fetched in parallel with individual timeouts; a
// fragment that fails or times out contributes nothing rather than
// failing the turn.
package prompt

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Fetcher produces one context fragment. Returning ("", nil) or an
// error both mean the fragment is omitted.
type Fetcher func(ctx context.Context) (string, error)

// Sources are the named fragment fetchers. Nil fields are skipped.
type Sources struct {
	Profile           Fetcher
	StructuredContext Fetcher
	History           Fetcher
	SemanticSearch    Fetcher
	FullTextSearch    Fetcher
	Forest            Fetcher
	WorkItems         Fetcher
	Skills            Fetcher
	LiveSignals       Fetcher
	QueueContext      Fetcher
}

// Input is the per-turn request the assembler composes around.
type Input struct {
	Channel      string
	Agent        string
	UserMessage  string
	ActiveSkill  string
	AllowedTools []string
}

// Assembler composes prompts. Pure over its inputs: it holds no
// per-turn state and persists nothing.
type Assembler struct {
	fetchTimeout time.Duration
	logger       *slog.Logger
}

// NewAssembler creates an assembler whose fragment fetches are each
// bounded by fetchTimeout.
func NewAssembler(fetchTimeout time.Duration) *Assembler {
	return &Assembler{
		fetchTimeout: fetchTimeout,
		logger:       slog.Default().With("component", "prompt"),
	}
}

// fragment pairs a fetcher with its slot in the prompt ordering.
type fragment struct {
	name    string
	fetcher Fetcher
}

// Assemble fans out the fragment fetches, waits for all of them, and
// composes the prompt in a stable section order.
func (a *Assembler) Assemble(ctx context.Context, in Input, src Sources) string {
	fragments := []fragment{
		{"profile", src.Profile},
		{"structured_context", src.StructuredContext},
		{"history", src.History},
		{"semantic_search", src.SemanticSearch},
		{"fulltext_search", src.FullTextSearch},
		{"forest", src.Forest},
		{"work_items", src.WorkItems},
		{"skills", src.Skills},
		{"live_signals", src.LiveSignals},
		{"queue_context", src.QueueContext},
	}

	results := make([]string, len(fragments))
	var wg sync.WaitGroup
	for i, f := range fragments {
		if f.fetcher == nil {
			continue
		}
		wg.Add(1)
		go func(i int, f fragment) {
			defer wg.Done()
			results[i] = a.fetch(ctx, f)
		}(i, f)
	}
	wg.Wait()

	byName := make(map[string]string, len(fragments))
	for i, f := range fragments {
		byName[f.name] = results[i]
	}
	return compose(in, byName)
}

// fetch runs one fetcher under its own deadline; any failure degrades
// to an empty fragment.
func (a *Assembler) fetch(ctx context.Context, f fragment) string {
	fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	done := make(chan string, 1)
	go func() {
		text, err := f.fetcher(fetchCtx)
		if err != nil {
			a.logger.Debug("Context fragment failed", "fragment", f.name, "error", err)
			done <- ""
			return
		}
		done <- text
	}()

	select {
	case text := <-done:
		return text
	case <-fetchCtx.Done():
		a.logger.Debug("Context fragment timed out", "fragment", f.name)
		return ""
	}
}

// compose joins the sections in their fixed order, dropping empties.
func compose(in Input, fragments map[string]string) string {
	searchResults := joinNonEmpty("\n\n",
		fragments["semantic_search"], fragments["fulltext_search"])

	sections := []struct {
		header string
		body   string
	}{
		{"", systemPreamble(in.Agent)},
		{"Active skill", joinNonEmpty("\n\n", in.ActiveSkill, fragments["skills"])},
		{"Tool policy", toolPolicy(in.AllowedTools)},
		{"Who you are talking to", userIdentity(in.Channel)},
		{"Profile", fragments["profile"]},
		{"Context", fragments["structured_context"]},
		{"Recent messages", fragments["history"]},
		{"Related memories", searchResults},
		{"Live signals", joinNonEmpty("\n\n", fragments["forest"], fragments["live_signals"], fragments["queue_context"])},
		{"Memory markers", memoryPolicy},
		{"Proposing actions", approvalPolicy},
		{"Work items", fragments["work_items"]},
		{"User message", in.UserMessage},
	}

	var parts []string
	for _, s := range sections {
		if strings.TrimSpace(s.body) == "" {
			continue
		}
		if s.header == "" {
			parts = append(parts, s.body)
			continue
		}
		parts = append(parts, "## "+s.header+"\n\n"+s.body)
	}
	return strings.Join(parts, "\n\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
