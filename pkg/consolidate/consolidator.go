// Package consolidate folds quiet stretches of raw messages into
// closed conversations with extracted summaries and memories. A block
// that fails extraction is rolled back completely and picked up again
// on the next run.
package consolidate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/memory"
	"github.com/elliebot/relay/pkg/services"
)

// batchLimit caps how many unsummarized messages one run considers.
const batchLimit = 50

// blockGap is the silence that splits consecutive same-channel
// messages into separate conversations.
const blockGap = 30 * time.Minute

// ModelInvoker is the slice of the gateway the consolidator needs.
type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string, opts gateway.Options) (*gateway.Result, error)
}

// MemoryWriter is the slice of the memory store the consolidator needs.
type MemoryWriter interface {
	InsertWithDedup(ctx context.Context, params memory.InsertParams) (memory.Result, error)
}

// Report summarizes one consolidation run.
type Report struct {
	Blocks           int `json:"blocks"`
	BlocksFailed     int `json:"blocks_failed"`
	MessagesCovered  int `json:"messages_covered"`
	MemoriesInserted int `json:"memories_inserted"`
}

// Consolidator runs the grouping and extraction passes.
type Consolidator struct {
	messages      *services.MessageService
	conversations *services.ConversationService
	sessions      *services.AgentSessionService
	memories      MemoryWriter
	model         ModelInvoker

	// invalidate flushes any caller-owned context cache after a run
	// that changed conversation state. Optional.
	invalidate func()

	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a consolidator. invalidate may be nil.
func New(
	messages *services.MessageService,
	conversations *services.ConversationService,
	sessions *services.AgentSessionService,
	memories MemoryWriter,
	model ModelInvoker,
	invalidate func(),
) *Consolidator {
	return &Consolidator{
		messages:      messages,
		conversations: conversations,
		sessions:      sessions,
		memories:      memories,
		model:         model,
		invalidate:    invalidate,
		logger:        slog.Default().With("component", "consolidator"),
	}
}

// Start launches the periodic batch schedule.
func (c *Consolidator) Start(ctx context.Context, interval time.Duration) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := c.Run(ctx, ""); err != nil {
					c.logger.Error("Scheduled consolidation failed", "error", err)
				}
			}
		}
	}()
	c.logger.Info("Consolidator started", "interval", interval)
}

// Stop halts the periodic schedule.
func (c *Consolidator) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
}

// Run consolidates up to one batch of unsummarized messages,
// optionally restricted to a channel. Safe to call concurrently with
// inbound traffic: messages that arrive mid-run simply wait for the
// next one.
func (c *Consolidator) Run(ctx context.Context, channel string) (Report, error) {
	var report Report

	msgs, err := c.messages.UnsummarizedBatch(ctx, channel, batchLimit)
	if err != nil {
		return report, err
	}
	if len(msgs) == 0 {
		return report, nil
	}

	blocks := groupBlocks(msgs, blockGap)
	c.logger.Info("Consolidating", "channel", channel,
		"messages", len(msgs), "blocks", len(blocks))

	for _, block := range blocks {
		inserted, err := c.consolidateBlock(ctx, block)
		report.Blocks++
		report.MessagesCovered += len(block)
		report.MemoriesInserted += inserted
		if err != nil {
			report.BlocksFailed++
			c.logger.Warn("Block consolidation failed, rolled back",
				"channel", block[0].Channel, "messages", len(block), "error", err)
		}
	}

	if c.invalidate != nil {
		c.invalidate()
	}
	return report, nil
}

// consolidateBlock runs one block end to end. Any failure after the
// conversation row exists rolls the block back to its pre-run state.
func (c *Consolidator) consolidateBlock(ctx context.Context, block []*ent.Message) (int, error) {
	first, last := block[0], block[len(block)-1]

	agent, err := c.sessions.AttributeWindow(ctx, first.Channel, first.CreatedAt, last.CreatedAt)
	if err != nil {
		agent = "general"
	}

	conv, err := c.conversations.CreateBlock(ctx, first.Channel, agent,
		first.CreatedAt, last.CreatedAt, len(block))
	if err != nil {
		return 0, err
	}

	ids := make([]string, len(block))
	for i, m := range block {
		ids[i] = m.ID
	}
	if err := c.messages.AssignConversation(ctx, ids, conv.ID); err != nil {
		c.rollback(ctx, ids, conv.ID)
		return 0, err
	}

	extraction, err := c.extract(ctx, block)
	if err != nil {
		c.rollback(ctx, ids, conv.ID)
		return 0, err
	}

	// Extraction succeeded: from here on the block is committed.
	if err := c.messages.MarkSummarized(ctx, ids); err != nil {
		c.rollback(ctx, ids, conv.ID)
		return 0, err
	}
	if err := c.conversations.SetSummary(ctx, conv.ID, extraction.Summary); err != nil {
		c.logger.Warn("Failed to store summary", "conversation_id", conv.ID, "error", err)
	}

	inserted := c.storeMemories(ctx, conv.ID, agent, extraction)
	c.logger.Info("Block consolidated", "conversation_id", conv.ID,
		"channel", first.Channel, "messages", len(block), "memories", inserted)
	return inserted, nil
}

// extract asks the model for the block's summary and memories.
func (c *Consolidator) extract(ctx context.Context, block []*ent.Message) (extraction, error) {
	res, err := c.model.Invoke(ctx, extractionPrompt(block), gateway.Options{
		AllowedTools: []string{},
	})
	if err != nil {
		return extraction{}, err
	}
	if res.Outcome != gateway.OutcomeSuccess {
		return extraction{}, fmt.Errorf("extraction invocation ended in %s", res.Outcome)
	}
	return parseExtraction(res.Text)
}

// storeMemories inserts the extracted memories plus the summary
// itself. Individual insert failures are logged but do not fail the
// block: the summary is already committed.
func (c *Consolidator) storeMemories(ctx context.Context, conversationID, agent string, ex extraction) int {
	inserted := 0
	for _, m := range ex.Memories {
		if !validMemoryType(m.Type) {
			c.logger.Debug("Skipping memory with invalid type", "type", m.Type)
			continue
		}
		_, err := c.memories.InsertWithDedup(ctx, memory.InsertParams{
			Type:           m.Type,
			Content:        m.Content,
			SourceAgent:    agent,
			ConversationID: &conversationID,
		})
		if err != nil {
			c.logger.Warn("Failed to store extracted memory", "error", err)
			continue
		}
		inserted++
	}

	if ex.Summary != "" {
		_, err := c.memories.InsertWithDedup(ctx, memory.InsertParams{
			Type:           "summary",
			Content:        ex.Summary,
			SourceAgent:    agent,
			ConversationID: &conversationID,
		})
		if err != nil {
			c.logger.Warn("Failed to store summary memory", "error", err)
		} else {
			inserted++
		}
	}
	return inserted
}

// rollback undoes a failed block: conversation assignment cleared,
// conversation row deleted, summarized flags untouched (they only
// flip after success).
func (c *Consolidator) rollback(ctx context.Context, messageIDs []string, conversationID string) {
	if err := c.messages.ClearConversation(ctx, messageIDs); err != nil {
		c.logger.Error("Rollback failed to clear assignments",
			"conversation_id", conversationID, "error", err)
	}
	if err := c.conversations.Delete(ctx, conversationID); err != nil {
		c.logger.Error("Rollback failed to delete conversation",
			"conversation_id", conversationID, "error", err)
	}
}

// groupBlocks splits messages (assumed chronological) into blocks,
// starting a new block on channel change or a gap beyond maxGap.
func groupBlocks(msgs []*ent.Message, maxGap time.Duration) [][]*ent.Message {
	var blocks [][]*ent.Message
	var current []*ent.Message

	for _, m := range msgs {
		if len(current) > 0 {
			prev := current[len(current)-1]
			if m.Channel != prev.Channel || m.CreatedAt.Sub(prev.CreatedAt) > maxGap {
				blocks = append(blocks, current)
				current = nil
			}
		}
		current = append(current, m)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func validMemoryType(t string) bool {
	return t == "fact" || t == "action_item"
}
