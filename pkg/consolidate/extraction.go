package consolidate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elliebot/relay/ent"
)

// extraction is the JSON the model must return for a block.
type extraction struct {
	Summary  string            `json:"summary"`
	Memories []extractedMemory `json:"memories"`
}

type extractedMemory struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// extractionPrompt renders the block transcript with strict output
// instructions. No markers, no tools: just JSON.
func extractionPrompt(block []*ent.Message) string {
	var b strings.Builder
	b.WriteString("Summarize this conversation and extract durable memories.\n")
	b.WriteString("Respond with ONLY a JSON object, no prose around it, shaped exactly as:\n")
	b.WriteString(`{"summary": "...", "memories": [{"type": "fact", "content": "..."}]}` + "\n")
	b.WriteString("Valid memory types: fact (stable knowledge about the user or world), ")
	b.WriteString("action_item (something the user still needs to do).\n")
	b.WriteString("Return an empty memories array when nothing is worth keeping.\n\n")
	b.WriteString("Transcript:\n")
	for _, m := range block {
		fmt.Fprintf(&b, "[%s] %s: %s\n", m.CreatedAt.Format("15:04"), m.Role, m.Content)
	}
	return b.String()
}

// parseExtraction reads the model's JSON, tolerating prose or code
// fences around the object. Invalid JSON aborts the block.
func parseExtraction(text string) (extraction, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return extraction{}, fmt.Errorf("no JSON object in extraction output")
	}

	var ex extraction
	if err := json.Unmarshal([]byte(text[start:end+1]), &ex); err != nil {
		return extraction{}, fmt.Errorf("invalid extraction JSON: %w", err)
	}
	if ex.Summary == "" {
		return extraction{}, fmt.Errorf("extraction JSON missing summary")
	}
	return ex, nil
}
