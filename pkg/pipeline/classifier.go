package pipeline

import (
	"context"
	"strings"

	"github.com/elliebot/relay/pkg/config"
)

// Classifier picks the agent that should handle a message.
type Classifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// KeywordClassifier routes by vocabulary. It is deliberately cheap:
// classification runs on every turn before the model gate, so it must
// never block on I/O. Anything it cannot place lands on the default
// agent.
type KeywordClassifier struct {
	defaultAgent string
	vocab        map[string][]string
}

// NewKeywordClassifier builds the classifier for the configured
// agents. Unknown agent names get no vocabulary and are only reachable
// by explicit request.
func NewKeywordClassifier(cfg config.AgentsConfig) *KeywordClassifier {
	builtin := map[string][]string{
		"research": {"research", "look up", "find out", "compare", "investigate", "summarize the article"},
		"coding":   {"code", "bug", "deploy", "repo", "function", "script", "compile", "stack trace"},
		"planner":  {"plan", "schedule", "calendar", "deadline", "remind", "organize", "itinerary"},
	}

	vocab := make(map[string][]string, len(cfg.Known))
	for _, agent := range cfg.Known {
		if words, ok := builtin[agent]; ok {
			vocab[agent] = words
		}
	}
	return &KeywordClassifier{defaultAgent: cfg.Default, vocab: vocab}
}

func (c *KeywordClassifier) Classify(ctx context.Context, message string) (string, error) {
	lower := strings.ToLower(message)

	bestAgent := c.defaultAgent
	bestScore := 0
	for agent, words := range c.vocab {
		score := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				score++
			}
		}
		if score > bestScore {
			bestAgent, bestScore = agent, score
		}
	}
	return bestAgent, nil
}
