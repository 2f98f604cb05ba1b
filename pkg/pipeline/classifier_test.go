package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/ent/executionplan"
	"github.com/elliebot/relay/pkg/config"
)

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier(config.AgentsConfig{
		Default: "general",
		Known:   []string{"general", "research", "coding", "planner"},
	})

	tests := []struct {
		message string
		want    string
	}{
		{"can you look up flight prices and compare airlines?", "research"},
		{"there's a bug in the deploy script", "coding"},
		{"remind me to pay rent, add it to the calendar", "planner"},
		{"good morning!", "general"},
		{"", "general"},
	}
	for _, tt := range tests {
		got, err := c.Classify(context.Background(), tt.message)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "message: %q", tt.message)
	}
}

func TestKeywordClassifierIgnoresUnknownAgents(t *testing.T) {
	// Only the configured agents get vocabulary.
	c := NewKeywordClassifier(config.AgentsConfig{
		Default: "general",
		Known:   []string{"general", "planner"},
	})

	got, err := c.Classify(context.Background(), "there's a bug in the code")
	require.NoError(t, err)
	assert.Equal(t, "general", got, "coding is not configured, must not route there")
}

type stubClassifier struct {
	agent string
	err   error
}

func (s stubClassifier) Classify(context.Context, string) (string, error) {
	return s.agent, s.err
}

func TestRouteFallsBackToDefault(t *testing.T) {
	cfg := config.DefaultConfig()

	p := New(*cfg, Deps{Classifier: stubClassifier{err: errors.New("classifier down")}})
	assert.Equal(t, "general", p.route(context.Background(), "hello"))

	p = New(*cfg, Deps{Classifier: stubClassifier{agent: "nonexistent-agent"}})
	assert.Equal(t, "general", p.route(context.Background(), "hello"),
		"unknown agent names route to the default")

	p = New(*cfg, Deps{Classifier: stubClassifier{agent: "coding"}})
	assert.Equal(t, "coding", p.route(context.Background(), "hello"))
}

func TestCombineOutputs(t *testing.T) {
	steps := []StepSpec{{Agent: "research"}, {Agent: "planner"}}

	out := combineOutputs(executionplan.ModePipeline, steps, []string{"draft", "final plan"})
	assert.Equal(t, "final plan", out)

	out = combineOutputs(executionplan.ModeFanout, steps, []string{"findings", "schedule"})
	assert.Contains(t, out, "research:\nfindings")
	assert.Contains(t, out, "planner:\nschedule")

	assert.Empty(t, combineOutputs(executionplan.ModeCriticLoop, steps, nil))
}

func TestPlanModeLabel(t *testing.T) {
	assert.Equal(t, "pipeline", planModeLabel(executionplan.ModePipeline))
	assert.Equal(t, "fan-out", planModeLabel(executionplan.ModeFanout))
	assert.Equal(t, "critic-loop", planModeLabel(executionplan.ModeCriticLoop))
}
