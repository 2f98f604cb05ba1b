package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/elliebot/relay/ent/executionplan"
	"github.com/elliebot/relay/pkg/delivery"
	"github.com/elliebot/relay/pkg/extract"
	"github.com/elliebot/relay/pkg/gateway"
	"github.com/elliebot/relay/pkg/prompt"
	"github.com/elliebot/relay/pkg/services"
)

// StepSpec is one agent instruction inside a multi-step run.
type StepSpec struct {
	Agent       string `json:"agent"`
	Instruction string `json:"instruction"`
}

// criticRounds bounds the critic loop: generate, critique, revise.
const criticRounds = 1

// Orchestrator chains several agents over the shared model gate.
type Orchestrator struct {
	pipeline *Pipeline
	plans    *services.ExecutionPlanService
}

// NewOrchestrator creates a multi-step runner over the pipeline.
func NewOrchestrator(p *Pipeline, plans *services.ExecutionPlanService) *Orchestrator {
	return &Orchestrator{pipeline: p, plans: plans}
}

// Run executes the plan and delivers the outcome. The run is announced
// before the first step; a mid-run failure delivers everything
// produced so far, verbatim, with an incompleteness annotation.
func (o *Orchestrator) Run(ctx context.Context, channel string, mode executionplan.Mode, steps []StepSpec) error {
	if len(steps) == 0 {
		return fmt.Errorf("execution plan has no steps")
	}

	o.announce(ctx, channel, mode, steps)

	stepState := make([]map[string]interface{}, len(steps))
	for i, s := range steps {
		stepState[i] = map[string]interface{}{
			"agent":       s.Agent,
			"instruction": s.Instruction,
			"status":      "pending",
		}
	}
	plan, err := o.plans.Create(ctx, channel, mode, stepState)
	if err != nil {
		return err
	}

	outputs, failedAt := o.execute(ctx, channel, mode, steps, plan.ID, stepState)

	if failedAt >= 0 {
		partial := strings.Join(outputs, "\n\n")
		o.plans.Finish(ctx, plan.ID, executionplan.StatusFailed, partial)
		text := partial
		if text != "" {
			text += "\n\n"
		}
		text += fmt.Sprintf("(execution incomplete: step %d of %d did not finish)", failedAt+1, len(steps))
		o.pipeline.deliverer.Deliver(ctx, text, delivery.Options{Channel: channel, Fallback: true})
		return nil
	}

	final := combineOutputs(mode, steps, outputs)
	o.plans.Finish(ctx, plan.ID, executionplan.StatusCompleted, final)

	result := &TurnResult{Reply: final}
	if msg, err := o.pipeline.messages.SaveAssistant(ctx, channel, final, map[string]interface{}{
		"plan_id": plan.ID,
		"mode":    string(mode),
	}); err == nil {
		result.AssistantMessageID = msg.ID
	}
	o.pipeline.Deliver(ctx, channel, result)
	return nil
}

// execute runs the steps per mode, returning per-step cleaned outputs
// and the index of the failed step (-1 when all succeeded).
func (o *Orchestrator) execute(ctx context.Context, channel string, mode executionplan.Mode, steps []StepSpec, planID string, stepState []map[string]interface{}) ([]string, int) {
	var outputs []string

	runStep := func(i int, instruction string) (string, bool) {
		stepState[i]["status"] = "running"
		o.plans.UpdateSteps(ctx, planID, stepState)

		text, ok := o.invokeStep(ctx, channel, steps[i].Agent, instruction)
		if !ok {
			stepState[i]["status"] = "failed"
			o.plans.UpdateSteps(ctx, planID, stepState)
			return "", false
		}
		stepState[i]["status"] = "completed"
		stepState[i]["output"] = text
		o.plans.UpdateSteps(ctx, planID, stepState)
		return text, true
	}

	switch mode {
	case executionplan.ModeFanout:
		// Independent steps; the gate still serializes the model calls.
		for i, s := range steps {
			text, ok := runStep(i, s.Instruction)
			if !ok {
				return outputs, i
			}
			outputs = append(outputs, text)
		}

	case executionplan.ModeCriticLoop:
		draft, ok := runStep(0, steps[0].Instruction)
		if !ok {
			return outputs, 0
		}
		outputs = append(outputs, draft)
		for round := 0; round < criticRounds && len(steps) > 1; round++ {
			critique, ok := runStep(1, steps[1].Instruction+"\n\nDraft to review:\n"+draft)
			if !ok {
				return outputs, 1
			}
			revised, ok := runStep(0, steps[0].Instruction+
				"\n\nYour previous draft:\n"+draft+"\n\nReviewer feedback:\n"+critique)
			if !ok {
				return outputs, 0
			}
			draft = revised
			outputs = []string{draft}
		}

	default: // pipeline: each step sees its predecessor's output
		carry := ""
		for i, s := range steps {
			instruction := s.Instruction
			if carry != "" {
				instruction += "\n\nOutput of the previous step:\n" + carry
			}
			text, ok := runStep(i, instruction)
			if !ok {
				return outputs, i
			}
			carry = text
			outputs = append(outputs, text)
		}
	}
	return outputs, -1
}

// invokeStep runs one agent instruction through the shared gateway,
// post-processing its markers under that agent's name.
func (o *Orchestrator) invokeStep(ctx context.Context, channel, agent, instruction string) (string, bool) {
	p := o.pipeline

	in := prompt.Input{
		Channel:      channel,
		Agent:        agent,
		UserMessage:  instruction,
		AllowedTools: p.cfg.Model.AllowedTools,
	}
	assembled := p.assembler.Assemble(ctx, in, p.sources(in))

	res := p.invokeWithHeartbeat(ctx, channel, assembled)
	if res.Outcome != gateway.OutcomeSuccess {
		p.logger.Warn("Plan step failed", "agent", agent, "outcome", res.Outcome)
		return "", false
	}

	parsed := extract.Parse(res.Text)
	p.postProcess(ctx, TurnRequest{Channel: channel}, agent, parsed)
	return parsed.CleanedText, true
}

func (o *Orchestrator) announce(ctx context.Context, channel string, mode executionplan.Mode, steps []StepSpec) {
	agents := make([]string, len(steps))
	for i, s := range steps {
		agents[i] = s.Agent
	}
	text := fmt.Sprintf("Starting a %d-step %s run (%s). I'll report back when it's done.",
		len(steps), planModeLabel(mode), strings.Join(agents, " -> "))
	o.pipeline.deliverer.Deliver(ctx, text, delivery.Options{
		Channel:             channel,
		SkipPendingResponse: true,
	})
}

func planModeLabel(mode executionplan.Mode) string {
	switch mode {
	case executionplan.ModeFanout:
		return "fan-out"
	case executionplan.ModeCriticLoop:
		return "critic-loop"
	default:
		return "pipeline"
	}
}

// combineOutputs renders the user-facing result of a successful run.
func combineOutputs(mode executionplan.Mode, steps []StepSpec, outputs []string) string {
	switch mode {
	case executionplan.ModeFanout:
		var b strings.Builder
		for i, out := range outputs {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "%s:\n%s", steps[i].Agent, out)
		}
		return b.String()
	default:
		// Pipeline and critic-loop converge on a single final output.
		if len(outputs) == 0 {
			return ""
		}
		return outputs[len(outputs)-1]
	}
}
