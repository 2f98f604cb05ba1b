package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/relay/ent"
	"github.com/elliebot/relay/ent/executionplan"
)

// ExecutionPlanService records multi-step orchestrated runs so partial
// progress survives a failure.
type ExecutionPlanService struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewExecutionPlanService creates the service.
func NewExecutionPlanService(client *ent.Client) *ExecutionPlanService {
	return &ExecutionPlanService{
		client: client,
		logger: slog.Default().With("component", "execution_plans"),
		now:    time.Now,
	}
}

// Create opens a running plan with its step specs.
func (s *ExecutionPlanService) Create(ctx context.Context, channel string, mode executionplan.Mode, steps []map[string]interface{}) (*ent.ExecutionPlan, error) {
	plan, err := s.client.ExecutionPlan.Create().
		SetID(uuid.New().String()).
		SetChannel(channel).
		SetMode(mode).
		SetSteps(steps).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution plan: %w", err)
	}
	s.logger.Info("Execution plan started", "plan_id", plan.ID,
		"mode", mode, "steps", len(steps))
	return plan, nil
}

// UpdateSteps persists step progress mid-run. Best-effort.
func (s *ExecutionPlanService) UpdateSteps(ctx context.Context, planID string, steps []map[string]interface{}) {
	err := s.client.ExecutionPlan.UpdateOneID(planID).
		SetSteps(steps).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("Failed to persist plan progress", "plan_id", planID, "error", err)
	}
}

// Finish closes the plan with its terminal status and whatever output
// was produced.
func (s *ExecutionPlanService) Finish(ctx context.Context, planID string, status executionplan.Status, partialOutput string) {
	err := s.client.ExecutionPlan.UpdateOneID(planID).
		SetStatus(status).
		SetPartialOutput(partialOutput).
		SetCompletedAt(s.now()).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("Failed to close execution plan", "plan_id", planID, "error", err)
	}
}
