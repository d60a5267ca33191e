package orchestrator

import (
	"context"
	"fmt"

	"github.com/compozy/githelper/internal/domain"
	"github.com/compozy/githelper/internal/repository"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// SagaStep represents a single step in the saga workflow
type SagaStep struct {
	Name       string
	Type       domain.OperationType
	Execute    func(ctx context.Context) (rollbackData map[string]any, err error)
	Compensate func(ctx context.Context, rollbackData map[string]any) error
	// Retryable steps are re-run with exponential backoff before the saga gives up.
	Retryable bool
}

// SagaExecutor runs steps in order and compensates completed steps when one fails.
type SagaExecutor struct {
	sessionID  string
	stateRepo  repository.StateRepository
	state      *domain.RollbackState
	steps      []SagaStep
	retryCount uint64
	log        *zap.Logger
}

// NewSagaExecutor creates a new saga executor. stateRepo may be nil, in which
// case the session is kept in memory only.
func NewSagaExecutor(stateRepo repository.StateRepository, retryCount uint64, log *zap.Logger) *SagaExecutor {
	if log == nil {
		log = zap.NewNop()
	}
	sessionID := uuid.New().String()
	return &SagaExecutor{
		sessionID:  sessionID,
		stateRepo:  stateRepo,
		state:      domain.NewRollbackState(sessionID),
		steps:      []SagaStep{},
		retryCount: retryCount,
		log:        log.With(zap.String("session", sessionID)),
	}
}

// AddStep adds a step to the saga
func (s *SagaExecutor) AddStep(step SagaStep) {
	s.steps = append(s.steps, step)
	s.state.AddOperation(step.Type)
}

// Execute runs the saga workflow with automatic rollback on failure
func (s *SagaExecutor) Execute(ctx context.Context) error {
	s.state.Status = domain.WorkflowStatusRunning
	s.saveState(ctx)
	for _, step := range s.steps {
		if err := s.executeStep(ctx, step); err != nil {
			s.state.MarkOperationFailed(step.Type, err)
			s.saveState(ctx)
			// rollback must complete even if the caller's context is done
			rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), RollbackTimeout)
			rollbackErr := s.rollback(rollbackCtx)
			cancel()
			if rollbackErr != nil {
				return &RollbackFailedError{
					Step:        step.Name,
					Err:         err,
					RollbackErr: rollbackErr,
					StatePath:   s.statePath(),
				}
			}
			s.deleteState(ctx)
			return fmt.Errorf("step '%s' failed: %w", step.Name, err)
		}
	}
	s.state.Status = domain.WorkflowStatusCompleted
	s.deleteState(ctx)
	return nil
}

// executeStep executes a single saga step, retrying when the step allows it
func (s *SagaExecutor) executeStep(ctx context.Context, step SagaStep) error {
	s.state.MarkOperationStarted(step.Type)
	s.saveState(ctx)
	s.log.Debug("saga step started", zap.String("step", step.Name))
	var rollbackData map[string]any
	retries := uint64(0)
	if step.Retryable {
		retries = s.retryCount
	}
	retryStrategy := retry.WithMaxRetries(retries, retry.NewExponential(DefaultRetryDelay))
	attempt := 0
	err := retry.Do(ctx, retryStrategy, func(retryCtx context.Context) error {
		attempt++
		data, execErr := step.Execute(retryCtx)
		if execErr != nil {
			s.log.Debug("saga step attempt failed",
				zap.String("step", step.Name), zap.Int("attempt", attempt), zap.Error(execErr))
			return retry.RetryableError(execErr)
		}
		rollbackData = data
		return nil
	})
	if err != nil {
		return err
	}
	s.state.MarkOperationCompleted(step.Type, rollbackData)
	s.saveState(ctx)
	return nil
}

// Rollback executes compensating actions for completed operations
func (s *SagaExecutor) Rollback(ctx context.Context) error {
	return s.rollback(ctx)
}

func (s *SagaExecutor) rollback(ctx context.Context) error {
	completedOps := s.state.CompletedOperations()
	if len(completedOps) == 0 {
		s.log.Debug("no operations to roll back")
		s.state.Status = domain.WorkflowStatusRolledBack
		return nil
	}
	for _, op := range completedOps {
		select {
		case <-ctx.Done():
			return fmt.Errorf("rollback canceled: %w", ctx.Err())
		default:
		}
		step := s.findStepByType(op.Type)
		if step == nil || step.Compensate == nil {
			continue
		}
		s.log.Info("rolling back", zap.String("step", step.Name))
		if err := s.executeCompensation(ctx, step, op.RollbackData); err != nil {
			s.log.Error("rollback failed", zap.String("step", step.Name), zap.Error(err))
			return fmt.Errorf("rollback failed for %s: %w", step.Name, err)
		}
		s.state.MarkOperationRolledBack(op.Type)
		s.saveState(ctx)
	}
	s.state.Status = domain.WorkflowStatusRolledBack
	return nil
}

// executeCompensation executes a compensating action with retry
func (s *SagaExecutor) executeCompensation(ctx context.Context, step *SagaStep, rollbackData map[string]any) error {
	retryStrategy := retry.WithMaxRetries(s.retryCount, retry.NewExponential(DefaultRetryDelay))
	return retry.Do(ctx, retryStrategy, func(retryCtx context.Context) error {
		if err := step.Compensate(retryCtx, rollbackData); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// findStepByType finds a saga step by operation type
func (s *SagaExecutor) findStepByType(opType domain.OperationType) *SagaStep {
	for i := range s.steps {
		if s.steps[i].Type == opType {
			return &s.steps[i]
		}
	}
	return nil
}

// saveState persists the current state; persistence is best effort.
func (s *SagaExecutor) saveState(ctx context.Context) {
	if s.stateRepo == nil {
		return
	}
	if err := s.stateRepo.Save(ctx, s.state); err != nil {
		s.log.Warn("failed to save saga state", zap.Error(err))
	}
}

func (s *SagaExecutor) deleteState(ctx context.Context) {
	if s.stateRepo == nil {
		return
	}
	if err := s.stateRepo.Delete(ctx, s.sessionID); err != nil {
		s.log.Warn("failed to delete saga state", zap.Error(err))
	}
}

func (s *SagaExecutor) statePath() string {
	if s.stateRepo == nil {
		return ""
	}
	return s.stateRepo.Path(s.sessionID)
}

// State returns the current saga state
func (s *SagaExecutor) State() *domain.RollbackState {
	return s.state
}

// SessionID identifies this saga run.
func (s *SagaExecutor) SessionID() string {
	return s.sessionID
}

// SetVersion sets the version in the state
func (s *SagaExecutor) SetVersion(version string) {
	s.state.Version = version
}
