package domain

import (
	"time"
)

// WorkflowStatus represents the overall status of a tagging workflow
type WorkflowStatus string

const (
	WorkflowStatusPending    WorkflowStatus = "pending"
	WorkflowStatusRunning    WorkflowStatus = "running"
	WorkflowStatusCompleted  WorkflowStatus = "completed"
	WorkflowStatusFailed     WorkflowStatus = "failed"
	WorkflowStatusRolledBack WorkflowStatus = "rolled_back"
)

// OperationStatus represents the status of an individual operation
type OperationStatus string

const (
	OperationStatusPending    OperationStatus = "pending"
	OperationStatusRunning    OperationStatus = "running"
	OperationStatusCompleted  OperationStatus = "completed"
	OperationStatusFailed     OperationStatus = "failed"
	OperationStatusRolledBack OperationStatus = "rolled_back"
)

// OperationType identifies the type of operation
type OperationType string

const (
	OperationTypeCreateTag  OperationType = "create_tag"
	OperationTypePushBranch OperationType = "push_branch"
	OperationTypePushTags   OperationType = "push_tags"
)

// RollbackState tracks a tagging workflow so completed steps can be compensated.
type RollbackState struct {
	SessionID  string            `json:"session_id"`
	StartedAt  time.Time         `json:"started_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Version    string            `json:"version"`
	Operations []OperationRecord `json:"operations"`
	Status     WorkflowStatus    `json:"status"`
	Error      string            `json:"error,omitempty"`
}

// OperationRecord represents a single operation in the workflow
type OperationRecord struct {
	Type         OperationType   `json:"type"`
	Status       OperationStatus `json:"status"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	RollbackData map[string]any  `json:"rollback_data,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// NewRollbackState creates a new rollback state
func NewRollbackState(sessionID string) *RollbackState {
	now := time.Now()
	return &RollbackState{
		SessionID:  sessionID,
		StartedAt:  now,
		UpdatedAt:  now,
		Operations: []OperationRecord{},
		Status:     WorkflowStatusPending,
	}
}

// AddOperation adds a new pending operation record to the state
func (rs *RollbackState) AddOperation(opType OperationType) {
	rs.Operations = append(rs.Operations, OperationRecord{
		Type:      opType,
		Status:    OperationStatusPending,
		StartedAt: time.Now(),
	})
	rs.UpdatedAt = time.Now()
}

// CompletedOperations returns all successfully completed operations, most recent first
func (rs *RollbackState) CompletedOperations() []OperationRecord {
	var completed []OperationRecord
	for i := len(rs.Operations) - 1; i >= 0; i-- {
		if rs.Operations[i].Status == OperationStatusCompleted {
			completed = append(completed, rs.Operations[i])
		}
	}
	return completed
}

// MarkOperationStarted marks an operation as started
func (rs *RollbackState) MarkOperationStarted(opType OperationType) {
	rs.transition(opType, OperationStatusPending, OperationStatusRunning, func(op *OperationRecord, now time.Time) {
		op.StartedAt = now
	})
}

// MarkOperationCompleted marks an operation as completed with rollback data
func (rs *RollbackState) MarkOperationCompleted(opType OperationType, rollbackData map[string]any) {
	rs.transition(opType, OperationStatusRunning, OperationStatusCompleted, func(op *OperationRecord, now time.Time) {
		op.CompletedAt = &now
		op.RollbackData = rollbackData
	})
}

// MarkOperationFailed marks an operation and the workflow as failed
func (rs *RollbackState) MarkOperationFailed(opType OperationType, err error) {
	rs.transition(opType, OperationStatusRunning, OperationStatusFailed, func(op *OperationRecord, now time.Time) {
		op.CompletedAt = &now
		op.Error = err.Error()
	})
	rs.Status = WorkflowStatusFailed
	rs.Error = err.Error()
}

// MarkOperationRolledBack marks a completed operation as compensated
func (rs *RollbackState) MarkOperationRolledBack(opType OperationType) {
	rs.transition(opType, OperationStatusCompleted, OperationStatusRolledBack, nil)
}

func (rs *RollbackState) transition(
	opType OperationType,
	from, to OperationStatus,
	update func(op *OperationRecord, now time.Time),
) {
	now := time.Now()
	for i := range rs.Operations {
		op := &rs.Operations[i]
		if op.Type == opType && op.Status == from {
			op.Status = to
			if update != nil {
				update(op, now)
			}
			rs.UpdatedAt = now
			return
		}
	}
}
