package collapse

import (
	"errors"
	"fmt"
)

// ErrNoTargetSchedule indicates neither the active view nor the selection
// resolves to an eligible schedule.
var ErrNoTargetSchedule = errors.New("no target schedule")

// ErrNoTerminatorColumn indicates the schedule has no field starting with "=".
var ErrNoTerminatorColumn = errors.New("no terminator column")

// Stage names the pipeline step an OperationError comes from.
type Stage string

const (
	StageResolve  Stage = "resolve"
	StageRange    Stage = "range"
	StageClassify Stage = "classify"
	StageApply    Stage = "apply"
)

// OperationError represents a failed collapse pass. The document is left
// unchanged whenever Run returns one.
type OperationError struct {
	Schedule string
	Stage    Stage
	// Message is the localized text shown to the user.
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Schedule == "" {
		return fmt.Sprintf("collapse failed (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("collapse failed for schedule %q (%s): %v", e.Schedule, e.Stage, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(schedule string, stage Stage, message string, err error) *OperationError {
	return &OperationError{
		Schedule: schedule,
		Stage:    stage,
		Message:  message,
		Err:      err,
	}
}
