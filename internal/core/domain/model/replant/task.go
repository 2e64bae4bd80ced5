package replant

import (
	"errors"
	"fmt"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/errs"
)

// MaxAttempts bounds how often a task is retried before it is parked as Failed.
const MaxAttempts = 5

var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Task is a queued request to replant a high-potency plant consumed by
// processing. Processing enqueues tasks in its own transaction and a
// background job works them off, so the replant never blocks a batch and its
// outcome stays observable.
type Task struct {
	id             kernel.UUID
	sourcePlantID  int64
	sourceStrength kernel.Strength
	status         Status
	attempts       int
	lastError      string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewTask enqueues a Pending replant for the given source plant.
func NewTask(id kernel.UUID, sourcePlantID int64, sourceStrength kernel.Strength, now time.Time) (*Task, error) {
	t := &Task{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setSourcePlantID(sourcePlantID),
		t.setSourceStrength(sourceStrength),
		t.setCreatedAt(now),
	); err != nil {
		return nil, err
	}
	t.updatedAt = now

	return t, nil
}

// RestoreTask rebuilds a persisted task.
func RestoreTask(
	id kernel.UUID,
	sourcePlantID int64,
	sourceStrength kernel.Strength,
	status Status,
	attempts int,
	lastError string,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	t := &Task{
		attempts:      attempts,
		lastError:     lastError,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setSourcePlantID(sourcePlantID),
		t.setSourceStrength(sourceStrength),
		t.setStatus(status),
		t.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID                 { return t.id }
func (t *Task) SourcePlantID() int64            { return t.sourcePlantID }
func (t *Task) SourceStrength() kernel.Strength { return t.sourceStrength }
func (t *Task) Status() Status                  { return t.status }
func (t *Task) Attempts() int                   { return t.attempts }
func (t *Task) LastError() string               { return t.lastError }
func (t *Task) CreatedAt() time.Time            { return t.createdAt }
func (t *Task) UpdatedAt() time.Time            { return t.updatedAt }

// Complete records a successful replant.
func (t *Task) Complete(now time.Time) error {
	if err := t.status.validatePending(); err != nil {
		return err
	}
	t.attempts++
	t.status = Done
	t.lastError = ""
	t.updatedAt = now
	return nil
}

// RecordFailure counts a failed attempt. The task stays Pending until
// MaxAttempts is reached and then becomes Failed.
func (t *Task) RecordFailure(cause error, now time.Time) error {
	if err := t.status.validatePending(); err != nil {
		return err
	}
	t.attempts++
	if cause != nil {
		t.lastError = cause.Error()
	}
	if t.attempts >= MaxAttempts {
		t.status = Failed
	}
	t.updatedAt = now
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setSourcePlantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("source plant id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	t.sourcePlantID = id
	return nil
}

func (t *Task) setSourceStrength(s kernel.Strength) error {
	if err := s.Validate(); err != nil {
		return err
	}
	t.sourceStrength = s
	return nil
}

func (t *Task) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	t.status = s
	return nil
}

func (t *Task) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	t.createdAt = at
	return nil
}
