package replant

import (
	"fmt"

	"perfumery/internal/pkg/errs"
)

// Status of a replant task.
//
//	Pending ──> Done
//	   │
//	   └──────> Failed   (after MaxAttempts failures)
type Status int

const (
	Unknown Status = iota
	Pending
	Done
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Pending: "PENDING",
		Done:    "DONE",
		Failed:  "FAILED",
	}
}

func (s Status) Validate() error {
	if s < Pending || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) validatePending() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s task cannot be attempted", s.String()),
		)
	}
	return nil
}
