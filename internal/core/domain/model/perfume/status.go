package perfume

import (
	"fmt"

	"perfumery/internal/pkg/errs"
)

// Status is the availability of a bottle.
//
//	Available ──> Reserved
type Status int

const (
	Unknown Status = iota

	// Available bottles can be reserved for packaging.
	Available

	// Reserved bottles were claimed by a packaging run. Terminal.
	Reserved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Reserved:  "RESERVED",
	}
}

func (s Status) Validate() error {
	if s != Available && s != Reserved {
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

// Reserve moves Available to Reserved.
func (s Status) Reserve() (Status, error) {
	if s != Available {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reserve", s.String()),
		)
	}
	return Reserved, nil
}
