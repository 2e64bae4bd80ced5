package plant

import (
	"fmt"

	"perfumery/internal/pkg/errs"
)

// Status is the lifecycle state of a plant.
//
// State transitions:
//
//	Planted ──> Harvested ──> Processed
//	   │                          ▲
//	   └──────────────────────────┘
//	        (consumed by processing)
//
// Transitions only move forward. Processed is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Planted is the initial state; only planted plants can be harvested or
	// handed to processing.
	Planted

	// Harvested plants were collected by a harvest run.
	Harvested

	// Processed plants were consumed by a perfume batch.
	Processed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Planted:   "PLANTED",
		Harvested: "HARVESTED",
		Processed: "PROCESSED",
	}
}

// Validate accepts Planted, Harvested and Processed.
func (s Status) Validate() error {
	if s < Planted || s > Processed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name used on the wire.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Harvest moves Planted to Harvested.
func (s Status) Harvest() (Status, error) {
	if s != Planted {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to harvest", s.String()),
		)
	}
	return Harvested, nil
}

// Process moves any valid status to Processed. It is the forced transition
// used when processing marks plants as used, so it accepts Harvested and
// already Processed plants as well.
func (s Status) Process() (Status, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	return Processed, nil
}
