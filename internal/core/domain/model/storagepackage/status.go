package storagepackage

import (
	"fmt"

	"perfumery/internal/pkg/errs"
)

// Status of a storage package.
//
//	Packed ──> Sent
//
// Sent packages are immutable.
type Status int

const (
	Unknown Status = iota
	Packed
	Sent
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Packed:  "PACKED",
		Sent:    "SENT",
	}
}

func (s Status) Validate() error {
	if s != Packed && s != Sent {
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

// Send moves Packed to Sent.
func (s Status) Send() (Status, error) {
	if s != Packed {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to send", s.String()),
		)
	}
	return Sent, nil
}
