package kernel

import (
	"fmt"
	"time"

	"perfumery/internal/pkg/errs"
)

// SerialPrefix distinguishes the serial numbers of the pipeline artefacts.
type SerialPrefix string

const (
	PerfumeSerialPrefix SerialPrefix = "PP"
	PackageSerialPrefix SerialPrefix = "PKG"
	OrderSerialPrefix   SerialPrefix = "ORD"
)

// NewSerial formats <prefix>-<year>-<id>. The id is the database identity,
// so serials can only be issued once the row exists.
func NewSerial(prefix SerialPrefix, issuedAt time.Time, id int64) (string, error) {
	if id <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"serial id is invalid",
			fmt.Errorf("%d is not greater than 0", id),
		)
	}
	if issuedAt.IsZero() {
		return "", errs.NewValueIsRequiredError("serial issue date")
	}
	return fmt.Sprintf("%s-%d-%d", prefix, issuedAt.Year(), id), nil
}
