package saleorder

import (
	"fmt"

	"perfumery/internal/pkg/errs"
)

// Status represents the lifecycle state of a sale order.
//
// State transitions:
//
//	Created ──> Shipped
//
// Orders are persisted only once shipped, so Created is observable only
// while the fulfillment handler assembles the aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status of an order still waiting for packages.
	Created

	// Shipped indicates every requested package was obtained. Final.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Created: "CREATED",
		Shipped: "SHIPPED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created: "CREATED",
		Shipped: "SHIPPED",
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil for Created and Shipped
//   - error with details for Unknown and any other value
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Ship transitions Created to Shipped.
//
// Returns:
//   - Shipped on success
//   - the unchanged status and an error from any other status
func (s Status) Ship() (Status, error) {
	if s != Created {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return Shipped, nil
}
