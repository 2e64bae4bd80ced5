package kernel

import (
	"fmt"

	"perfumery/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("uuid")

// UUID identifies replant tasks and audit events, the records that are not
// numbered by the database. The zero value is not a valid identifier.
type UUID struct {
	value uuid.UUID
}

func NewUUID() UUID {
	return UUID{value: uuid.New()}
}

// RestoreUUID wraps a stored value. The nil UUID is rejected.
func RestoreUUID(value uuid.UUID) (UUID, error) {
	id := UUID{value: value}
	if err := id.Validate(); err != nil {
		return UUID{}, err
	}
	return id, nil
}

// ParseUUID accepts every textual form google/uuid understands.
func ParseUUID(s string) (UUID, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("parse %q: %w", s, err))
	}
	return RestoreUUID(value)
}

func (u UUID) Value() uuid.UUID {
	return u.value
}

func (u UUID) String() string {
	return u.value.String()
}

func (u UUID) Equal(other UUID) bool {
	return u.value == other.value
}

func (u UUID) IsZero() bool {
	return u.value == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
