package perfume

import (
	"fmt"
	"strings"

	"perfumery/internal/pkg/errs"
)

// Type is the product family of a scent.
type Type int

const (
	UnknownType Type = iota
	TypePerfume
	TypeCologne
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		TypePerfume: "PERFUME",
		TypeCologne: "COLOGNE",
	}
}

// ParseType accepts PERFUME or COLOGNE in any casing.
func ParseType(raw string) (Type, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == upper {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a perfume type", raw))
}

func (t Type) Validate() error {
	if t != TypePerfume && t != TypeCologne {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
