package plant

import (
	"fmt"
	"strings"

	"perfumery/internal/pkg/errs"
)

// AdjustmentMode selects how a strength adjustment value is interpreted.
type AdjustmentMode string

const (
	// ModeIncrease treats the value as a signed percentage delta.
	ModeIncrease AdjustmentMode = "inc"
	// ModeScale treats the value as a percentage of the current strength.
	ModeScale AdjustmentMode = "scale"
)

// ParseAdjustmentMode accepts "inc" and "scale" in any casing.
func ParseAdjustmentMode(raw string) (AdjustmentMode, error) {
	mode := AdjustmentMode(strings.ToLower(strings.TrimSpace(raw)))
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

func (m AdjustmentMode) Validate() error {
	if m != ModeIncrease && m != ModeScale {
		return errs.NewValueIsInvalidErrorWithCause("mode is invalid", fmt.Errorf("%q is not inc or scale", string(m)))
	}
	return nil
}
