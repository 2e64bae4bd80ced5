package kernel

import (
	"fmt"
	"math/rand/v2"

	"perfumery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const strengthPlaces = 2

var (
	// MinNominalStrength and MaxNominalStrength bound freshly planted specimens.
	MinNominalStrength = decimal.RequireFromString("1.00")
	MaxNominalStrength = decimal.RequireFromString("5.00")

	// StrengthThreshold is the level above which a plant is considered high
	// potency: adjustments above it are journalled as warnings and processing
	// schedules a replant for it.
	StrengthThreshold = decimal.RequireFromString("4.00")

	ErrStrengthIsNotConstructed = errs.NewValueIsRequiredError("strength must be created via NewStrength")

	hundred = decimal.NewFromInt(100)
)

// Strength is the aromatic-oil strength of a plant, kept at two decimals.
// It may leave the nominal [1.00, 5.00] range through adjustments and
// replanting. Seeds are positive; adjustments may bring it down to 0.00.
type Strength struct {
	value         decimal.Decimal
	isConstructed bool
}

// NewStrength rounds value to two decimals and rejects non-positive results.
func NewStrength(value decimal.Decimal) (Strength, error) {
	rounded := value.Round(strengthPlaces)
	if !rounded.IsPositive() {
		return Strength{}, errs.NewValueIsInvalidErrorWithCause(
			"strength is invalid",
			fmt.Errorf("%s is not greater than 0", rounded.StringFixed(strengthPlaces)),
		)
	}
	return Strength{value: rounded, isConstructed: true}, nil
}

// RestoreStrength rounds value to two decimals and rejects negative results.
// It backs adjustments and values read back from storage, where 0.00 is legal.
func RestoreStrength(value decimal.Decimal) (Strength, error) {
	rounded := value.Round(strengthPlaces)
	if rounded.IsNegative() {
		return Strength{}, errs.NewValueIsInvalidErrorWithCause(
			"strength is invalid",
			fmt.Errorf("%s is negative", rounded.StringFixed(strengthPlaces)),
		)
	}
	return Strength{value: rounded, isConstructed: true}, nil
}

// StrengthFromFloat is NewStrength for float input coming from transport DTOs.
func StrengthFromFloat(value float64) (Strength, error) {
	return NewStrength(decimal.NewFromFloat(value))
}

// RandomStrength draws a strength uniformly from the nominal range.
func RandomStrength() Strength {
	span := MaxNominalStrength.Sub(MinNominalStrength)
	v := MinNominalStrength.Add(span.Mul(decimal.NewFromFloat(rand.Float64())))
	s, _ := NewStrength(v)
	return s
}

// Increase applies a signed percentage delta: s * (1 + percent/100).
func (s Strength) Increase(percent decimal.Decimal) (Strength, error) {
	return RestoreStrength(s.value.Mul(decimal.NewFromInt(1).Add(percent.Div(hundred))))
}

// Scale sets the strength to a percentage of itself: s * (percent/100).
func (s Strength) Scale(percent decimal.Decimal) (Strength, error) {
	return RestoreStrength(s.value.Mul(percent.Div(hundred)))
}

// Offspring returns the strength of a plant replanted from s. Specimens above
// StrengthThreshold multiply by their excess over it; the rest are cloned.
func (s Strength) Offspring() Strength {
	factor := s.value.Sub(StrengthThreshold)
	if !factor.IsPositive() {
		factor = decimal.NewFromInt(1)
	}
	offspring, err := NewStrength(s.value.Mul(factor))
	if err != nil {
		return s
	}
	return offspring
}

// ExceedsThreshold reports whether s > StrengthThreshold.
func (s Strength) ExceedsThreshold() bool {
	return s.value.GreaterThan(StrengthThreshold)
}

// Decimal returns the underlying value.
func (s Strength) Decimal() decimal.Decimal {
	return s.value
}

// Float64 returns the value for JSON transport.
func (s Strength) Float64() float64 {
	return s.value.InexactFloat64()
}

// String formats the value with two decimals.
func (s Strength) String() string {
	return s.value.StringFixed(strengthPlaces)
}

// IsEqual compares by value.
func (s Strength) IsEqual(other Strength) bool {
	return s.value.Equal(other.value)
}

// Validate rejects zero-value strengths.
func (s Strength) Validate() error {
	if !s.isConstructed {
		return ErrStrengthIsNotConstructed
	}
	return nil
}
