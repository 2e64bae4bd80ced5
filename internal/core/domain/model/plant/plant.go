package plant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultCommonName = "Unknown Plant"
	DefaultLatinName  = "Unknown Latin"
	DefaultCountry    = "Unknown"
)

var (
	// ErrPlantIsNotConstructed is returned for plants not built by NewPlant or RestorePlant.
	ErrPlantIsNotConstructed = errors.New("Plant must be created via NewPlant constructor")
)

// Seed describes a plant to be planted. Empty names fall back to the
// Default* constants and a nil Strength is drawn at random from the
// nominal range.
type Seed struct {
	CommonName string
	LatinName  string
	Country    string
	Strength   *kernel.Strength
}

// Plant is the raw aromatic material and the aggregate root of the plant
// lifecycle. Its identity is assigned by storage on first persistence.
//
// Invariants:
//   - common name, latin name and country are not empty
//   - strength is a constructed kernel.Strength
//   - status only moves forward (see Status)
type Plant struct {
	id         int64
	commonName string
	latinName  string
	country    string
	strength   kernel.Strength
	status     Status
	plantedAt  time.Time

	isConstructed bool
}

// NewPlant plants a new specimen in Planted status.
//
// Example:
//
//	p, err := plant.NewPlant(plant.Seed{CommonName: "Lavender"}, time.Now())
//	if err != nil {
//	    return err
//	}
//	// p.Strength() is random in [1.00, 5.00], p.LatinName() is "Unknown Latin"
func NewPlant(seed Seed, plantedAt time.Time) (*Plant, error) {
	strength := kernel.RandomStrength()
	if seed.Strength != nil {
		strength = *seed.Strength
	}

	p := &Plant{
		status:        Planted,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setCommonName(orDefault(seed.CommonName, DefaultCommonName)),
		p.setLatinName(orDefault(seed.LatinName, DefaultLatinName)),
		p.setCountry(orDefault(seed.Country, DefaultCountry)),
		p.setStrength(strength),
		p.setPlantedAt(plantedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePlant rebuilds a persisted plant.
func RestorePlant(
	id int64,
	commonName, latinName, country string,
	strength kernel.Strength,
	status Status,
	plantedAt time.Time,
) (*Plant, error) {
	p := &Plant{
		isConstructed: true,
	}

	if err := errors.Join(
		p.AssignID(id),
		p.setCommonName(commonName),
		p.setLatinName(latinName),
		p.setCountry(country),
		p.setStrength(strength),
		p.setStatus(status),
		p.setPlantedAt(plantedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the plant was built through a constructor.
func (p *Plant) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlantIsNotConstructed
	}
	return nil
}

// IsEqual compares persisted plants by identity.
func (p *Plant) IsEqual(other *Plant) bool {
	return other != nil && p.id != 0 && p.id == other.id
}

func (p *Plant) ID() int64 {
	return p.id
}

func (p *Plant) CommonName() string {
	return p.commonName
}

func (p *Plant) LatinName() string {
	return p.latinName
}

func (p *Plant) Country() string {
	return p.country
}

func (p *Plant) Strength() kernel.Strength {
	return p.strength
}

func (p *Plant) Status() Status {
	return p.status
}

func (p *Plant) PlantedAt() time.Time {
	return p.plantedAt
}

// AssignID records the storage identity. It can be set only once.
func (p *Plant) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	if p.id != 0 && p.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("plant already has id %d", p.id))
	}
	p.id = id
	return nil
}

// Harvest collects a planted specimen.
func (p *Plant) Harvest() error {
	newStatus, err := p.status.Harvest()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// MarkProcessed records that the plant was consumed by a perfume batch.
func (p *Plant) MarkProcessed() error {
	newStatus, err := p.status.Process()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// AdjustStrength applies an adjustment and returns the new strength.
//
//   - ModeIncrease: strength * (1 + value/100)
//   - ModeScale:    strength * (value/100)
//
// Results may reach 0.00. The plant is left unchanged when the result would
// be negative or the mode is unknown.
func (p *Plant) AdjustStrength(mode AdjustmentMode, value decimal.Decimal) (kernel.Strength, error) {
	var (
		adjusted kernel.Strength
		err      error
	)

	switch mode {
	case ModeIncrease:
		adjusted, err = p.strength.Increase(value)
	case ModeScale:
		adjusted, err = p.strength.Scale(value)
	default:
		err = mode.Validate()
	}
	if err != nil {
		return p.strength, err
	}

	p.strength = adjusted
	return adjusted, nil
}

func (p *Plant) setCommonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("common name")
	}
	p.commonName = name
	return nil
}

func (p *Plant) setLatinName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("latin name")
	}
	p.latinName = name
	return nil
}

func (p *Plant) setCountry(country string) error {
	if strings.TrimSpace(country) == "" {
		return errs.NewValueIsRequiredError("country")
	}
	p.country = country
	return nil
}

func (p *Plant) setStrength(strength kernel.Strength) error {
	if err := strength.Validate(); err != nil {
		return err
	}
	p.strength = strength
	return nil
}

func (p *Plant) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Plant) setPlantedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("planted at")
	}
	p.plantedAt = at
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
