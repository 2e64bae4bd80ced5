package perfume

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/errs"
)

const (
	// ShelfLifeDays is the time between bottling and expiration.
	ShelfLifeDays = 365

	MinBottleVolumeMl = 150
	MaxBottleVolumeMl = 250
)

var (
	ErrPerfumeIsNotConstructed = errors.New("Perfume must be created via NewPerfume constructor")
)

// Perfume is one physical bottle produced by a processing batch. A batch of
// N bottles yields N aggregates sharing the same source plants.
//
// The serial number depends on the storage identity and is issued by
// AssignID once the row exists.
type Perfume struct {
	id             int64
	name           string
	kind           Type
	netVolumeMl    int
	serial         string
	sourcePlantIDs []int64
	status         Status
	createdAt      time.Time
	expiresAt      time.Time

	isConstructed bool
}

// NewPerfume bottles a new Available perfume that expires ShelfLifeDays after createdAt.
func NewPerfume(name string, kind Type, netVolumeMl int, sourcePlantIDs []int64, createdAt time.Time) (*Perfume, error) {
	p := &Perfume{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setKind(kind),
		p.setNetVolume(netVolumeMl),
		p.setSourcePlantIDs(sourcePlantIDs),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	p.expiresAt = createdAt.AddDate(0, 0, ShelfLifeDays)

	return p, nil
}

// RestorePerfume rebuilds a persisted bottle.
func RestorePerfume(
	id int64,
	name string,
	kind Type,
	netVolumeMl int,
	serial string,
	sourcePlantIDs []int64,
	status Status,
	createdAt, expiresAt time.Time,
) (*Perfume, error) {
	p := &Perfume{
		isConstructed: true,
		serial:        serial,
		expiresAt:     expiresAt,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setKind(kind),
		p.setNetVolume(netVolumeMl),
		p.setSourcePlantIDs(sourcePlantIDs),
		p.setStatus(status),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Perfume) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPerfumeIsNotConstructed
	}
	return nil
}

func (p *Perfume) ID() int64 {
	return p.id
}

func (p *Perfume) Name() string {
	return p.name
}

func (p *Perfume) Type() Type {
	return p.kind
}

func (p *Perfume) NetVolumeMl() int {
	return p.netVolumeMl
}

// Serial returns the PP serial, empty until AssignID.
func (p *Perfume) Serial() string {
	return p.serial
}

// SourcePlantIDs returns a copy of the plants the batch was made from.
func (p *Perfume) SourcePlantIDs() []int64 {
	return slices.Clone(p.sourcePlantIDs)
}

func (p *Perfume) Status() Status {
	return p.status
}

func (p *Perfume) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Perfume) ExpiresAt() time.Time {
	return p.expiresAt
}

// AssignID records the storage identity and issues the serial number.
func (p *Perfume) AssignID(id int64) error {
	if p.id != 0 && p.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("perfume already has id %d", p.id))
	}
	serial, err := kernel.NewSerial(kernel.PerfumeSerialPrefix, p.createdAt, id)
	if err != nil {
		return err
	}
	p.id = id
	p.serial = serial
	return nil
}

// Reserve claims the bottle for packaging.
func (p *Perfume) Reserve() error {
	newStatus, err := p.status.Reserve()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Perfume) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Perfume) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Perfume) setKind(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Perfume) setNetVolume(ml int) error {
	if ml < MinBottleVolumeMl || ml > MaxBottleVolumeMl {
		return errs.NewValueIsOutOfRangeError("net volume ml", ml, MinBottleVolumeMl, MaxBottleVolumeMl)
	}
	p.netVolumeMl = ml
	return nil
}

func (p *Perfume) setSourcePlantIDs(ids []int64) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("source plant ids")
	}
	p.sourcePlantIDs = slices.Clone(ids)
	return nil
}

func (p *Perfume) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Perfume) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	p.createdAt = at
	return nil
}
