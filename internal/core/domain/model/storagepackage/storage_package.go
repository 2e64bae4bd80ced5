package storagepackage

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/errs"
)

const (
	MaxNameLength          = 150
	MaxSenderAddressLength = 250
)

var (
	ErrPackageIsNotConstructed = errors.New("StoragePackage must be created via NewStoragePackage constructor")
)

// StoragePackage is one shipping container holding at most one perfume.
// It is created Packed by the store operation and sent by a distribution
// center.
type StoragePackage struct {
	id            int64
	name          string
	senderAddress string
	warehouseID   int64
	perfumeID     *int64
	status        Status
	serial        string
	createdAt     time.Time

	isConstructed bool
}

// NewStoragePackage packs a new container. perfumeID may be nil for
// packages that do not track their content.
func NewStoragePackage(
	name, senderAddress string,
	warehouseID int64,
	perfumeID *int64,
	createdAt time.Time,
) (*StoragePackage, error) {
	p := &StoragePackage{
		status:        Packed,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setSenderAddress(senderAddress),
		p.setWarehouseID(warehouseID),
		p.setPerfumeID(perfumeID),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreStoragePackage rebuilds a persisted package.
func RestoreStoragePackage(
	id int64,
	name, senderAddress string,
	warehouseID int64,
	perfumeID *int64,
	status Status,
	serial string,
	createdAt time.Time,
) (*StoragePackage, error) {
	p := &StoragePackage{
		id:            id,
		serial:        serial,
		isConstructed: true,
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	if err := errors.Join(
		p.setName(name),
		p.setSenderAddress(senderAddress),
		p.setWarehouseID(warehouseID),
		p.setPerfumeID(perfumeID),
		p.setStatus(status),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *StoragePackage) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *StoragePackage) ID() int64 {
	return p.id
}

func (p *StoragePackage) Name() string {
	return p.name
}

func (p *StoragePackage) SenderAddress() string {
	return p.senderAddress
}

func (p *StoragePackage) WarehouseID() int64 {
	return p.warehouseID
}

// PerfumeID returns the packed bottle, nil when untracked.
func (p *StoragePackage) PerfumeID() *int64 {
	if p.perfumeID == nil {
		return nil
	}
	id := *p.perfumeID
	return &id
}

func (p *StoragePackage) Status() Status {
	return p.status
}

func (p *StoragePackage) Serial() string {
	return p.serial
}

func (p *StoragePackage) CreatedAt() time.Time {
	return p.createdAt
}

// AssignID records the storage identity and issues the PKG serial.
func (p *StoragePackage) AssignID(id int64) error {
	if p.id != 0 && p.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("package already has id %d", p.id))
	}
	serial, err := kernel.NewSerial(kernel.PackageSerialPrefix, p.createdAt, id)
	if err != nil {
		return err
	}
	p.id = id
	p.serial = serial
	return nil
}

// Send marks a packed container as shipped.
func (p *StoragePackage) Send() error {
	newStatus, err := p.status.Send()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *StoragePackage) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *StoragePackage) setSenderAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("sender address")
	}
	if n := utf8.RuneCountInString(address); n > MaxSenderAddressLength {
		return errs.NewValueIsOutOfRangeError("sender address length", n, 1, MaxSenderAddressLength)
	}
	p.senderAddress = address
	return nil
}

func (p *StoragePackage) setWarehouseID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("warehouse id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.warehouseID = id
	return nil
}

func (p *StoragePackage) setPerfumeID(id *int64) error {
	if id == nil {
		p.perfumeID = nil
		return nil
	}
	if *id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("perfume id is invalid", fmt.Errorf("%d is not greater than 0", *id))
	}
	v := *id
	p.perfumeID = &v
	return nil
}

func (p *StoragePackage) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *StoragePackage) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	p.createdAt = at
	return nil
}
